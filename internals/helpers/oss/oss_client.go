package oss

import (
	"fmt"
	"os"
	"strings"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// NewBucketFromEnv membuat handle bucket OSS dari ENV:
// OSS_ENDPOINT, OSS_ACCESS_KEY_ID, OSS_ACCESS_KEY_SECRET, OSS_BUCKET
func NewBucketFromEnv() (*alioss.Bucket, error) {
	endpoint := strings.TrimSpace(os.Getenv("OSS_ENDPOINT"))
	keyID := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_ID"))
	keySecret := strings.TrimSpace(os.Getenv("OSS_ACCESS_KEY_SECRET"))
	bucketName := strings.TrimSpace(os.Getenv("OSS_BUCKET"))

	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("konfigurasi OSS belum lengkap (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
	}

	cli, err := alioss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat OSS client: %w", err)
	}
	b, err := cli.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("gagal membuka bucket %s: %w", bucketName, err)
	}
	return b, nil
}

// PublicURL menyusun URL publik objek (bucket public-read)
func PublicURL(key string) string {
	return fmt.Sprintf("https://%s.%s/%s",
		strings.TrimSpace(os.Getenv("OSS_BUCKET")),
		strings.TrimSpace(os.Getenv("OSS_ENDPOINT")),
		key,
	)
}
