package oss

import (
	"bytes"
	"fmt"
	"image"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// batas ukuran upload foto/berkas lisensi
const MaxUploadSize = 5 * 1024 * 1024

const (
	webpMaxW    = 1600
	webpMaxH    = 1600
	webpQuality = 80
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// GenerateObjectKey membuat key unik: folder/20060102-uuid-nama_aman.ext
func GenerateObjectKey(folder, originalFilename string) string {
	safe := unsafeChars.ReplaceAllString(originalFilename, "_")
	return fmt.Sprintf("%s/%s-%s-%s", folder, time.Now().Format("20060102"), uuid.New().String(), safe)
}

// UploadImageAsWebP membaca file multipart, decode (jpeg/png, auto-orientasi),
// resize keep-aspect ke batas maksimum, encode WebP, lalu upload ke OSS.
// Return URL publik objek.
func UploadImageAsWebP(folder string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", fmt.Errorf("ukuran file melebihi %dMB", MaxUploadSize/1024/1024)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("file bukan gambar yang valid: %w", err)
	}

	img = scaleDown(img, webpMaxW, webpMaxH)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}

	base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	key := GenerateObjectKey(folder, base+".webp")

	bucket, err := NewBucketFromEnv()
	if err != nil {
		return "", err
	}
	if err := bucket.PutObject(key, bytes.NewReader(buf.Bytes())); err != nil {
		return "", fmt.Errorf("upload ke OSS gagal: %w", err)
	}

	return PublicURL(key), nil
}

// UploadRawDocument menyimpan dokumen (pdf dll) apa adanya, tanpa konversi
func UploadRawDocument(folder string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", fmt.Errorf("ukuran file melebihi %dMB", MaxUploadSize/1024/1024)
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file: %w", err)
	}
	defer src.Close()

	key := GenerateObjectKey(folder, fh.Filename)
	bucket, err := NewBucketFromEnv()
	if err != nil {
		return "", err
	}
	if err := bucket.PutObject(key, src); err != nil {
		return "", fmt.Errorf("upload ke OSS gagal: %w", err)
	}
	return PublicURL(key), nil
}

// scaleDown memperkecil keep-aspect bila melebihi batas; gambar kecil dibiarkan
func scaleDown(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxW && h <= maxH {
		return img
	}

	ratio := float64(maxW) / float64(w)
	if r := float64(maxH) / float64(h); r < ratio {
		ratio = r
	}
	nw := int(float64(w) * ratio)
	nh := int(float64(h) * ratio)

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
