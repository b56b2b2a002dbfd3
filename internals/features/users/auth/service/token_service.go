// internals/features/users/auth/service/token_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"klinikku_backend/internals/configs"
	authmodel "klinikku_backend/internals/features/users/auth/model"
	stmodel "klinikku_backend/internals/features/users/staff/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidRefreshToken = errors.New("refresh token tidak valid")

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // detik, untuk access token
}

// IssueTokens membangun pasangan access+refresh. Klaim access token
// membawa konteks tenant (org_id, staff_id, org_timezone) supaya
// controller tidak perlu query ulang tiap request.
func IssueTokens(db *gorm.DB, user *authmodel.UserModel, now time.Time) (*TokenPair, error) {
	claims := jwt.MapClaims{
		"id":   user.UserID.String(),
		"role": user.UserRole,
		"iat":  now.Unix(),
		"exp":  now.Add(AccessTokenTTL).Unix(),
	}
	if user.UserRole == "owner" {
		claims["is_owner"] = true
	}

	// Konteks tenant dari profil staff (kalau sudah terikat klinik)
	var staff stmodel.StaffModel
	err := db.Where("staff_user_id = ?", user.UserID).First(&staff).Error
	if err == nil {
		claims["staff_id"] = staff.StaffID.String()
		if staff.StaffOrgID != nil {
			claims["org_id"] = staff.StaffOrgID.String()
			if tz := orgTimezone(db, *staff.StaffOrgID); tz != "" {
				claims["org_timezone"] = tz
			}
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, err
	}

	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  user.UserID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	}).SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(AccessTokenTTL.Seconds()),
	}, nil
}

// ParseRefreshUserID memverifikasi refresh token dan mengembalikan user id-nya
func ParseRefreshUserID(raw string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidRefreshToken
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	idStr, _ := claims["id"].(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	return id, nil
}

// TokenExpiry membaca exp tanpa memverifikasi signature (untuk blacklist TTL)
func TokenExpiry(raw string) time.Time {
	tok, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return time.Now().Add(RefreshTokenTTL)
	}
	if claims, ok := tok.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			return time.Unix(int64(exp), 0)
		}
	}
	return time.Now().Add(RefreshTokenTTL)
}

func orgTimezone(db *gorm.DB, orgID uuid.UUID) string {
	var tz string
	db.Table("org_settings").
		Select("org_setting_timezone").
		Where("org_setting_org_id = ?", orgID).
		Scan(&tz)
	return tz
}

/* ===================== BLACKLIST ===================== */

// BlacklistToken menyimpan token yang di-logout sampai expiry aslinya
func BlacklistToken(ctx context.Context, db *gorm.DB, raw string) error {
	return db.WithContext(ctx).Create(&authmodel.TokenBlacklistModel{
		TokenBlacklistToken:     raw,
		TokenBlacklistExpiredAt: TokenExpiry(raw),
	}).Error
}

// NewBlacklistChecker: dipakai middleware AuthJWT
func NewBlacklistChecker(db *gorm.DB) func(rawToken string) (bool, error) {
	return func(rawToken string) (bool, error) {
		var n int64
		err := db.Model(&authmodel.TokenBlacklistModel{}).
			Where("token_blacklist_token = ? AND token_blacklist_expired_at > NOW()", rawToken).
			Count(&n).Error
		return n > 0, err
	}
}

// PurgeExpiredBlacklist dipanggil scheduler tiap malam
func PurgeExpiredBlacklist(ctx context.Context, db *gorm.DB) (int64, error) {
	res := db.WithContext(ctx).
		Where("token_blacklist_expired_at <= NOW()").
		Delete(&authmodel.TokenBlacklistModel{})
	return res.RowsAffected, res.Error
}
