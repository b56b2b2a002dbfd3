// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klinikku_backend/internals/configs"
	"klinikku_backend/internals/features/users/auth/dto"
	authmodel "klinikku_backend/internals/features/users/auth/model"
	"klinikku_backend/internals/features/users/auth/service"
	helper "klinikku_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/public/auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.UserEmail))
	var count int64
	if err := ctl.DB.WithContext(c.Context()).Model(&authmodel.UserModel{}).
		Where("user_email = ?", email).Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal cek email")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	user := authmodel.UserModel{
		UserName:  strings.TrimSpace(req.UserName),
		UserEmail: email,
		UserRole:  "user",
	}
	if err := user.SetPassword(req.UserPassword); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", dto.NewUserResponse(&user))
}

// POST /api/public/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user authmodel.UserModel
	err := ctl.DB.WithContext(c.Context()).
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.UserEmail))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal login")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if !user.CheckPassword(req.UserPassword) {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	pair, err := service.IssueTokens(ctl.DB.WithContext(c.Context()), &user, time.Now().UTC())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return helper.Success(c, "Login berhasil", fiber.Map{
		"user":   dto.NewUserResponse(&user),
		"tokens": pair,
	})
}

// POST /api/public/auth/login/google
// Verifikasi id_token Google, buat akun kalau belum ada.
func (ctl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if configs.GoogleClientID == "" {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Login Google belum dikonfigurasi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}
	claims, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || claims.Email == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}

	email := strings.ToLower(claims.Email)
	var user authmodel.UserModel
	err = ctl.DB.WithContext(c.Context()).Where("user_email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = authmodel.UserModel{
			UserName:     claims.Name,
			UserEmail:    email,
			UserGoogleID: &claims.Sub,
			UserRole:     "user",
		}
		if user.UserName == "" {
			user.UserName = email
		}
		if err := ctl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun")
		}
	case err != nil:
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal login")
	default:
		if !user.UserIsActive {
			return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan")
		}
		if user.UserGoogleID == nil {
			user.UserGoogleID = &claims.Sub
			_ = ctl.DB.WithContext(c.Context()).Save(&user).Error
		}
	}

	pair, err := service.IssueTokens(ctl.DB.WithContext(c.Context()), &user, time.Now().UTC())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return helper.Success(c, "Login berhasil", fiber.Map{
		"user":   dto.NewUserResponse(&user),
		"tokens": pair,
	})
}

// POST /api/public/auth/refresh — rotasi: refresh lama masuk blacklist
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	checker := service.NewBlacklistChecker(ctl.DB)
	if black, err := checker(req.RefreshToken); err == nil && black {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token sudah dicabut")
	}

	userID, err := service.ParseRefreshUserID(req.RefreshToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	var user authmodel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Akun tidak ditemukan")
	}
	if !user.UserIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	if err := service.BlacklistToken(c.Context(), ctl.DB, req.RefreshToken); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal rotasi token")
	}
	pair, err := service.IssueTokens(ctl.DB.WithContext(c.Context()), &user, time.Now().UTC())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return helper.Success(c, "Token diperbarui", pair)
}

// POST /api/u/auth/logout — access token masuk blacklist sampai exp
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw := ""
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		raw = strings.TrimSpace(authz[7:])
	}
	if raw == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Token tidak ditemukan")
	}
	if err := service.BlacklistToken(c.Context(), ctl.DB, raw); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal logout")
	}
	return helper.Success(c, "Logout berhasil", nil)
}
