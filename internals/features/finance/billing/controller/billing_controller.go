// internals/features/finance/billing/controller/billing_controller.go
package controller

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bmodel "klinikku_backend/internals/features/finance/billing/model"
	"klinikku_backend/internals/features/finance/billing/service"
	authmodel "klinikku_backend/internals/features/users/auth/model"
	helper "klinikku_backend/internals/helpers"
	helperauth "klinikku_backend/internals/helpers/auth"
)

var validate = validator.New()

type createInvoiceRequest struct {
	Description string `json:"invoice_description" validate:"required,min=3,max=255"`
	Amount      int64  `json:"invoice_amount" validate:"required,gt=0"`
}

// Payload notifikasi HTTP midtrans (field yang dipakai saja)
type midtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
}

type BillingController struct {
	DB *gorm.DB
}

func NewBillingController(db *gorm.DB) *BillingController {
	return &BillingController{DB: db}
}

// POST /api/a/billing/invoices — buat tagihan + transaksi Snap
func (ctl *BillingController) CreateInvoice(c *fiber.Ctx) error {
	orgID, err := helperauth.GetOrgUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helperauth.GetUserUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req createInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	inv := bmodel.InvoiceModel{
		InvoiceOrgID:       orgID,
		InvoiceNumber:      fmt.Sprintf("INV-%s-%d", orgID.String()[:8], time.Now().Unix()),
		InvoiceDescription: req.Description,
		InvoiceAmount:      req.Amount,
		InvoiceStatus:      bmodel.InvoiceStatusPending,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&inv).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat invoice")
	}

	var user authmodel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Akun tidak ditemukan")
	}

	token, redirect, err := service.CreateSnapTransaction(&inv, user.UserName, user.UserEmail)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}
	inv.InvoiceSnapToken = &token
	inv.InvoiceSnapURL = &redirect
	if err := ctl.DB.WithContext(c.Context()).Save(&inv).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan invoice")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Invoice dibuat", inv)
}

// GET /api/a/billing/invoices
func (ctl *BillingController) ListInvoices(c *fiber.Ctx) error {
	orgID, err := helperauth.GetOrgUUID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctl.DB.WithContext(c.Context()).Model(&bmodel.InvoiceModel{}).
		Where("invoice_org_id = ?", orgID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil invoice")
	}
	var rows []bmodel.InvoiceModel
	if err := q.Order("invoice_created_at DESC").
		Limit(paging.Limit()).Offset(paging.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil invoice")
	}
	return helper.Success(c, "OK", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildMeta(total, paging, len(rows)),
	})
}

// POST /api/public/billing/notification — webhook midtrans
func (ctl *BillingController) HandleNotification(c *fiber.Ctx) error {
	var n midtransNotification
	if err := c.BodyParser(&n); err != nil || n.OrderID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Payload notifikasi tidak valid")
	}

	status, final := service.MapNotificationStatus(n.TransactionStatus, n.FraudStatus)
	if !final {
		// pending/authorize: ack saja supaya midtrans tidak retry
		return helper.Success(c, "OK", nil)
	}

	var inv bmodel.InvoiceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("invoice_number = ?", n.OrderID).First(&inv).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Invoice tidak ditemukan")
	}

	inv.InvoiceStatus = status
	if status == bmodel.InvoiceStatusPaid {
		now := time.Now().UTC()
		inv.InvoicePaidAt = &now
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&inv).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui invoice")
	}
	return helper.Success(c, "OK", nil)
}
