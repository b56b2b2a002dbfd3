// internals/features/finance/billing/model/invoice_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusExpired InvoiceStatus = "expired"
	InvoiceStatusFailed  InvoiceStatus = "failed"
)

func (s *InvoiceStatus) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = InvoiceStatus(strings.ToLower(strings.TrimSpace(v)))
	case []byte:
		*s = InvoiceStatus(strings.ToLower(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s InvoiceStatus) Value() (driver.Value, error) {
	return strings.ToLower(strings.TrimSpace(string(s))), nil
}

// InvoiceModel: tagihan langganan platform per organisasi.
// Order ID midtrans = invoice_number supaya notifikasi bisa dipetakan balik.
type InvoiceModel struct {
	InvoiceID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:invoice_id" json:"invoice_id"`
	InvoiceOrgID  uuid.UUID `gorm:"type:uuid;not null;index;column:invoice_org_id" json:"invoice_org_id"`
	InvoiceNumber string    `gorm:"type:varchar(64);not null;uniqueIndex;column:invoice_number" json:"invoice_number"`

	InvoiceDescription string  `gorm:"type:varchar(255);not null;column:invoice_description" json:"invoice_description"`
	InvoiceAmount      int64   `gorm:"not null;column:invoice_amount" json:"invoice_amount"` // IDR, tanpa desimal
	InvoiceSnapToken   *string `gorm:"type:varchar(128);column:invoice_snap_token" json:"invoice_snap_token,omitempty"`
	InvoiceSnapURL     *string `gorm:"column:invoice_snap_url" json:"invoice_snap_url,omitempty"`

	InvoiceStatus InvoiceStatus `gorm:"type:varchar(20);not null;default:'pending';column:invoice_status" json:"invoice_status"`
	InvoicePaidAt *time.Time    `gorm:"column:invoice_paid_at" json:"invoice_paid_at,omitempty"`

	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;autoCreateTime" json:"invoice_created_at"`
	InvoiceUpdatedAt *time.Time     `gorm:"column:invoice_updated_at;autoUpdateTime" json:"invoice_updated_at,omitempty"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index" json:"invoice_deleted_at,omitempty"`
}

func (InvoiceModel) TableName() string { return "invoices" }
