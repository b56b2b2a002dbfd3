// internals/features/finance/billing/service/midtrans_service.go
package service

import (
	"log"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"klinikku_backend/internals/configs"
	bmodel "klinikku_backend/internals/features/finance/billing/model"
)

var snapClient snap.Client

// InitMidtrans dipanggil sekali saat boot. Sandbox kecuali APP_ENV=production.
func InitMidtrans() {
	env := midtrans.Sandbox
	if configs.GetEnvOr("APP_ENV", "development") == "production" {
		env = midtrans.Production
	}
	snapClient.New(configs.MidtransServerKey, env)
	log.Println("🔌 Midtrans snap client siap (env:", configs.GetEnvOr("APP_ENV", "development"), ")")
}

// CreateSnapTransaction membuat transaksi Snap untuk satu invoice
func CreateSnapTransaction(inv *bmodel.InvoiceModel, customerName, customerEmail string) (token, redirectURL string, err error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  inv.InvoiceNumber,
			GrossAmt: inv.InvoiceAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: customerEmail,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    inv.InvoiceID.String(),
			Name:  inv.InvoiceDescription,
			Price: inv.InvoiceAmount,
			Qty:   1,
		}},
	}

	resp, e := snapClient.CreateTransaction(req)
	if e != nil {
		return "", "", e
	}
	return resp.Token, resp.RedirectURL, nil
}

// MapNotificationStatus memetakan status midtrans ke status invoice.
// Status yang tidak final ("pending", "authorize") tidak mengubah apa-apa.
func MapNotificationStatus(transactionStatus, fraudStatus string) (bmodel.InvoiceStatus, bool) {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "accept" {
			return bmodel.InvoiceStatusPaid, true
		}
		return "", false
	case "settlement":
		return bmodel.InvoiceStatusPaid, true
	case "deny", "cancel":
		return bmodel.InvoiceStatusFailed, true
	case "expire":
		return bmodel.InvoiceStatusExpired, true
	}
	return "", false
}
