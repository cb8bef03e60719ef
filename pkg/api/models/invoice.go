package models

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
)

type InvoiceStatus string

const (
	InvoiceStatusPaid InvoiceStatus = "PAID"
	InvoiceStatusDue  InvoiceStatus = "DUE"
)

//go:generate goqueryset -in invoice.go

// gen:qs
type Invoice struct {
	gorm.Model

	SubscriptionID uint
	PaymentID      *uint

	InvoiceNumber string

	Amount   int64 // paise
	Tax      int64
	Total    int64
	Currency string

	Status InvoiceStatus

	BillingPeriodStart *time.Time
	BillingPeriodEnd   *time.Time

	PaidAt *time.Time
}

// BuildInvoiceNumber formats the monthly-sequenced invoice number,
// e.g. INV-202608-0001.
func BuildInvoiceNumber(t time.Time, seq int) string {
	return fmt.Sprintf("INV-%04d%02d-%04d", t.Year(), int(t.Month()), seq)
}
