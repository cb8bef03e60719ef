package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

//go:generate goqueryset -in payment.go

// gen:qs
type Payment struct {
	gorm.Model

	SubscriptionID uint

	Amount   int64 // paise
	Currency string
	Status   PaymentStatus

	RazorpayPaymentID string
	RazorpayOrderID   string

	Method        string
	FailureReason string

	PaidAt *time.Time
}
