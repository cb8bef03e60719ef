package models

import (
	"github.com/jinzhu/gorm"
)

//go:generate goqueryset -in billing_event.go

// BillingEvent is a journal of processed payment gateway webhook events.
// The unique GatewayEventID makes event processing idempotent.
// gen:qs
type BillingEvent struct {
	gorm.Model

	Gateway        string
	GatewayEventID string

	Type string
	Data []byte
}
