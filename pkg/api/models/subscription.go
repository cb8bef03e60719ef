package models

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
)

type SubscriptionStatus string

const (
	SubscriptionStatusTrial     SubscriptionStatus = "TRIAL"
	SubscriptionStatusActive    SubscriptionStatus = "ACTIVE"
	SubscriptionStatusPastDue   SubscriptionStatus = "PAST_DUE"
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionStatusExpired   SubscriptionStatus = "EXPIRED"
)

// CurrentSubscriptionStatuses are the statuses in which a subscription
// still occupies the tenant's single current-subscription slot.
var CurrentSubscriptionStatuses = []SubscriptionStatus{
	SubscriptionStatusActive,
	SubscriptionStatusTrial,
	SubscriptionStatusPastDue,
}

//go:generate goqueryset -in subscription.go

// gen:qs
type Subscription struct {
	gorm.Model

	TenantID uint
	PlanID   uint

	Status SubscriptionStatus

	RazorpaySubscriptionID string

	CurrentPeriodStart *time.Time
	CurrentPeriodEnd   *time.Time

	CanceledAt *time.Time
	CancelAt   *time.Time
}

func (s *Subscription) GoString() string {
	return fmt.Sprintf("{ID: %d, TenantID: %d, PlanID: %d, Status: %s}", s.ID, s.TenantID, s.PlanID, s.Status)
}

func (s Subscription) IsCurrent() bool {
	for _, st := range CurrentSubscriptionStatuses {
		if s.Status == st {
			return true
		}
	}

	return false
}

// IsUsable reports whether the subscription entitles the tenant to plan
// features. Past due subscriptions don't, unless grace is enabled.
func (s Subscription) IsUsable() bool {
	return s.Status == SubscriptionStatusActive || s.Status == SubscriptionStatusTrial
}
