package models

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
)

type TenantStatus string

const (
	TenantStatusTrial     TenantStatus = "TRIAL"
	TenantStatusActive    TenantStatus = "ACTIVE"
	TenantStatusPastDue   TenantStatus = "PAST_DUE"
	TenantStatusSuspended TenantStatus = "SUSPENDED"
	TenantStatusCancelled TenantStatus = "CANCELLED"
	TenantStatusExpired   TenantStatus = "EXPIRED"
)

//go:generate goqueryset -in tenant.go

// gen:qs
type Tenant struct {
	gorm.Model

	Name      string
	Subdomain string

	IsActive bool
	Status   TenantStatus

	TrialEndsAt *time.Time
}

func (t *Tenant) GoString() string {
	return fmt.Sprintf("{ID: %d, Subdomain: %s, Status: %s}", t.ID, t.Subdomain, t.Status)
}

func (t Tenant) IsTrialExpired(now time.Time) bool {
	return t.Status == TenantStatusTrial && t.TrialEndsAt != nil && t.TrialEndsAt.Before(now)
}
