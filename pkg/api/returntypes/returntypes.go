package returntypes

import (
	"time"
)

type Error struct {
	Error string `json:"error,omitempty"`
}

type PlanInfo struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"` // paise
	Interval string `json:"interval"`

	MaxProjects      int64 `json:"maxProjects"`
	MaxUsers         int64 `json:"maxUsers"`
	MaxBeneficiaries int64 `json:"maxBeneficiaries"`
	MaxStorageMB     int64 `json:"maxStorageMb"`

	FinanceEnabled    bool `json:"financeEnabled"`
	ComplianceEnabled bool `json:"complianceEnabled"`
	APIAccess         bool `json:"apiAccess"`
	CustomBranding    bool `json:"customBranding"`
}

type PlanListResponse struct {
	Plans []PlanInfo `json:"plans"`
}

type SubscriptionInfo struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`

	Plan PlanInfo `json:"plan"`

	CurrentPeriodStart *time.Time `json:"currentPeriodStart,omitempty"`
	CurrentPeriodEnd   *time.Time `json:"currentPeriodEnd,omitempty"`
	CanceledAt         *time.Time `json:"canceledAt,omitempty"`

	TrialEndsAt    *time.Time `json:"trialEndsAt,omitempty"`
	IsTrialExpired bool       `json:"isTrialExpired,omitempty"`
}

type WrappedSubscriptionInfo struct {
	Subscription SubscriptionInfo `json:"subscription"`
}

type CheckoutInfo struct {
	SubscriptionID         uint   `json:"subscriptionId"`
	RazorpaySubscriptionID string `json:"razorpaySubscriptionId"`
	ShortURL               string `json:"shortUrl"`
	Status                 string `json:"status"`
}

type PaymentInfo struct {
	ID       uint   `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Method   string `json:"method,omitempty"`

	FailureReason string     `json:"failureReason,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

type PaymentListResponse struct {
	Payments []PaymentInfo `json:"payments"`
}

type InvoiceInfo struct {
	ID            uint   `json:"id"`
	InvoiceNumber string `json:"invoiceNumber"`

	Amount   int64  `json:"amount"`
	Tax      int64  `json:"tax"`
	Total    int64  `json:"total"`
	Currency string `json:"currency"`
	Status   string `json:"status"`

	BillingPeriodStart *time.Time `json:"billingPeriodStart,omitempty"`
	BillingPeriodEnd   *time.Time `json:"billingPeriodEnd,omitempty"`
	PaidAt             *time.Time `json:"paidAt,omitempty"`
}

type InvoiceListResponse struct {
	Invoices []InvoiceInfo `json:"invoices"`
}

type ResourceUsage struct {
	Resource    string `json:"resource"`
	Used        int64  `json:"used"`
	Limit       int64  `json:"limit"`
	IsUnlimited bool   `json:"isUnlimited,omitempty"`
	NearLimit   bool   `json:"nearLimit,omitempty"`
}

type UsageResponse struct {
	TenantID uint            `json:"tenantId"`
	Usage    []ResourceUsage `json:"usage"`
}
