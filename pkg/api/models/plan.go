package models

import (
	"github.com/jinzhu/gorm"
)

// Feature is a plan capability flag.
type Feature string

const (
	FeatureFinance        Feature = "finance"
	FeatureCompliance     Feature = "compliance"
	FeatureAPIAccess      Feature = "api_access"
	FeatureCustomBranding Feature = "custom_branding"
)

// Resource is a countable tenant resource limited by the plan.
type Resource string

const (
	ResourceProjects      Resource = "projects"
	ResourceUsers         Resource = "users"
	ResourceBeneficiaries Resource = "beneficiaries"
	ResourceStorage       Resource = "storage"

	// Permission-only areas, not counted by the accountant.
	ResourceFinance Resource = "finance"
)

var CountableResources = []Resource{
	ResourceProjects,
	ResourceUsers,
	ResourceBeneficiaries,
	ResourceStorage,
}

type PlanInterval string

const (
	PlanIntervalMonthly   PlanInterval = "MONTHLY"
	PlanIntervalQuarterly PlanInterval = "QUARTERLY"
	PlanIntervalYearly    PlanInterval = "YEARLY"
)

//go:generate goqueryset -in plan.go

// gen:qs
type Plan struct {
	gorm.Model

	Name     string
	Price    int64 // paise
	Interval PlanInterval
	IsActive bool

	RazorpayPlanID string

	MaxProjects      int64
	MaxUsers         int64
	MaxBeneficiaries int64
	MaxStorageMB     int64

	FinanceEnabled    bool
	ComplianceEnabled bool
	APIAccess         bool
	CustomBranding    bool
}

func (p Plan) HasFeature(f Feature) bool {
	switch f {
	case FeatureFinance:
		return p.FinanceEnabled
	case FeatureCompliance:
		return p.ComplianceEnabled
	case FeatureAPIAccess:
		return p.APIAccess
	case FeatureCustomBranding:
		return p.CustomBranding
	}

	return false
}

// LimitFor returns the plan limit for the resource, 0 means unlimited.
func (p Plan) LimitFor(r Resource) int64 {
	switch r {
	case ResourceProjects:
		return p.MaxProjects
	case ResourceUsers:
		return p.MaxUsers
	case ResourceBeneficiaries:
		return p.MaxBeneficiaries
	case ResourceStorage:
		return p.MaxStorageMB
	}

	return 0
}
