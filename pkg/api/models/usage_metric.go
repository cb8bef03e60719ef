package models

import (
	"time"

	"github.com/jinzhu/gorm"
)

//go:generate goqueryset -in usage_metric.go

// UsageMetric is an append-only usage snapshot row.
// gen:qs
type UsageMetric struct {
	gorm.Model

	TenantID uint

	Metric Resource
	Value  int64

	RecordedAt time.Time
}
