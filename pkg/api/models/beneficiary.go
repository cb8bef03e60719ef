package models

import (
	"github.com/jinzhu/gorm"
)

//go:generate goqueryset -in beneficiary.go

// gen:qs
type Beneficiary struct {
	gorm.Model

	TenantID uint

	Name string
}
