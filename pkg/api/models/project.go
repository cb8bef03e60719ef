package models

import (
	"github.com/jinzhu/gorm"
)

//go:generate goqueryset -in project.go

// gen:qs
type Project struct {
	gorm.Model

	TenantID uint

	Name   string
	Status string
}
