package models

import (
	"github.com/jinzhu/gorm"
)

//go:generate goqueryset -in role.go

// gen:qs
type Role struct {
	gorm.Model

	Name        string
	Description string
}

// gen:qs
type Permission struct {
	gorm.Model

	Resource Resource
	Action   string
}

// gen:qs
type RolePermission struct {
	gorm.Model

	RoleID       uint
	PermissionID uint
}
