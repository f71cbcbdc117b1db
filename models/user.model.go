package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleAdmin   = "ADMIN"
	RoleTeacher = "TEACHER"
	RoleStudent = "STUDENT"
)

type User struct {
	gorm.Model
	Name                string    `gorm:"default:''"`
	Email               string    `gorm:"unique;not null"`
	Role                string    `gorm:"default:'STUDENT'"` // STUDENT, TEACHER, ADMIN
	Password            string    `gorm:"not null" json:"-"`
	AvatarURL           string    `gorm:"default:''"`
	LastLogin           time.Time `gorm:"default:NULL"`
	FailedLoginAttempts int       `gorm:"default:0"`
	IsBlocked           bool      `gorm:"default:false"`
	IsDeleted           bool      `gorm:"default:false"`
}
