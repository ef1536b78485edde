package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string    `json:"name" gorm:"default:''"`
	Username  string    `json:"username" gorm:"unique;not null"` // email doubles as username
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	LastLogin time.Time `json:"last_login" gorm:"default:NULL"`
	IsDeleted bool      `json:"-" gorm:"default:false"`
}
