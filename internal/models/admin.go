package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin 管理后台登录账号
type Admin struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Username     string         `json:"username" gorm:"uniqueIndex;not null;size:50"`
	PasswordHash string         `json:"-" gorm:"not null;size:255"`
	Email        string         `json:"email" gorm:"uniqueIndex;not null;size:100"`
	Role         string         `json:"role" gorm:"default:admin;size:20"` // admin, super_admin
	LastLoginAt  *time.Time     `json:"last_login_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 指定管理员表名
func (Admin) TableName() string {
	return "admins"
}
