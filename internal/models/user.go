package models

import (
	"strings"
	"time"
)

// User 博客用户（作者/评论者）
type User struct {
	ID                 uint       `gorm:"primarykey" json:"id"`
	Username           string     `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	FirstName          string     `gorm:"type:varchar(150);not null;default:''" json:"first_name"`
	LastName           string     `gorm:"type:varchar(150);not null;default:''" json:"last_name"`
	Email              string     `gorm:"type:varchar(254);not null;default:''" json:"email"`
	PasswordHash       string     `gorm:"not null" json:"-"`
	IsActive           bool       `gorm:"not null;index" json:"is_active"`
	TokenVersion       uint64     `gorm:"not null;default:0" json:"-"`
	TokenInvalidBefore *time.Time `gorm:"index" json:"-"`
	LastLoginAt        *time.Time `json:"last_login_at"`
	CreatedAt          time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// FullName 返回姓名，均为空时回退为用户名
func (u User) FullName() string {
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if full == "" {
		return u.Username
	}
	return full
}
