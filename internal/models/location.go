package models

import "time"

// Location 地点
type Location struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(256);not null" json:"name"`
	IsPublished bool      `gorm:"not null;index" json:"is_published"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (Location) TableName() string {
	return "locations"
}
