package models

import "time"

// Category 文章分类，slug 用于 URL 定位
type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(256);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Slug        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"slug"`
	IsPublished bool      `gorm:"not null;index" json:"is_published"` // 取消发布后分类页与其下文章均对外隐藏
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
