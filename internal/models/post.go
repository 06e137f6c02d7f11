package models

import "time"

// Post 博客文章
type Post struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(256);not null" json:"title"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	PubDate     time.Time `gorm:"not null;index" json:"pub_date"` // 晚于当前时间即为定时发布
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	LocationID  *uint     `gorm:"index" json:"location_id"`
	CategoryID  *uint     `gorm:"index" json:"category_id"`
	Image       string    `gorm:"type:varchar(500);not null;default:''" json:"image"` // 上传图片的访问路径
	IsPublished bool      `gorm:"not null;index" json:"is_published"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`

	Author   *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Location *Location `gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL" json:"location,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`

	// 只读列，仅在带评论数统计的查询中填充
	CommentCount int64 `gorm:"->;-:migration" json:"comment_count"`
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}
