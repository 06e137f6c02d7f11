package models

import "time"

// Comment 文章评论
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `gorm:"index;<-:create" json:"created_at"` // 仅插入时写入

	Post   *Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Author *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}

// TableName 指定表名
func (Comment) TableName() string {
	return "comments"
}
