package models

import "time"

// Comment is a reply to a post. PostID must reference an existing post;
// the service layer checks that before insert.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"index;not null" json:"postId"`
	UserID    uint      `gorm:"index;not null" json:"author"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	User      User      `json:"creator"`
}
