package models

import "time"

// Follow is a directed edge meaning "user is subscribed to author's posts".
// The pair is unique and self-follow is rejected at the database level.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_follows_user_author"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index;uniqueIndex:idx_follows_user_author;check:chk_prevent_self_follow,user_id <> author_id"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
