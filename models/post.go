package models

import "time"

// Post is a publication owned by its author. Deleting the author removes the
// post; deleting its group only detaches it (group_id set to null).
type Post struct {
	Model
	Text     string    `json:"text" gorm:"type:text;not null"`
	Image    string    `json:"image,omitempty"`
	PubDate  time.Time `json:"pub_date" gorm:"index;not null"`
	AuthorID uint      `json:"author_id" gorm:"not null;index"`
	Author   User      `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	GroupID  *uint     `json:"group_id,omitempty" gorm:"index"`
	Group    *Group    `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
}

type CreatePostRequest struct {
	Text    string `json:"text" binding:"required"`
	Image   string `json:"image"`
	GroupID *uint  `json:"group_id"`
}

// EditPostRequest carries the only fields an author may change. pub_date and
// author are immutable after creation.
type EditPostRequest struct {
	Text    string `json:"text" binding:"required"`
	Image   string `json:"image"`
	GroupID *uint  `json:"group_id"`
}

// FeedPage is one page of a feed, newest posts first.
type FeedPage struct {
	Posts      []Post `json:"posts"`
	Page       int    `json:"page"`
	NumPages   int    `json:"num_pages"`
	TotalCount int64  `json:"total_count"`
}

type GroupFeed struct {
	Group Group `json:"group"`
	FeedPage
}

type ProfileFeed struct {
	Author     UserResponse `json:"author"`
	PostsCount int64        `json:"posts_count"`
	Following  bool         `json:"following"`
	FeedPage
}

type PostDetail struct {
	Post       Post      `json:"post"`
	Comments   []Comment `json:"comments"`
	PostsCount int64     `json:"posts_count"`
}
