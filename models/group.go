package models

// Group is a thematic collection posts can be published into. The slug is
// the group's URL identifier and never changes after creation.
type Group struct {
	Model
	Title       string `json:"title" gorm:"index;not null" binding:"required"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null" binding:"required,max=255"`
	Description string `json:"description" gorm:"type:text"`
}

type CreateGroupRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Slug        string `json:"slug" binding:"required,max=255"`
	Description string `json:"description"`
}
