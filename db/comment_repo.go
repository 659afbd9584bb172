package db

import (
	"github.com/penhub/penhub/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CommentRepository interface
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentsByPostID(postID uint) ([]models.Comment, error)
}

// commentRepo struct
type commentRepo struct {
	DB *gorm.DB
}

// NewCommentRepo creates a new instance of CommentRepository
func NewCommentRepo(db *GormDB) CommentRepository {
	return &commentRepo{db.DB}
}

func (r *commentRepo) CreateComment(comment *models.Comment) error {
	if err := r.DB.Create(comment).Error; err != nil {
		return errors.Wrap(err, "could not create comment")
	}
	return nil
}

func (r *commentRepo) GetCommentsByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.DB.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch comments")
	}
	return comments, nil
}
