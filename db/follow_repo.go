package db

import (
	"log"
	"strings"

	"github.com/penhub/penhub/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// FollowRepository interface
type FollowRepository interface {
	CreateFollow(userID, authorID uint) error
	DeleteFollow(userID, authorID uint) error
	IsFollowing(userID, authorID uint) (bool, error)
}

// followRepo struct
type followRepo struct {
	DB *gorm.DB
}

// NewFollowRepo creates a new instance of FollowRepository
func NewFollowRepo(db *GormDB) FollowRepository {
	return &followRepo{db.DB}
}

// CreateFollow creates the edge (userID, authorID). Calling it again for an
// existing edge is a no-op, the unique index backs this up under races.
func (r *followRepo) CreateFollow(userID, authorID uint) error {
	if userID == authorID {
		return nil
	}

	var existing models.Follow
	err := r.DB.Where("user_id = ? AND author_id = ?", userID, authorID).First(&existing).Error
	if err == nil {
		log.Printf("user %d already follows author %d", userID, authorID)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrap(err, "could not check existing follow")
	}

	follow := models.Follow{
		UserID:   userID,
		AuthorID: authorID,
	}
	if err := r.DB.Create(&follow).Error; err != nil {
		if isUniqueViolation(err) {
			log.Printf("user %d lost a concurrent follow of author %d", userID, authorID)
			return nil
		}
		return errors.Wrap(err, "could not create follow")
	}
	return nil
}

// isUniqueViolation reports whether err is a unique-index violation. The gorm
// connection translates these to ErrDuplicatedKey; the string checks also
// match the raw postgres error in case a session is opened without
// translation.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "SQLSTATE 23505")
}

// DeleteFollow removes the edge if present. A missing edge is not an error.
func (r *followRepo) DeleteFollow(userID, authorID uint) error {
	err := r.DB.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return errors.Wrap(err, "could not delete follow")
	}
	return nil
}

func (r *followRepo) IsFollowing(userID, authorID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "could not check follow")
	}
	return count > 0, nil
}
