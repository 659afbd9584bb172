package db

import (
	"github.com/penhub/penhub/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GroupRepository interface
type GroupRepository interface {
	CreateGroup(group *models.Group) error
	FindGroupBySlug(slug string) (*models.Group, error)
	FindGroupByID(id uint) (*models.Group, error)
	GetAllGroups() ([]models.Group, error)
}

// groupRepo struct
type groupRepo struct {
	DB *gorm.DB
}

// NewGroupRepo creates a new instance of GroupRepository
func NewGroupRepo(db *GormDB) GroupRepository {
	return &groupRepo{db.DB}
}

func (r *groupRepo) CreateGroup(group *models.Group) error {
	return r.DB.Create(group).Error
}

func (r *groupRepo) FindGroupBySlug(slug string) (*models.Group, error) {
	var group models.Group
	err := r.DB.Where("slug = ?", slug).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, errors.Wrap(err, "could not fetch group")
	}
	return &group, nil
}

func (r *groupRepo) FindGroupByID(id uint) (*models.Group, error) {
	var group models.Group
	err := r.DB.Where("id = ?", id).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, errors.Wrap(err, "could not fetch group")
	}
	return &group, nil
}

func (r *groupRepo) GetAllGroups() ([]models.Group, error) {
	var groups []models.Group
	if err := r.DB.Order("title ASC").Find(&groups).Error; err != nil {
		return nil, errors.Wrap(err, "could not fetch groups")
	}
	return groups, nil
}
