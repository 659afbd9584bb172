package services

import (
	"log"

	"github.com/penhub/penhub/config"
	"github.com/penhub/penhub/db"
	apiError "github.com/penhub/penhub/errors"
	"github.com/penhub/penhub/models"
)

// GroupService interface
type GroupService interface {
	CreateGroup(request *models.CreateGroupRequest) (*models.Group, *apiError.Error)
	GetAllGroups() ([]models.Group, *apiError.Error)
}

// groupService struct
type groupService struct {
	Config    *config.Config
	groupRepo db.GroupRepository
}

// NewGroupService creates a new instance of GroupService
func NewGroupService(groupRepo db.GroupRepository, conf *config.Config) GroupService {
	return &groupService{
		Config:    conf,
		groupRepo: groupRepo,
	}
}

func (s *groupService) CreateGroup(request *models.CreateGroupRequest) (*models.Group, *apiError.Error) {
	group := models.Group{
		Title:       request.Title,
		Slug:        request.Slug,
		Description: request.Description,
	}
	if err := s.groupRepo.CreateGroup(&group); err != nil {
		log.Printf("CreateGroup error: %v", err)
		return nil, apiError.GetUniqueContraintError(err)
	}
	return &group, nil
}

func (s *groupService) GetAllGroups() ([]models.Group, *apiError.Error) {
	groups, err := s.groupRepo.GetAllGroups()
	if err != nil {
		log.Printf("GetAllGroups error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	if groups == nil {
		groups = []models.Group{}
	}
	return groups, nil
}
