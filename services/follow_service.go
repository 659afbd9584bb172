package services

import (
	"errors"
	"log"

	"github.com/penhub/penhub/config"
	"github.com/penhub/penhub/db"
	apiError "github.com/penhub/penhub/errors"
	"gorm.io/gorm"
)

// FollowService interface
type FollowService interface {
	Follow(followerID uint, targetUsername string) *apiError.Error
	Unfollow(followerID uint, targetUsername string) *apiError.Error
	IsFollowing(followerID uint, targetUsername string) (bool, *apiError.Error)
}

// followService struct
type followService struct {
	Config     *config.Config
	followRepo db.FollowRepository
	authRepo   db.AuthRepository
}

// NewFollowService creates a new instance of FollowService
func NewFollowService(followRepo db.FollowRepository, authRepo db.AuthRepository, conf *config.Config) FollowService {
	return &followService{
		Config:     conf,
		followRepo: followRepo,
		authRepo:   authRepo,
	}
}

func (s *followService) resolveTarget(username string) (uint, *apiError.Error) {
	target, err := s.authRepo.FindUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apiError.ErrNotFound
		}
		log.Printf("resolveTarget error: %v", err)
		return 0, apiError.ErrInternalServerError
	}
	return target.ID, nil
}

// Follow subscribes followerID to the target author. Self-follow and
// already-following are silent no-ops.
func (s *followService) Follow(followerID uint, targetUsername string) *apiError.Error {
	targetID, apiErr := s.resolveTarget(targetUsername)
	if apiErr != nil {
		return apiErr
	}
	if followerID == targetID {
		return nil
	}
	if err := s.followRepo.CreateFollow(followerID, targetID); err != nil {
		log.Printf("Follow error: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}

// Unfollow removes the subscription; a missing edge is not an error.
func (s *followService) Unfollow(followerID uint, targetUsername string) *apiError.Error {
	targetID, apiErr := s.resolveTarget(targetUsername)
	if apiErr != nil {
		return apiErr
	}
	if err := s.followRepo.DeleteFollow(followerID, targetID); err != nil {
		log.Printf("Unfollow error: %v", err)
		return apiError.ErrInternalServerError
	}
	return nil
}

func (s *followService) IsFollowing(followerID uint, targetUsername string) (bool, *apiError.Error) {
	targetID, apiErr := s.resolveTarget(targetUsername)
	if apiErr != nil {
		return false, apiErr
	}
	following, err := s.followRepo.IsFollowing(followerID, targetID)
	if err != nil {
		log.Printf("IsFollowing error: %v", err)
		return false, apiError.ErrInternalServerError
	}
	return following, nil
}
