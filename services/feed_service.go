package services

import (
	"errors"
	"log"

	"github.com/penhub/penhub/config"
	"github.com/penhub/penhub/db"
	apiError "github.com/penhub/penhub/errors"
	"github.com/penhub/penhub/models"
	"gorm.io/gorm"
)

// FeedService assembles the paginated post feeds: global, per group, per
// author profile and the followed-authors feed.
type FeedService interface {
	GlobalFeed(page int) (*models.FeedPage, *apiError.Error)
	GroupFeed(slug string, page int) (*models.GroupFeed, *apiError.Error)
	ProfileFeed(username string, viewerID uint, page int) (*models.ProfileFeed, *apiError.Error)
	FollowedFeed(userID uint, page int) (*models.FeedPage, *apiError.Error)
}

// feedService struct
type feedService struct {
	Config     *config.Config
	postRepo   db.PostRepository
	groupRepo  db.GroupRepository
	followRepo db.FollowRepository
	authRepo   db.AuthRepository
}

// NewFeedService creates a new instance of FeedService
func NewFeedService(postRepo db.PostRepository, groupRepo db.GroupRepository, followRepo db.FollowRepository, authRepo db.AuthRepository, conf *config.Config) FeedService {
	return &feedService{
		Config:     conf,
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		followRepo: followRepo,
		authRepo:   authRepo,
	}
}

func (s *feedService) pageSize() int {
	if s.Config != nil && s.Config.PageSize > 0 {
		return s.Config.PageSize
	}
	return db.DefaultPageSize
}

func (s *feedService) assemblePage(posts []models.Post, total int64, page int) models.FeedPage {
	size := s.pageSize()
	effective, _ := db.ClampPage(page, size, total)
	if posts == nil {
		posts = []models.Post{}
	}
	return models.FeedPage{
		Posts:      posts,
		Page:       effective,
		NumPages:   db.NumPages(total, size),
		TotalCount: total,
	}
}

func (s *feedService) GlobalFeed(page int) (*models.FeedPage, *apiError.Error) {
	posts, total, err := s.postRepo.GetAllPosts(page, s.pageSize())
	if err != nil {
		log.Printf("GlobalFeed error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	feed := s.assemblePage(posts, total, page)
	return &feed, nil
}

func (s *feedService) GroupFeed(slug string, page int) (*models.GroupFeed, *apiError.Error) {
	group, err := s.groupRepo.FindGroupBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrNotFound
		}
		log.Printf("GroupFeed error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	posts, total, err := s.postRepo.GetPostsByGroupID(group.ID, page, s.pageSize())
	if err != nil {
		log.Printf("GroupFeed error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.GroupFeed{
		Group:    *group,
		FeedPage: s.assemblePage(posts, total, page),
	}, nil
}

// ProfileFeed returns an author's posts plus their total post count and
// whether the viewer already follows them. viewerID zero means anonymous,
// which always reports following=false.
func (s *feedService) ProfileFeed(username string, viewerID uint, page int) (*models.ProfileFeed, *apiError.Error) {
	author, err := s.authRepo.FindUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrNotFound
		}
		log.Printf("ProfileFeed error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	posts, total, err := s.postRepo.GetPostsByAuthorID(author.ID, page, s.pageSize())
	if err != nil {
		log.Printf("ProfileFeed error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	following := false
	if viewerID != 0 && viewerID != author.ID {
		following, err = s.followRepo.IsFollowing(viewerID, author.ID)
		if err != nil {
			log.Printf("ProfileFeed error: %v", err)
			return nil, apiError.ErrInternalServerError
		}
	}

	return &models.ProfileFeed{
		Author: models.UserResponse{
			ID:       author.ID,
			Fullname: author.Fullname,
			Username: author.Username,
			Email:    author.Email,
			RoleName: author.Role.Name,
		},
		PostsCount: total,
		Following:  following,
		FeedPage:   s.assemblePage(posts, total, page),
	}, nil
}

func (s *feedService) FollowedFeed(userID uint, page int) (*models.FeedPage, *apiError.Error) {
	posts, total, err := s.postRepo.GetFollowedPosts(userID, page, s.pageSize())
	if err != nil {
		log.Printf("FollowedFeed error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	feed := s.assemblePage(posts, total, page)
	return &feed, nil
}
