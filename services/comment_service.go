package services

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/penhub/penhub/config"
	"github.com/penhub/penhub/db"
	apiError "github.com/penhub/penhub/errors"
	"github.com/penhub/penhub/models"
	"gorm.io/gorm"
)

// CommentService interface
type CommentService interface {
	AddComment(authorID, postID uint, request *models.AddCommentRequest) (*models.Comment, *apiError.Error)
}

// commentService struct
type commentService struct {
	Config      *config.Config
	commentRepo db.CommentRepository
	postRepo    db.PostRepository
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(commentRepo db.CommentRepository, postRepo db.PostRepository, conf *config.Config) CommentService {
	return &commentService{
		Config:      conf,
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment appends a comment to the post. Author and post are taken from
// the request context and route, never from the body.
func (s *commentService) AddComment(authorID, postID uint, request *models.AddCommentRequest) (*models.Comment, *apiError.Error) {
	if strings.TrimSpace(request.Text) == "" {
		return nil, apiError.New("comment text cannot be empty", http.StatusBadRequest)
	}

	if _, err := s.postRepo.GetPostByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrNotFound
		}
		log.Printf("AddComment error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	comment := models.Comment{
		Text:     request.Text,
		PostID:   postID,
		AuthorID: authorID,
	}
	if err := s.commentRepo.CreateComment(&comment); err != nil {
		log.Printf("AddComment error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return &comment, nil
}
