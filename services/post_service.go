package services

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/penhub/penhub/config"
	"github.com/penhub/penhub/db"
	apiError "github.com/penhub/penhub/errors"
	"github.com/penhub/penhub/models"
	"gorm.io/gorm"
)

// ErrNotPostAuthor marks an edit attempt by someone other than the post's
// author. Handlers turn it into a redirect to the read-only detail view,
// not an error response.
var ErrNotPostAuthor = apiError.New("caller is not the post author", http.StatusSeeOther)

// PostService interface
type PostService interface {
	CreatePost(authorID uint, request *models.CreatePostRequest) (*models.Post, *apiError.Error)
	EditPost(callerID, postID uint, request *models.EditPostRequest) (*models.Post, *apiError.Error)
	GetPostDetail(postID uint) (*models.PostDetail, *apiError.Error)
}

// postService struct
type postService struct {
	Config      *config.Config
	postRepo    db.PostRepository
	groupRepo   db.GroupRepository
	commentRepo db.CommentRepository
}

// NewPostService creates a new instance of PostService
func NewPostService(postRepo db.PostRepository, groupRepo db.GroupRepository, commentRepo db.CommentRepository, conf *config.Config) PostService {
	return &postService{
		Config:      conf,
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		commentRepo: commentRepo,
	}
}

// resolveGroup validates an optional group reference.
func (s *postService) resolveGroup(groupID *uint) (*uint, *apiError.Error) {
	if groupID == nil {
		return nil, nil
	}
	if _, err := s.groupRepo.FindGroupByID(*groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.New("group does not exist", http.StatusBadRequest)
		}
		log.Printf("resolveGroup error: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return groupID, nil
}

// CreatePost publishes a new post owned by authorID. The author and
// publication date come from the server, never from the request body.
func (s *postService) CreatePost(authorID uint, request *models.CreatePostRequest) (*models.Post, *apiError.Error) {
	if strings.TrimSpace(request.Text) == "" {
		return nil, apiError.New("post text cannot be empty", http.StatusBadRequest)
	}

	groupID, apiErr := s.resolveGroup(request.GroupID)
	if apiErr != nil {
		return nil, apiErr
	}

	post := models.Post{
		Text:     request.Text,
		Image:    request.Image,
		PubDate:  time.Now().UTC(),
		AuthorID: authorID,
		GroupID:  groupID,
	}
	if err := s.postRepo.CreatePost(&post); err != nil {
		log.Printf("CreatePost error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	created, err := s.postRepo.GetPostByID(post.ID)
	if err != nil {
		log.Printf("CreatePost error fetching created post: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return created, nil
}

// EditPost updates text, image and group of an existing post. Only the
// author may edit; anyone else gets ErrNotPostAuthor and the post stays
// untouched.
func (s *postService) EditPost(callerID, postID uint, request *models.EditPostRequest) (*models.Post, *apiError.Error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrNotFound
		}
		log.Printf("EditPost error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if post.AuthorID != callerID {
		return nil, ErrNotPostAuthor
	}

	if strings.TrimSpace(request.Text) == "" {
		return nil, apiError.New("post text cannot be empty", http.StatusBadRequest)
	}

	groupID, apiErr := s.resolveGroup(request.GroupID)
	if apiErr != nil {
		return nil, apiErr
	}

	post.Text = request.Text
	post.Image = request.Image
	post.GroupID = groupID
	if err := s.postRepo.UpdatePost(post); err != nil {
		log.Printf("EditPost error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	updated, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		log.Printf("EditPost error fetching updated post: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	return updated, nil
}

// GetPostDetail returns the post, its comments in creation order and the
// author's total post count.
func (s *postService) GetPostDetail(postID uint) (*models.PostDetail, *apiError.Error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrNotFound
		}
		log.Printf("GetPostDetail error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	comments, err := s.commentRepo.GetCommentsByPostID(postID)
	if err != nil {
		log.Printf("GetPostDetail error fetching comments: %v", err)
		return nil, apiError.ErrInternalServerError
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	postsCount, err := s.postRepo.CountPostsByAuthorID(post.AuthorID)
	if err != nil {
		log.Printf("GetPostDetail error counting author posts: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.PostDetail{
		Post:       *post,
		Comments:   comments,
		PostsCount: postsCount,
	}, nil
}
