package db

import (
	"github.com/penhub/penhub/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostRepository interface
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	UpdatePost(post *models.Post) error
	GetAllPosts(page, pageSize int) ([]models.Post, int64, error)
	GetPostsByGroupID(groupID uint, page, pageSize int) ([]models.Post, int64, error)
	GetPostsByAuthorID(authorID uint, page, pageSize int) ([]models.Post, int64, error)
	GetFollowedPosts(userID uint, page, pageSize int) ([]models.Post, int64, error)
	CountPostsByAuthorID(authorID uint) (int64, error)
}

// postRepo struct
type postRepo struct {
	DB *gorm.DB
}

// NewPostRepo creates a new instance of PostRepository
func NewPostRepo(db *GormDB) PostRepository {
	return &postRepo{db.DB}
}

func (r *postRepo) CreatePost(post *models.Post) error {
	if err := r.DB.Create(post).Error; err != nil {
		return err
	}
	return nil
}

func (r *postRepo) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.DB.Preload("Author").Preload("Group").Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, errors.Wrap(err, "could not fetch post")
	}
	return &post, nil
}

// UpdatePost persists an author's edit. Only text, image and group are
// touched; pub_date and author_id stay as created.
func (r *postRepo) UpdatePost(post *models.Post) error {
	return r.DB.Model(&models.Post{}).
		Where("id = ?", post.ID).
		Select("text", "image", "group_id").
		Updates(map[string]interface{}{
			"text":     post.Text,
			"image":    post.Image,
			"group_id": post.GroupID,
		}).Error
}

func (r *postRepo) GetAllPosts(page, pageSize int) ([]models.Post, int64, error) {
	return r.pageOf(r.DB.Model(&models.Post{}), page, pageSize)
}

func (r *postRepo) GetPostsByGroupID(groupID uint, page, pageSize int) ([]models.Post, int64, error) {
	return r.pageOf(r.DB.Model(&models.Post{}).Where("group_id = ?", groupID), page, pageSize)
}

func (r *postRepo) GetPostsByAuthorID(authorID uint, page, pageSize int) ([]models.Post, int64, error) {
	return r.pageOf(r.DB.Model(&models.Post{}).Where("author_id = ?", authorID), page, pageSize)
}

// GetFollowedPosts returns posts whose author the given user follows.
func (r *postRepo) GetFollowedPosts(userID uint, page, pageSize int) ([]models.Post, int64, error) {
	query := r.DB.Model(&models.Post{}).
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", userID)
	return r.pageOf(query, page, pageSize)
}

func (r *postRepo) CountPostsByAuthorID(authorID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// pageOf counts the filtered collection, clamps the requested page and
// fetches that slice newest-first.
func (r *postRepo) pageOf(query *gorm.DB, page, pageSize int) ([]models.Post, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "could not count posts")
	}

	_, offset := ClampPage(page, pageSize, total)

	var posts []models.Post
	err := query.Session(&gorm.Session{}).
		Preload("Author").
		Preload("Group").
		Order("posts.pub_date DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "could not fetch posts")
	}
	return posts, total, nil
}
