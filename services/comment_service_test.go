package services

import (
	"testing"

	"github.com/penhub/penhub/config"
	"github.com/penhub/penhub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentFixture(t *testing.T) (*fakePostRepo, *fakeCommentRepo, CommentService) {
	t.Helper()
	posts := newFakePostRepo()
	comments := newFakeCommentRepo()
	svc := NewCommentService(comments, posts, &config.Config{})
	return posts, comments, svc
}

func TestAddComment_AppendsToPost(t *testing.T) {
	posts, _, svc := newCommentFixture(t)
	post := models.Post{Text: "a post", AuthorID: 1}
	require.NoError(t, posts.CreatePost(&post))

	comment, apiErr := svc.AddComment(2, post.ID, &models.AddCommentRequest{Text: "well said"})
	require.Nil(t, apiErr)
	assert.Equal(t, uint(2), comment.AuthorID)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, "well said", comment.Text)
}

func TestAddComment_EmptyTextRejected(t *testing.T) {
	posts, comments, svc := newCommentFixture(t)
	post := models.Post{Text: "a post", AuthorID: 1}
	require.NoError(t, posts.CreatePost(&post))

	_, apiErr := svc.AddComment(2, post.ID, &models.AddCommentRequest{Text: "  "})
	require.NotNil(t, apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Empty(t, comments.comments)
}

func TestAddComment_UnknownPostNotFound(t *testing.T) {
	_, _, svc := newCommentFixture(t)

	_, apiErr := svc.AddComment(2, 999, &models.AddCommentRequest{Text: "hello"})
	require.NotNil(t, apiErr)
	assert.Equal(t, 404, apiErr.Status)
}
