package services

import (
	"testing"

	"github.com/penhub/penhub/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFollowFixture(t *testing.T) (*fakeFollowRepo, *fakeAuthRepo, FollowService) {
	t.Helper()
	follows := newFakeFollowRepo()
	users := newFakeAuthRepo()
	svc := NewFollowService(follows, users, &config.Config{})
	return follows, users, svc
}

func TestFollow_CreatesEdge(t *testing.T) {
	follows, users, svc := newFollowFixture(t)
	follower := users.addUser("follower")
	users.addUser("following")

	require.Nil(t, svc.Follow(follower.ID, "following"))
	assert.Equal(t, 1, follows.count())

	following, apiErr := svc.IsFollowing(follower.ID, "following")
	require.Nil(t, apiErr)
	assert.True(t, following)
}

func TestFollow_SelfFollowIsNoOp(t *testing.T) {
	follows, users, svc := newFollowFixture(t)
	user := users.addUser("loner")

	require.Nil(t, svc.Follow(user.ID, "loner"))
	assert.Equal(t, 0, follows.count())
}

func TestFollow_Idempotent(t *testing.T) {
	follows, users, svc := newFollowFixture(t)
	follower := users.addUser("follower")
	users.addUser("following")

	require.Nil(t, svc.Follow(follower.ID, "following"))
	require.Nil(t, svc.Follow(follower.ID, "following"))
	assert.Equal(t, 1, follows.count())
}

func TestUnfollow_RemovesEdge(t *testing.T) {
	follows, users, svc := newFollowFixture(t)
	follower := users.addUser("follower")
	users.addUser("following")

	require.Nil(t, svc.Follow(follower.ID, "following"))
	require.Nil(t, svc.Unfollow(follower.ID, "following"))
	assert.Equal(t, 0, follows.count())
}

func TestUnfollow_MissingEdgeIsNoOp(t *testing.T) {
	follows, users, svc := newFollowFixture(t)
	follower := users.addUser("follower")
	users.addUser("following")

	require.Nil(t, svc.Unfollow(follower.ID, "following"))
	assert.Equal(t, 0, follows.count())
}

func TestFollow_UnknownTargetNotFound(t *testing.T) {
	_, users, svc := newFollowFixture(t)
	follower := users.addUser("follower")

	apiErr := svc.Follow(follower.ID, "ghost")
	require.NotNil(t, apiErr)
	assert.Equal(t, 404, apiErr.Status)
}
