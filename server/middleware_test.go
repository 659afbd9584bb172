package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/penhub/penhub/models"
	"github.com/stretchr/testify/assert"
)

func adminTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/groups", nil)
	return c, w
}

func TestEnsureAdmin_AdminPassesThrough(t *testing.T) {
	c, w := adminTestContext(t)
	c.Set("user", &models.User{Role: models.Role{Name: models.RoleAdmin}})

	s := &Server{}
	s.EnsureAdmin()(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEnsureAdmin_NonAdminForbidden(t *testing.T) {
	c, w := adminTestContext(t)
	c.Set("user", &models.User{Role: models.Role{Name: models.RoleUser}})

	s := &Server{}
	s.EnsureAdmin()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestEnsureAdmin_MissingUserUnauthorized(t *testing.T) {
	c, w := adminTestContext(t)

	s := &Server{}
	s.EnsureAdmin()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
