package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/penhub/penhub/server/response"
)

func (s *Server) handleFollow() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		followerID := currentUserID(c)

		if apiErr := s.FollowService.Follow(followerID, username); apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Now following "+username, http.StatusOK, nil, nil)
	}
}

func (s *Server) handleUnfollow() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		followerID := currentUserID(c)

		if apiErr := s.FollowService.Unfollow(followerID, username); apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Unfollowed "+username, http.StatusOK, nil, nil)
	}
}
