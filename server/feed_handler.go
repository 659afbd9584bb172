package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/penhub/penhub/db"
	"github.com/penhub/penhub/server/response"
)

func (s *Server) handleGetGlobalFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := db.ParsePage(c.Query("page"))

		feed, apiErr := s.FeedService.GlobalFeed(page)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Posts retrieved successfully", http.StatusOK, feed, nil)
	}
}

func (s *Server) handleGetGroupFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		page := db.ParsePage(c.Query("page"))

		feed, apiErr := s.FeedService.GroupFeed(slug, page)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Group posts retrieved successfully", http.StatusOK, feed, nil)
	}
}

func (s *Server) handleGetProfileFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		page := db.ParsePage(c.Query("page"))
		viewerID := currentUserID(c)

		feed, apiErr := s.FeedService.ProfileFeed(username, viewerID, page)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Profile posts retrieved successfully", http.StatusOK, feed, nil)
	}
}

func (s *Server) handleGetFollowedFeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := db.ParsePage(c.Query("page"))
		userID := currentUserID(c)

		feed, apiErr := s.FeedService.FollowedFeed(userID, page)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}
		response.JSON(c, "Followed posts retrieved successfully", http.StatusOK, feed, nil)
	}
}
