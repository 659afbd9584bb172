package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/penhub/penhub/models"
	"github.com/penhub/penhub/server/response"
)

func (s *Server) handleCreateGroup() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.CreateGroupRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, translateBindingError(err))
			return
		}

		group, apiErr := s.GroupService.CreateGroup(&request)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		response.JSON(c, "Group created successfully", http.StatusCreated, group, nil)
	}
}

func (s *Server) handleGetGroups() gin.HandlerFunc {
	return func(c *gin.Context) {
		groups, apiErr := s.GroupService.GetAllGroups()
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		response.JSON(c, "Groups retrieved successfully", http.StatusOK, groups, nil)
	}
}
