package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/penhub/penhub/errors"
	"github.com/penhub/penhub/models"
	"github.com/penhub/penhub/server/response"
)

func (s *Server) handleAddComment() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, err := parsePostID(c)
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.ErrBadRequest)
			return
		}

		var request models.AddCommentRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, translateBindingError(err))
			return
		}

		authorID := currentUserID(c)
		comment, apiErr := s.CommentService.AddComment(authorID, postID, &request)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		response.JSON(c, "Comment added successfully", http.StatusCreated, comment, nil)
	}
}
