package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	errs "github.com/penhub/penhub/errors"
	"github.com/penhub/penhub/models"
	"github.com/penhub/penhub/server/response"
	"github.com/penhub/penhub/services"
)

func postDetailPath(postID uint) string {
	return fmt.Sprintf("/api/v1/posts/%d", postID)
}

func parsePostID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (s *Server) handleCreatePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request models.CreatePostRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, translateBindingError(err))
			return
		}

		authorID := currentUserID(c)
		post, apiErr := s.PostService.CreatePost(authorID, &request)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		c.Header("Location", postDetailPath(post.ID))
		response.JSON(c, "Post created successfully", http.StatusCreated, post, nil)
	}
}

func (s *Server) handleEditPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, err := parsePostID(c)
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.ErrBadRequest)
			return
		}

		var request models.EditPostRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, translateBindingError(err))
			return
		}

		callerID := currentUserID(c)
		post, apiErr := s.PostService.EditPost(callerID, postID, &request)
		if apiErr != nil {
			// A non-author is quietly sent to the read-only detail view.
			if apiErr == services.ErrNotPostAuthor {
				c.Redirect(http.StatusSeeOther, postDetailPath(postID))
				return
			}
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		response.JSON(c, "Post updated successfully", http.StatusOK, post, nil)
	}
}

func (s *Server) handleGetPostDetail() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, err := parsePostID(c)
		if err != nil {
			response.JSON(c, "", http.StatusBadRequest, nil, errs.ErrBadRequest)
			return
		}

		detail, apiErr := s.PostService.GetPostDetail(postID)
		if apiErr != nil {
			response.JSON(c, "", apiErr.Status, nil, apiErr)
			return
		}

		response.JSON(c, "Post retrieved successfully", http.StatusOK, detail, nil)
	}
}
