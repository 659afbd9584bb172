package server

import (
	"fmt"
	"os"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (s *Server) setupRouter() *gin.Engine {
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "test" {
		r := gin.New()
		s.defineRoutes(r)
		return r
	}

	r := gin.New()

	// LoggerWithFormatter middleware will write the logs to gin.DefaultWriter
	// By default gin.DefaultWriter = os.Stdout
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	s.defineRoutes(r)

	return r
}

func (s *Server) defineRoutes(router *gin.Engine) {
	authLimiter := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 10,
	})

	apirouter := router.Group("/api/v1")
	apirouter.POST("/auth/signup", limitRateForAuthRoutes(authLimiter), s.handleSignup())
	apirouter.POST("/auth/login", limitRateForAuthRoutes(authLimiter), s.handleLogin())

	apirouter.GET("/posts", s.handleGetGlobalFeed())
	apirouter.GET("/posts/:id", s.handleGetPostDetail())
	apirouter.GET("/groups", s.handleGetGroups())
	apirouter.GET("/groups/:slug/posts", s.handleGetGroupFeed())
	apirouter.GET("/profiles/:username/posts", s.CurrentUserOptional(), s.handleGetProfileFeed())

	authorized := apirouter.Group("/")
	authorized.Use(s.Authorize())
	authorized.GET("/auth/logout", s.handleLogout())
	authorized.POST("/posts", s.handleCreatePost())
	authorized.PUT("/posts/:id", s.handleEditPost())
	authorized.POST("/posts/:id/comments", s.handleAddComment())
	authorized.GET("/feed", s.handleGetFollowedFeed())
	authorized.POST("/profiles/:username/follow", s.handleFollow())
	authorized.DELETE("/profiles/:username/follow", s.handleUnfollow())
	authorized.POST("/groups", s.EnsureAdmin(), s.handleCreateGroup())
}
