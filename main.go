package main

import (
	"log"

	"github.com/penhub/penhub/config"
	"github.com/penhub/penhub/db"
	"github.com/penhub/penhub/server"
	"github.com/penhub/penhub/services"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	gormDB := db.GetDB(conf)
	if err := db.SeedRoles(gormDB.DB); err != nil {
		log.Fatalf("error seeding roles: %v", err)
	}

	authRepo := db.NewAuthRepo(gormDB)
	postRepo := db.NewPostRepo(gormDB)
	groupRepo := db.NewGroupRepo(gormDB)
	followRepo := db.NewFollowRepo(gormDB)
	commentRepo := db.NewCommentRepo(gormDB)

	authService := services.NewAuthService(authRepo, conf)
	feedService := services.NewFeedService(postRepo, groupRepo, followRepo, authRepo, conf)
	postService := services.NewPostService(postRepo, groupRepo, commentRepo, conf)
	followService := services.NewFollowService(followRepo, authRepo, conf)
	commentService := services.NewCommentService(commentRepo, postRepo, conf)
	groupService := services.NewGroupService(groupRepo, conf)

	s := &server.Server{
		Config:         conf,
		AuthRepository: authRepo,
		AuthService:    authService,
		FeedService:    feedService,
		PostService:    postService,
		FollowService:  followService,
		CommentService: commentService,
		GroupService:   groupService,
	}

	s.Start()
}
