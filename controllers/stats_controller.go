package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapi/repository"
	"blogapi/utils"
)

// StatsController exposes aggregate counters for the instance.
type StatsController struct {
	users repository.UserRepository
	posts repository.PostRepository
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(users repository.UserRepository, posts repository.PostRepository) *StatsController {
	return &StatsController{users: users, posts: posts}
}

// GetStats returns the number of stored users and posts.
func (s *StatsController) GetStats(ctx *gin.Context) {
	userCount, err := s.users.Count(ctx.Request.Context())
	if err != nil {
		utils.Sugar.Errorw("count users failed", "error", err)
		utils.Detail(ctx, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %s", err))
		return
	}
	postCount, err := s.posts.Count(ctx.Request.Context())
	if err != nil {
		utils.Sugar.Errorw("count posts failed", "error", err)
		utils.Detail(ctx, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %s", err))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"users": userCount, "posts": postCount})
}
