package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogapi/models"
	"blogapi/services"
	"blogapi/utils"
)

// PostController manages CRUD operations for posts.
type PostController struct {
	svc *services.PostService
}

// NewPostController creates a new PostController instance.
func NewPostController(svc *services.PostService) *PostController {
	return &PostController{svc: svc}
}

// CreatePost stores a new post after the author and title checks.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var payload models.PostPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		utils.Detail(ctx, http.StatusBadRequest, models.ValidationDetail(err))
		return
	}

	post, err := p.svc.Create(ctx.Request.Context(), &payload)
	switch {
	case errors.Is(err, services.ErrAuthorMissing):
		utils.Detail(ctx, http.StatusBadRequest, "User does not exist")
	case errors.Is(err, services.ErrTitleTaken):
		utils.Detail(ctx, http.StatusBadRequest, "Post already exists")
	case err != nil:
		utils.Sugar.Errorw("create post failed", "error", err)
		utils.Detail(ctx, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %s", err))
	default:
		ctx.JSON(http.StatusOK, post)
	}
}

// GetPosts returns every post.
func (p *PostController) GetPosts(ctx *gin.Context) {
	posts, err := p.svc.List(ctx.Request.Context())
	if err != nil {
		utils.Sugar.Errorw("list posts failed", "error", err)
		utils.Detail(ctx, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %s", err))
		return
	}
	ctx.JSON(http.StatusOK, models.PostList{Posts: posts})
}

// GetPostByID returns a single post.
func (p *PostController) GetPostByID(ctx *gin.Context) {
	post, err := p.svc.GetByID(ctx.Request.Context(), ctx.Param("id"))
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		utils.Detail(ctx, http.StatusNotFound, "Post not found")
	case err != nil:
		utils.Sugar.Errorw("get post failed", "error", err)
		utils.Detail(ctx, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %s", err))
	default:
		ctx.JSON(http.StatusOK, post)
	}
}

// UpdatePost replaces title, content and author of an existing post.
func (p *PostController) UpdatePost(ctx *gin.Context) {
	var payload models.PostPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		utils.Detail(ctx, http.StatusBadRequest, models.ValidationDetail(err))
		return
	}

	post, err := p.svc.Update(ctx.Request.Context(), ctx.Param("id"), &payload)
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		utils.Detail(ctx, http.StatusNotFound, "Post not found")
	case errors.Is(err, services.ErrAuthorMissing):
		utils.Detail(ctx, http.StatusBadRequest, "User does not exist")
	case errors.Is(err, services.ErrTitleTaken):
		utils.Detail(ctx, http.StatusBadRequest, "Post already exists")
	case err != nil:
		utils.Sugar.Errorw("update post failed", "error", err)
		utils.Detail(ctx, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %s", err))
	default:
		ctx.JSON(http.StatusOK, post)
	}
}

// DeletePost removes a post permanently.
func (p *PostController) DeletePost(ctx *gin.Context) {
	err := p.svc.Delete(ctx.Request.Context(), ctx.Param("id"))
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		utils.Detail(ctx, http.StatusNotFound, "Post not found")
	case err != nil:
		utils.Sugar.Errorw("delete post failed", "error", err)
		utils.Detail(ctx, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %s", err))
	default:
		utils.Message(ctx, http.StatusNoContent, "Post deleted successfully")
	}
}
