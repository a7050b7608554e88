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

// UserController manages CRUD operations for users.
type UserController struct {
	svc *services.UserService
}

// NewUserController creates a new UserController instance.
func NewUserController(svc *services.UserService) *UserController {
	return &UserController{svc: svc}
}

// CreateUser registers a new user and returns the stored record.
func (u *UserController) CreateUser(ctx *gin.Context) {
	var payload models.UserPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		utils.Detail(ctx, http.StatusBadRequest, models.ValidationDetail(err))
		return
	}

	user, err := u.svc.Create(ctx.Request.Context(), &payload)
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		utils.Detail(ctx, http.StatusBadRequest, "User already exists")
	case err != nil:
		utils.Sugar.Errorw("create user failed", "error", err)
		utils.Detail(ctx, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %s", err))
	default:
		ctx.JSON(http.StatusOK, user)
	}
}

// GetAllUsers returns every registered user.
func (u *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := u.svc.List(ctx.Request.Context())
	if err != nil {
		utils.Sugar.Errorw("list users failed", "error", err)
		utils.Detail(ctx, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %s", err))
		return
	}
	ctx.JSON(http.StatusOK, models.UserList{Users: users})
}

// GetUserByID returns a single user.
func (u *UserController) GetUserByID(ctx *gin.Context) {
	user, err := u.svc.GetByID(ctx.Request.Context(), ctx.Param("id"))
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		utils.Detail(ctx, http.StatusNotFound, "User not found")
	case err != nil:
		utils.Sugar.Errorw("get user failed", "error", err)
		utils.Detail(ctx, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %s", err))
	default:
		ctx.JSON(http.StatusOK, user)
	}
}

// UpdateUser replaces fullName and email of an existing user.
func (u *UserController) UpdateUser(ctx *gin.Context) {
	var payload models.UserPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		utils.Detail(ctx, http.StatusBadRequest, models.ValidationDetail(err))
		return
	}

	user, err := u.svc.Update(ctx.Request.Context(), ctx.Param("id"), &payload)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		utils.Detail(ctx, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrEmailTaken):
		utils.Detail(ctx, http.StatusBadRequest, "User already exists")
	case err != nil:
		utils.Sugar.Errorw("update user failed", "error", err)
		utils.Detail(ctx, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %s", err))
	default:
		ctx.JSON(http.StatusOK, user)
	}
}

// DeleteUser removes a user permanently. Posts by the user are not touched.
func (u *UserController) DeleteUser(ctx *gin.Context) {
	err := u.svc.Delete(ctx.Request.Context(), ctx.Param("id"))
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		utils.Detail(ctx, http.StatusNotFound, "User not found")
	case err != nil:
		utils.Sugar.Errorw("delete user failed", "error", err)
		utils.Detail(ctx, http.StatusInternalServerError, fmt.Sprintf("An error occurred: %s", err))
	default:
		utils.Message(ctx, http.StatusNoContent, "User deleted successfully")
	}
}
