package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shelfd-dev/shelfd/internal/store"
	"github.com/shelfd-dev/shelfd/internal/types"
)

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password *string `json:"password"`
	IsActive *bool   `json:"is_active"`
}

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

func (h *UserHandler) CreateUser(ctx *gin.Context) {
	var body CreateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.store.CreateUser(ctx.Request.Context(), store.CreateUserParams{
		Email:    body.Email,
		Password: body.Password,
	})

	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(user))
}

func (h *UserHandler) ListUsers(ctx *gin.Context) {
	skip, limit, ok := parsePage(ctx)

	if !ok {
		return
	}

	users, err := h.store.ListUsers(ctx.Request.Context(), skip, limit)

	if err != nil {
		log.Printf("Failed to list users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.UserResponse, 0, len(users))

	for i := range users {
		response = append(response, types.NewUserResponse(&users[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *UserHandler) GetUser(ctx *gin.Context) {
	id, ok := parseUserID(ctx)

	if !ok {
		return
	}

	user, err := h.store.GetUser(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(user))
}

func (h *UserHandler) UpdateUser(ctx *gin.Context) {
	id, ok := parseUserID(ctx)

	if !ok {
		return
	}

	var body UpdateUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// An omitted is_active means true, matching the create-time default.
	isActive := true

	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	user, err := h.store.UpdateUser(ctx.Request.Context(), id, store.UpdateUserParams{
		Email:    body.Email,
		Password: body.Password,
		IsActive: isActive,
	})

	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, store.ErrEmailTaken):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Failed to update user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, types.NewUserResponse(user))
}

func (h *UserHandler) DeleteUser(ctx *gin.Context) {
	id, ok := parseUserID(ctx)

	if !ok {
		return
	}

	if _, err := h.store.DeleteUser(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Failed to delete user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.StatusMessage{Message: "Delete successful."})
}

func parseUserID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("user_id"), 10, 32)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return 0, false
	}

	return uint(id), true
}

func parsePage(ctx *gin.Context) (int, int, bool) {
	skip, err := strconv.Atoi(ctx.DefaultQuery("skip", "0"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skip parameter"})
		return 0, 0, false
	}

	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return 0, 0, false
	}

	return skip, limit, true
}
