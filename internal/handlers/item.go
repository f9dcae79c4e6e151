package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shelfd-dev/shelfd/internal/store"
	"github.com/shelfd-dev/shelfd/internal/types"
)

type CreateItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type ItemHandler struct {
	store *store.Store
}

func NewItemHandler(s *store.Store) *ItemHandler {
	return &ItemHandler{store: s}
}

func (h *ItemHandler) CreateItem(ctx *gin.Context) {
	id, ok := parseUserID(ctx)

	if !ok {
		return
	}

	var body CreateItemRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	item, err := h.store.CreateItem(ctx.Request.Context(), store.CreateItemParams{
		Title:       body.Title,
		Description: body.Description,
	}, id)

	if err != nil {
		if errors.Is(err, store.ErrOwnerMissing) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Failed to create item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, types.NewItemResponse(item))
}

func (h *ItemHandler) ListItems(ctx *gin.Context) {
	skip, limit, ok := parsePage(ctx)

	if !ok {
		return
	}

	items, err := h.store.ListItems(ctx.Request.Context(), skip, limit)

	if err != nil {
		log.Printf("Failed to list items: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.ItemResponse, 0, len(items))

	for i := range items {
		response = append(response, types.NewItemResponse(&items[i]))
	}

	ctx.JSON(http.StatusOK, response)
}
