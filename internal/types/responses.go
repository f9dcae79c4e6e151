// Package types holds the wire representations shared across handlers.
package types

import "github.com/shelfd-dev/shelfd/internal/models"

// UserResponse is the public projection of a user. The stored password is
// never part of it.
type UserResponse struct {
	ID       uint           `json:"id"`
	Email    string         `json:"email"`
	IsActive bool           `json:"is_active"`
	Items    []ItemResponse `json:"items"`
}

type ItemResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     uint   `json:"owner_id"`
}

type StatusMessage struct {
	Message string `json:"message"`
}

func NewUserResponse(user *models.User) UserResponse {
	// Allocated even when empty so the items field serializes as [].
	items := make([]ItemResponse, 0, len(user.Items))

	for i := range user.Items {
		items = append(items, NewItemResponse(&user.Items[i]))
	}

	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		IsActive: user.IsActive,
		Items:    items,
	}
}

func NewItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		OwnerID:     item.OwnerID,
	}
}
