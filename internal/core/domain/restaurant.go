package domain

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is owned by exactly one user; an owner has at most one restaurant.
type Restaurant struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Owner     *User     `json:"owner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
