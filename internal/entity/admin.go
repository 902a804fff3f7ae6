package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents a dashboard administrator for data transfer between layers.
// Password never leaves the repository layer.
type Admin struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      *string    `json:"name,omitempty"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
