package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shop represents a seller shop for data transfer between layers.
type Shop struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	City          *string   `json:"city,omitempty"`
	LogoImage     *string   `json:"logo_image,omitempty"`
	IsFeatured    bool      `json:"is_featured"`
	IsActive      bool      `json:"is_active"`
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int       `json:"total_reviews"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
