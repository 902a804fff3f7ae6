package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a marketplace user for data transfer between layers.
type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	ProfileImage  *string   `json:"profile_image,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Address       *string   `json:"address,omitempty"`
	CNIC          *string   `json:"cnic,omitempty"`
	Gender        *string   `json:"gender,omitempty"`
	IsApproved    bool      `json:"is_approved"`
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int       `json:"total_reviews"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
