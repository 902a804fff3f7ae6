package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a listing for data transfer between layers.
type Product struct {
	ID            uuid.UUID `json:"id"`
	SellerID      uuid.UUID `json:"seller_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	Images        []string  `json:"images,omitempty"`
	SellerName    string    `json:"seller_name"`
	IsActive      bool      `json:"is_active"`
	IsApproved    bool      `json:"is_approved"`
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int       `json:"total_reviews"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
