package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is the only persisted entity. Rows are insert-only; the admin
// dashboard may delete them but nothing ever updates one.
type Review struct {
	ID             uuid.UUID `db:"id"`
	RestaurantName string    `db:"restaurant_name"`
	ReviewText     string    `db:"review_text"`
	Rating         int       `db:"rating"` // 1-5
	CreatedAt      time.Time `db:"created_at"`
}
