package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is a person booking appointments. Phone is the natural dedup key:
// the booking flow never creates two clients with the same non-empty phone.
// Matching is exact string equality; no formatting normalization is applied.
type Client struct {
	ID    uuid.UUID
	Name  string
	Email string
	Phone string

	CreatedAt time.Time
	UpdatedAt time.Time
}
