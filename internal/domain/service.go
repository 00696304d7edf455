package domain

import (
	"time"

	"github.com/google/uuid"
)

// ServiceCategory is the closed set of treatment categories the studio offers.
type ServiceCategory string

const (
	CategoryAuricularAesthetics ServiceCategory = "auricular-aesthetics"
	CategoryPiercing            ServiceCategory = "piercing"
	CategoryPlasmaTreatment     ServiceCategory = "plasma-treatment"
	CategoryPediatric           ServiceCategory = "pediatric"
)

// Categories lists every valid category, for validation and UI enumeration.
var Categories = []ServiceCategory{
	CategoryAuricularAesthetics,
	CategoryPiercing,
	CategoryPlasmaTreatment,
	CategoryPediatric,
}

// IsValid reports whether c is one of the known categories.
func (c ServiceCategory) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Service is a bookable treatment from the catalog. Removing a service does
// not rewrite past appointments; they keep the dangling ServiceID for history.
type Service struct {
	ID              uuid.UUID
	Name            string
	Category        ServiceCategory
	DurationMinutes int
	Price           float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the service length as a time.Duration.
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
