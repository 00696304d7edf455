package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
	"github.com/lucasmrqs/EAS-BookingService/pkg/types"
)

var (
	// ErrInvalidCategory is returned for an unknown service category.
	ErrInvalidCategory = errors.New("invalid service category")

	// ErrInvalidSchedule is returned for a malformed weekly schedule.
	ErrInvalidSchedule = errors.New("invalid weekly schedule")
)

// Service catalog models

// ServiceRequest creates or updates a catalog service.
type ServiceRequest struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ToDomainService converts the request, validating category, duration and price.
func (r *ServiceRequest) ToDomainService(id uuid.UUID) (*domain.Service, error) {
	if strings.TrimSpace(r.Name) == "" {
		return nil, errors.New("service name is required")
	}

	category := domain.ServiceCategory(r.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, r.Category)
	}
	if r.DurationMinutes <= 0 {
		return nil, errors.New("duration must be positive")
	}
	if r.Price < 0 {
		return nil, errors.New("price must not be negative")
	}

	return &domain.Service{
		ID:              id,
		Name:            r.Name,
		Category:        category,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
	}, nil
}

// ServiceResponse is the outward service shape.
type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           float64   `json:"price"`
}

// ServiceListResponse wraps a listing.
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int                `json:"total"`
}

// FromDomainService converts a domain service.
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Category:        string(s.Category),
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
	}
}

// FromDomainServiceList converts a domain service slice.
func FromDomainServiceList(list []*domain.Service) *ServiceListResponse {
	out := make([]*ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromDomainService(s))
	}
	return &ServiceListResponse{Services: out, Total: len(out)}
}

// Professional roster models

// DayWindowModel is one day's working window. A missing or closed day carries
// no times.
type DayWindowModel struct {
	Open  bool   `json:"open"`
	Start string `json:"start,omitempty"` // "HH:MM"
	End   string `json:"end,omitempty"`
}

// weekdayNames maps JSON keys to time.Weekday, Sunday first.
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ProfessionalRequest creates or updates a roster member. Days absent from
// WeeklySchedule are closed.
type ProfessionalRequest struct {
	Name              string                    `json:"name"`
	Role              string                    `json:"role"`
	OfferedServiceIDs []uuid.UUID               `json:"offeredServiceIds"`
	WeeklySchedule    map[string]DayWindowModel `json:"weeklySchedule"`
}

// ToDomainProfessional converts the request, validating every open window.
func (r *ProfessionalRequest) ToDomainProfessional(id uuid.UUID) (*domain.Professional, error) {
	if strings.TrimSpace(r.Name) == "" {
		return nil, errors.New("professional name is required")
	}

	var schedule domain.WeeklySchedule
	for i := range schedule {
		schedule[i] = domain.Closed()
	}

	for day, window := range r.WeeklySchedule {
		weekday, ok := weekdayNames[strings.ToLower(day)]
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidSchedule, day)
		}
		if !window.Open {
			continue
		}
		schedule[weekday] = domain.Window(types.TimeString(window.Start), types.TimeString(window.End))
	}

	if err := schedule.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	return &domain.Professional{
		ID:                id,
		Name:              r.Name,
		Role:              r.Role,
		OfferedServiceIDs: r.OfferedServiceIDs,
		WeeklySchedule:    schedule,
	}, nil
}

// ProfessionalResponse is the outward professional shape.
type ProfessionalResponse struct {
	ID                uuid.UUID                 `json:"id"`
	Name              string                    `json:"name"`
	Role              string                    `json:"role"`
	OfferedServiceIDs []uuid.UUID               `json:"offeredServiceIds"`
	WeeklySchedule    map[string]DayWindowModel `json:"weeklySchedule"`
}

// ProfessionalListResponse wraps a listing.
type ProfessionalListResponse struct {
	Professionals []*ProfessionalResponse `json:"professionals"`
	Total         int                     `json:"total"`
}

// FromDomainProfessional converts a domain professional. Closed days are
// omitted from the schedule map.
func FromDomainProfessional(p *domain.Professional) *ProfessionalResponse {
	schedule := make(map[string]DayWindowModel)
	for name, weekday := range weekdayNames {
		window := p.WeeklySchedule.WindowFor(weekday)
		if !window.Open {
			continue
		}
		schedule[name] = DayWindowModel{
			Open:  true,
			Start: window.Start.String(),
			End:   window.End.String(),
		}
	}

	return &ProfessionalResponse{
		ID:                p.ID,
		Name:              p.Name,
		Role:              p.Role,
		OfferedServiceIDs: p.OfferedServiceIDs,
		WeeklySchedule:    schedule,
	}
}

// FromDomainProfessionalList converts a domain professional slice.
func FromDomainProfessionalList(list []*domain.Professional) *ProfessionalListResponse {
	out := make([]*ProfessionalResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromDomainProfessional(p))
	}
	return &ProfessionalListResponse{Professionals: out, Total: len(out)}
}
