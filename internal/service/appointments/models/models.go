package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
)

// ListAppointmentsRequest filters the admin listing. All fields optional.
type ListAppointmentsRequest struct {
	ProfessionalID *uuid.UUID `json:"professionalId,omitempty"`
	ServiceID      *uuid.UUID `json:"serviceId,omitempty"`
	ClientID       *uuid.UUID `json:"clientId,omitempty"`
	Date           *time.Time `json:"date,omitempty"`
}

// ToDomainFilter converts the request into the domain filter.
func (r *ListAppointmentsRequest) ToDomainFilter() domain.AppointmentsFilter {
	return domain.AppointmentsFilter{
		ProfessionalID: r.ProfessionalID,
		ServiceID:      r.ServiceID,
		ClientID:       r.ClientID,
		Date:           r.Date,
	}
}

// AppointmentResponse is the outward appointment shape.
type AppointmentResponse struct {
	ID             uuid.UUID `json:"id"`
	ClientID       uuid.UUID `json:"clientId"`
	ProfessionalID uuid.UUID `json:"professionalId"`
	ServiceID      uuid.UUID `json:"serviceId"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AppointmentListResponse wraps a listing.
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment converts a domain appointment.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             a.ID,
		ClientID:       a.ClientID,
		ProfessionalID: a.ProfessionalID,
		ServiceID:      a.ServiceID,
		StartTime:      a.StartTime,
		EndTime:        a.EndTime,
		CreatedAt:      a.CreatedAt,
	}
}

// FromDomainAppointmentList converts a domain appointment slice.
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	out := make([]*AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: out, Total: len(out)}
}
