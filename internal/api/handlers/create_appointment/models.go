package create_appointment

import (
	"time"

	"github.com/google/uuid"

	createAppointment "github.com/lucasmrqs/EAS-BookingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model.
type CreateAppointmentRequest struct {
	ClientID       string `json:"clientId"`
	ProfessionalID string `json:"professionalId"`
	ServiceID      string `json:"serviceId"`
	StartTime      string `json:"startTime"` // RFC 3339
}

// AppointmentResponse HTTP response model.
type AppointmentResponse struct {
	ID             string `json:"id"`
	ClientID       string `json:"clientId"`
	ProfessionalID string `json:"professionalId"`
	ServiceID      string `json:"serviceId"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
}

// ToUseCaseRequest converts the HTTP request, parsing ids and the start instant.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	clientID, err := uuid.Parse(r.ClientID)
	if err != nil {
		return nil, err
	}
	professionalID, err := uuid.Parse(r.ProfessionalID)
	if err != nil {
		return nil, err
	}
	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, err
	}
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientID:       clientID,
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		StartTime:      startTime,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP shape.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:             resp.ID.String(),
		ClientID:       resp.ClientID.String(),
		ProfessionalID: resp.ProfessionalID.String(),
		ServiceID:      resp.ServiceID.String(),
		StartTime:      resp.StartTime.Format(time.RFC3339),
		EndTime:        resp.EndTime.Format(time.RFC3339),
	}
}
