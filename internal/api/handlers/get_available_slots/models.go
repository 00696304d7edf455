package get_available_slots

import (
	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
	getAvailableSlots "github.com/lucasmrqs/EAS-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model.
type AvailableSlotsResponse struct {
	ProfessionalID string   `json:"professionalId"`
	ServiceID      string   `json:"serviceId"`
	Date           string   `json:"date"`  // "2026-09-01"
	Slots          []string `json:"slots"` // "10:00", ascending
}

// FromUseCaseResponse converts the use case response to the HTTP shape.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.Format(domain.TimeFormat))
	}

	return &AvailableSlotsResponse{
		ProfessionalID: resp.ProfessionalID.String(),
		ServiceID:      resp.ServiceID.String(),
		Date:           resp.Date.Format(domain.DateFormat),
		Slots:          slots,
	}
}
