package list_appointments

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmrqs/EAS-BookingService/internal/api/handlers"
	"github.com/lucasmrqs/EAS-BookingService/internal/domain"
	"github.com/lucasmrqs/EAS-BookingService/internal/service/appointments/models"
)

const (
	msgInvalidProfessionalID = "invalid professionalId parameter"
	msgInvalidServiceID      = "invalid serviceId parameter"
	msgInvalidClientID       = "invalid clientId parameter"
	msgInvalidDate           = "invalid date parameter, expected YYYY-MM-DD"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?professionalId=&serviceId=&clientId=&date=
// Every parameter is optional; absent ones do not filter.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListAppointmentsRequest{}
	query := r.URL.Query()

	if raw := query.Get("professionalId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidProfessionalID)
			return
		}
		req.ProfessionalID = &id
	}

	if raw := query.Get("serviceId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		req.ServiceID = &id
	}

	if raw := query.Get("clientId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidClientID)
			return
		}
		req.ClientID = &id
	}

	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
