package create_professional

import (
	"errors"
	"net/http"

	"github.com/lucasmrqs/EAS-BookingService/internal/api/handlers"
	"github.com/lucasmrqs/EAS-BookingService/internal/service/catalog"
	"github.com/lucasmrqs/EAS-BookingService/internal/service/catalog/models"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateProfessional(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /professionals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /professionals - Failed to create professional: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /professionals - Professional created: professional_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
