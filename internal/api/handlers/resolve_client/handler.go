package resolve_client

import (
	"errors"
	"net/http"

	"github.com/lucasmrqs/EAS-BookingService/internal/api/handlers"
	"github.com/lucasmrqs/EAS-BookingService/internal/service/clients"
	"github.com/lucasmrqs/EAS-BookingService/internal/service/clients/models"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service ClientsService
	logger  Logger
}

func NewHandler(service ClientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients/resolve
// Returns the existing client on an exact phone match, or creates one.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ResolveClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients/resolve - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.FindOrCreate(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /clients/resolve - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /clients/resolve - Failed to resolve client: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients/resolve - Resolved client: client_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
