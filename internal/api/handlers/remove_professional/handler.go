package remove_professional

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/lucasmrqs/EAS-BookingService/internal/api/handlers"
	removeProfessional "github.com/lucasmrqs/EAS-BookingService/internal/usecase/remove_professional"
)

const (
	msgInvalidProfessionalID = "invalid professional id"
	msgProfessionalNotFound  = "professional not found"
)

type Handler struct {
	useCase RemoveProfessionalUseCase
	logger  Logger
}

func NewHandler(useCase RemoveProfessionalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/professionals/{professionalId}
// Removes the professional and their future appointments in one transaction.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["professionalId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	if err := h.useCase.Execute(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, removeProfessional.ErrProfessionalNotFound):
			h.logger.Warn("DELETE /professionals - Professional not found: professional_id=%s", id)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		default:
			h.logger.Error("DELETE /professionals - Failed to remove professional: professional_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /professionals - Professional removed: professional_id=%s", id)
	handlers.RespondNoContent(w)
}
