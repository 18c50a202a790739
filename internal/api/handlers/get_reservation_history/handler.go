package get_reservation_history

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationCore/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationCore/internal/service/history"
	"github.com/m04kA/SMC-ReservationCore/internal/service/history/models"
)

const msgInvalidInput = "некорректные параметры запроса"

type Handler struct {
	service HistoryService
	logger  Logger
}

func NewHandler(service HistoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{reservationId}/history
// Query params: instanceId (optional, для названий услуг)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.GetHistoryRequest{
		ReservationID: mux.Vars(r)["reservationId"],
		InstanceID:    r.URL.Query().Get("instanceId"),
	}

	result, err := h.service.GetHistory(r.Context(), req)
	if err != nil {
		if errors.Is(err, history.ErrInvalidInput) {
			h.logger.Warn("GET /reservations/{id}/history - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /reservations/{id}/history - Failed to get history: reservation_id=%s, error=%v", req.ReservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations/{id}/history - History retrieved: reservation_id=%s, batches=%d",
		req.ReservationID, len(result.Batches))
	handlers.RespondJSON(w, http.StatusOK, result)
}
