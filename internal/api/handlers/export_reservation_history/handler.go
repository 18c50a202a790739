package export_reservation_history

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationCore/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationCore/internal/service/history"
	"github.com/m04kA/SMC-ReservationCore/internal/service/history/models"
)

const (
	msgInvalidInput = "некорректные параметры запроса"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

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

// Handle GET /api/v1/reservations/{reservationId}/history/export
// Query params: instanceId (optional, для названий услуг)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.GetHistoryRequest{
		ReservationID: mux.Vars(r)["reservationId"],
		InstanceID:    r.URL.Query().Get("instanceId"),
	}

	// Буферизуем, чтобы при ошибке отдать JSON, а не оборванный файл
	var buf bytes.Buffer
	if err := h.service.Export(r.Context(), req, &buf); err != nil {
		if errors.Is(err, history.ErrInvalidInput) {
			h.logger.Warn("GET /reservations/{id}/history/export - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /reservations/{id}/history/export - Failed to export: reservation_id=%s, error=%v", req.ReservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="historia-%s.xlsx"`, req.ReservationID))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /reservations/{id}/history/export - Failed to write response: reservation_id=%s, error=%v", req.ReservationID, err)
		return
	}

	h.logger.Info("GET /reservations/{id}/history/export - History exported: reservation_id=%s", req.ReservationID)
}
