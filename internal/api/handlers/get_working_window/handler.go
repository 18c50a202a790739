package get_working_window

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationCore/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	"github.com/m04kA/SMC-ReservationCore/internal/service/workinghours"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput     = "некорректные параметры запроса"
	msgInstanceNotFound = "инстанс не найден"
)

type Handler struct {
	service WorkingHoursService
	logger  Logger
}

func NewHandler(service WorkingHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/instances/{instanceId}/working-window
// Query params: date (optional, YYYY-MM-DD; без даты - понедельник)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instanceID := mux.Vars(r)["instanceId"]

	var date *time.Time
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /instances/{id}/working-window - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = &parsed
	}

	result, err := h.service.GetWindow(r.Context(), instanceID, date)
	if err != nil {
		switch {
		case errors.Is(err, workinghours.ErrInvalidInput):
			h.logger.Warn("GET /instances/{id}/working-window - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, workinghours.ErrInstanceNotFound):
			h.logger.Warn("GET /instances/{id}/working-window - Instance not found: instance_id=%s", instanceID)
			handlers.RespondNotFound(w, msgInstanceNotFound)

		default:
			h.logger.Error("GET /instances/{id}/working-window - Failed to resolve window: instance_id=%s, error=%v", instanceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /instances/{id}/working-window - Window resolved: instance_id=%s, day=%s, window=%s-%s",
		instanceID, result.Day, result.Min, result.Max)
	handlers.RespondJSON(w, http.StatusOK, result)
}
