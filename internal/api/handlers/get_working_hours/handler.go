package get_working_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationCore/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationCore/internal/service/workinghours"
)

const (
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

// Handle GET /api/v1/instances/{instanceId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instanceID := mux.Vars(r)["instanceId"]

	result, err := h.service.Get(r.Context(), instanceID)
	if err != nil {
		switch {
		case errors.Is(err, workinghours.ErrInvalidInput):
			h.logger.Warn("GET /instances/{id}/working-hours - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, workinghours.ErrInstanceNotFound):
			h.logger.Warn("GET /instances/{id}/working-hours - Instance not found: instance_id=%s", instanceID)
			handlers.RespondNotFound(w, msgInstanceNotFound)

		default:
			h.logger.Error("GET /instances/{id}/working-hours - Failed to get working hours: instance_id=%s, error=%v", instanceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /instances/{id}/working-hours - Working hours retrieved: instance_id=%s", instanceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
