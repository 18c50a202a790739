package update_working_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationCore/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationCore/internal/service/workinghours"
	"github.com/m04kA/SMC-ReservationCore/internal/service/workinghours/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректное расписание"
	msgInstanceNotFound   = "инстанс не найден"
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

// Handle PUT /api/v1/instances/{instanceId}/working-hours
// Body: {"hours": {"monday": {"open": "08:00", "close": "18:00"}, "sunday": null}}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instanceID := mux.Vars(r)["instanceId"]

	// Декодируем body
	var req models.UpdateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /instances/{id}/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.InstanceID = instanceID

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, workinghours.ErrInvalidInput):
			h.logger.Warn("PUT /instances/{id}/working-hours - Invalid data: instance_id=%s, error=%v", instanceID, err)
			handlers.RespondUnprocessable(w, msgInvalidData)

		case errors.Is(err, workinghours.ErrInstanceNotFound):
			h.logger.Warn("PUT /instances/{id}/working-hours - Instance not found: instance_id=%s", instanceID)
			handlers.RespondNotFound(w, msgInstanceNotFound)

		default:
			h.logger.Error("PUT /instances/{id}/working-hours - Failed to update: instance_id=%s, error=%v", instanceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /instances/{id}/working-hours - Working hours updated: instance_id=%s", instanceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
