package get_time_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationCore/internal/api/handlers"
	getTimeSlots "github.com/m04kA/SMC-ReservationCore/internal/usecase/get_time_slots"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStep      = "некорректный шаг сетки"
	msgPartialOverride  = "параметры min и max передаются вместе"
	msgInvalidWindow    = "некорректное окно, ожидается HH:MM"
	msgInvalidInput     = "некорректные параметры запроса"
	msgInstanceNotFound = "инстанс не найден"
)

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/instances/{instanceId}/time-slots
// Query params: date (optional, YYYY-MM-DD), step (optional, minutes), min/max (optional override, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instanceID := mux.Vars(r)["instanceId"]
	query := r.URL.Query()

	// Формируем запрос к use case
	useCaseReq, err := ToUseCaseRequest(instanceID, query.Get("date"), query.Get("step"), query.Get("min"), query.Get("max"))
	if err != nil {
		h.logger.Warn("GET /instances/{id}/time-slots - Invalid query: instance_id=%s, error=%v", instanceID, err)
		switch {
		case errors.Is(err, errInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, errInvalidStep):
			handlers.RespondBadRequest(w, msgInvalidStep)
		default:
			handlers.RespondBadRequest(w, msgPartialOverride)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrInvalidStep):
			h.logger.Warn("GET /instances/{id}/time-slots - Invalid step: instance_id=%s, error=%v", instanceID, err)
			handlers.RespondBadRequest(w, msgInvalidStep)

		case errors.Is(err, getTimeSlots.ErrInvalidWindow):
			h.logger.Warn("GET /instances/{id}/time-slots - Invalid window: instance_id=%s, error=%v", instanceID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, getTimeSlots.ErrInvalidInput):
			h.logger.Warn("GET /instances/{id}/time-slots - Invalid input: instance_id=%s, error=%v", instanceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getTimeSlots.ErrInstanceNotFound):
			h.logger.Warn("GET /instances/{id}/time-slots - Instance not found: instance_id=%s", instanceID)
			handlers.RespondNotFound(w, msgInstanceNotFound)

		default:
			h.logger.Error("GET /instances/{id}/time-slots - Failed to get slots: instance_id=%s, error=%v", instanceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /instances/{id}/time-slots - Slots generated: instance_id=%s, day=%s, slots_count=%d",
		instanceID, result.Day, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
