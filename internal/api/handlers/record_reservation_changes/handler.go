package record_reservation_changes

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationCore/internal/api/handlers"
	recordChanges "github.com/m04kA/SMC-ReservationCore/internal/usecase/record_reservation_changes"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidData         = "некорректные данные изменения"
	msgReservationNotFound = "бронирование не найдено"
)

type Handler struct {
	useCase RecordChangesUseCase
	logger  Logger
}

func NewHandler(useCase RecordChangesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/changes
// 201 - пачка записана, 200 - отслеживаемые поля не изменились
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	// Декодируем body
	var req RecordChangesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/changes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(reservationID))
	if err != nil {
		switch {
		case errors.Is(err, recordChanges.ErrInvalidInput):
			h.logger.Warn("POST /reservations/{id}/changes - Invalid data: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondUnprocessable(w, msgInvalidData)

		case errors.Is(err, recordChanges.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/changes - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("POST /reservations/{id}/changes - Failed to record changes: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.BatchID == "" {
		status = http.StatusOK
	}

	h.logger.Info("POST /reservations/{id}/changes - Changes recorded: reservation_id=%s, batch_id=%s, count=%d",
		reservationID, result.BatchID, len(result.Changes))
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
