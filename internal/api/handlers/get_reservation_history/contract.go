package get_reservation_history

import (
	"context"

	"github.com/m04kA/SMC-ReservationCore/internal/service/history/models"
)

type HistoryService interface {
	GetHistory(ctx context.Context, req *models.GetHistoryRequest) (*models.HistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
