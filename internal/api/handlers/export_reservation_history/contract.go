package export_reservation_history

import (
	"context"
	"io"

	"github.com/m04kA/SMC-ReservationCore/internal/service/history/models"
)

type HistoryService interface {
	Export(ctx context.Context, req *models.GetHistoryRequest, out io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
