package get_working_window

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationCore/internal/service/workinghours/models"
)

type WorkingHoursService interface {
	GetWindow(ctx context.Context, instanceID string, date *time.Time) (*models.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
