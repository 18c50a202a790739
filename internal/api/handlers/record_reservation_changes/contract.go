package record_reservation_changes

import (
	"context"

	recordChanges "github.com/m04kA/SMC-ReservationCore/internal/usecase/record_reservation_changes"
)

type RecordChangesUseCase interface {
	Execute(ctx context.Context, req *recordChanges.Request) (*recordChanges.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
