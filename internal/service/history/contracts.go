package history

import (
	"context"
	"io"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	"github.com/m04kA/SMC-ReservationCore/internal/history"
)

// ChangeRepository интерфейс репозитория истории изменений
type ChangeRepository interface {
	// ListByReservation возвращает записи, отсортированные по created_at ASC
	ListByReservation(ctx context.Context, reservationID string) (domain.SortedChangeRecords, error)
}

// ServiceLabels справочник отображаемых названий услуг
type ServiceLabels interface {
	GetLabels(ctx context.Context, instanceID string) (map[string]string, error)
}

// Exporter выгрузка истории в файл
type Exporter interface {
	Write(out io.Writer, reservationID string, batches []history.BatchView) error
}

// Metrics доменные метрики истории
type Metrics interface {
	AddHistoryBatches(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
