package record_reservation_changes

import (
	"time"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
)

// Request модель запроса на запись одной логической правки бронирования
type Request struct {
	ReservationID     string
	ChangeType        domain.ChangeType
	Old               *domain.ReservationSnapshot // Обязателен для updated, игнорируется для created
	New               domain.ReservationSnapshot
	ChangedByUsername string
	ChangedByType     domain.ActorType
}

// Response модель ответа: записанная пачка
// Если поля не изменились, BatchID пустой, а Changes пуст
type Response struct {
	BatchID   string
	CreatedAt time.Time
	Changes   []domain.ChangeRecord
}
