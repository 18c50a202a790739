package record_reservation_changes

import (
	"time"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	recordChanges "github.com/m04kA/SMC-ReservationCore/internal/usecase/record_reservation_changes"
)

// RecordChangesRequest HTTP request model
// Снимки используют имена колонок бронирования
type RecordChangesRequest struct {
	ChangeType        domain.ChangeType           `json:"changeType"`
	Old               *domain.ReservationSnapshot `json:"old,omitempty"`
	New               domain.ReservationSnapshot  `json:"new"`
	ChangedByUsername string                      `json:"changedByUsername"`
	ChangedByType     domain.ActorType            `json:"changedByType"`
}

// RecordChangesResponse HTTP response model
type RecordChangesResponse struct {
	BatchID   string                `json:"batchId,omitempty"`
	CreatedAt *time.Time            `json:"createdAt,omitempty"`
	Changes   []domain.ChangeRecord `json:"changes"`
}

// ToUseCaseRequest создает запрос use case
func (r *RecordChangesRequest) ToUseCaseRequest(reservationID string) *recordChanges.Request {
	return &recordChanges.Request{
		ReservationID:     reservationID,
		ChangeType:        r.ChangeType,
		Old:               r.Old,
		New:               r.New,
		ChangedByUsername: r.ChangedByUsername,
		ChangedByType:     r.ChangedByType,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *recordChanges.Response) *RecordChangesResponse {
	out := &RecordChangesResponse{
		BatchID: resp.BatchID,
		Changes: resp.Changes,
	}
	if resp.BatchID != "" {
		createdAt := resp.CreatedAt
		out.CreatedAt = &createdAt
	}
	return out
}
