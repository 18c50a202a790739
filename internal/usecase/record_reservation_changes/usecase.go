package record_reservation_changes

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	changeRepo "github.com/m04kA/SMC-ReservationCore/internal/infra/storage/reservationchange"
)

const systemUsername = "system"

// UseCase use case для записи логической правки бронирования в журнал изменений
type UseCase struct {
	changeRepo   ChangeRepository
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	newID        func() string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	changeRepo ChangeRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		changeRepo:   changeRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		newID:        uuid.NewString,
		logger:       logger,
	}
}

// Execute выполняет use case записи изменений
// Все изменения одной правки получают общий batch_id и общее время
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RecordReservationChanges: reservation=%s, type=%s, actor=%s/%s",
		req.ReservationID, req.ChangeType, req.ChangedByType, req.ChangedByUsername)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RecordReservationChanges: validation failed: %v", err)
		return nil, err
	}

	// 2. Вычисляем изменившиеся поля
	var prev *domain.ReservationSnapshot
	if req.ChangeType == domain.ChangeTypeUpdated {
		prev = req.Old
	}

	changes, err := diffSnapshots(prev, &req.New)
	if err != nil {
		uc.logger.Error("RecordReservationChanges: failed to encode snapshot: %v", err)
		return nil, fmt.Errorf("%w: failed to encode snapshot: %v", ErrInternal, err)
	}

	if len(changes) == 0 {
		uc.logger.Info("RecordReservationChanges: reservation=%s has no tracked changes", req.ReservationID)
		return &Response{Changes: []domain.ChangeRecord{}}, nil
	}

	// 3. Собираем пачку
	username := req.ChangedByUsername
	if username == "" {
		username = systemUsername
	}

	batchID := uc.newID()
	createdAt := uc.timeProvider.Now().UTC()

	records := make([]domain.ChangeRecord, 0, len(changes))
	for _, change := range changes {
		records = append(records, domain.ChangeRecord{
			ID:                uc.newID(),
			ReservationID:     req.ReservationID,
			ChangeType:        req.ChangeType,
			FieldName:         change.field,
			OldValue:          change.oldValue,
			NewValue:          change.newValue,
			BatchID:           batchID,
			ChangedByUsername: username,
			ChangedByType:     req.ChangedByType,
			CreatedAt:         createdAt,
		})
	}

	// 4. Сохраняем пачку атомарно
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		return uc.changeRepo.CreateBatch(txCtx, records)
	})
	if err != nil {
		if errors.Is(err, changeRepo.ErrReservationNotFound) {
			uc.logger.Warn("RecordReservationChanges: reservation=%s not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("RecordReservationChanges: failed to store batch for reservation=%s: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to store changes: %v", ErrInternal, err)
	}

	uc.metrics.AddChangesRecorded(string(req.ChangeType), len(records))
	uc.logger.Info("RecordReservationChanges: stored batch=%s with %d changes for reservation=%s",
		batchID, len(records), req.ReservationID)

	return &Response{
		BatchID:   batchID,
		CreatedAt: createdAt,
		Changes:   records,
	}, nil
}
