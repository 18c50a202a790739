package reservationchange

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	"github.com/m04kA/SMC-ReservationCore/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationCore/pkg/psqlbuilder"
)

const (
	tableReservationChanges = "reservation_changes"

	// pqForeignKeyViolation код ошибки PostgreSQL при нарушении внешнего ключа
	pqForeignKeyViolation = "23503"
)

var changeColumns = []string{
	"id",
	"reservation_id",
	"change_type",
	"field_name",
	"old_value",
	"new_value",
	"batch_id",
	"changed_by_username",
	"changed_by_type",
	"created_at",
}

// Repository репозиторий журнала изменений бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByReservation получает все изменения бронирования, отсортированные по created_at ASC, id ASC
// Порядок важен: группировка по batch_id опирается на него
func (r *Repository) ListByReservation(ctx context.Context, reservationID string) (domain.SortedChangeRecords, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(changeColumns...).
		From(tableReservationChanges).
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return domain.SortedChangeRecords{}, fmt.Errorf("%w: ListByReservation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.SortedChangeRecords{}, fmt.Errorf("%w: ListByReservation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records, err := scanChanges(rows)
	if err != nil {
		return domain.SortedChangeRecords{}, err
	}

	return domain.AssumeSorted(records), nil
}

// CreateBatch записывает все изменения одной пачки одним INSERT
// Если в контексте есть транзакция - выполняется в ней
func (r *Repository) CreateBatch(ctx context.Context, records []domain.ChangeRecord) error {
	if len(records) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert(tableReservationChanges).Columns(changeColumns...)
	for _, rec := range records {
		builder = builder.Values(
			rec.ID,
			rec.ReservationID,
			rec.ChangeType,
			rec.FieldName,
			jsonbValue(rec.OldValue),
			jsonbValue(rec.NewValue),
			rec.BatchID,
			rec.ChangedByUsername,
			rec.ChangedByType,
			rec.CreatedAt,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return ErrReservationNotFound
		}
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func scanChanges(rows *sql.Rows) ([]domain.ChangeRecord, error) {
	records := make([]domain.ChangeRecord, 0)

	for rows.Next() {
		var (
			rec              domain.ChangeRecord
			oldValue, newVal []byte
		)

		if err := rows.Scan(
			&rec.ID,
			&rec.ReservationID,
			&rec.ChangeType,
			&rec.FieldName,
			&oldValue,
			&newVal,
			&rec.BatchID,
			&rec.ChangedByUsername,
			&rec.ChangedByType,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scan change: %v", ErrScanRow, err)
		}

		rec.OldValue = oldValue
		rec.NewValue = newVal
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate changes: %v", ErrScanRow, err)
	}

	return records, nil
}

// jsonbValue nil для пустого значения, иначе JSON текстом
func jsonbValue(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
