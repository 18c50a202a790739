package workinghours

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	"github.com/m04kA/SMC-ReservationCore/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationCore/pkg/psqlbuilder"
)

const tableInstances = "instances"

// Repository репозиторий рабочих часов инстанса (колонка instances.working_hours, jsonb)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByInstance получает недельное расписание инстанса
// Если расписание не задано (NULL) - возвращает nil без ошибки
func (r *Repository) GetByInstance(ctx context.Context, instanceID string) (domain.WeeklyHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("working_hours").
		From(tableInstances).
		Where(squirrel.Eq{"id": instanceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstance - build select query: %v", ErrBuildQuery, err)
	}

	var raw []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInstanceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstance - scan working hours: %v", ErrScanRow, err)
	}

	return decodeWeeklyHours(raw)
}

// Update сохраняет недельное расписание инстанса
func (r *Repository) Update(ctx context.Context, instanceID string, hours domain.WeeklyHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	payload, err := json.Marshal(hours)
	if err != nil {
		return fmt.Errorf("%w: Update - encode working hours: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update(tableInstances).
		Set("working_hours", string(payload)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": instanceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrInstanceNotFound
	}

	return nil
}

func decodeWeeklyHours(raw []byte) (domain.WeeklyHours, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var hours domain.WeeklyHours
	if err := json.Unmarshal(raw, &hours); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return hours, nil
}
