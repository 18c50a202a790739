package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ReservationCore/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationCore/pkg/psqlbuilder"
)

const tableServices = "services"

// Repository справочник услуг инстанса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetLabels возвращает отображаемые названия услуг инстанса: id -> short_name (или name)
func (r *Repository) GetLabels(ctx context.Context, instanceID string) (map[string]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "short_name").
		From(tableServices).
		Where(squirrel.Eq{"instance_id": instanceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLabels - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetLabels - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	labels := make(map[string]string)
	for rows.Next() {
		var (
			id, name  string
			shortName sql.NullString
		)
		if err := rows.Scan(&id, &name, &shortName); err != nil {
			return nil, fmt.Errorf("%w: GetLabels - scan service: %v", ErrScanRow, err)
		}
		labels[id] = displayName(name, shortName)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetLabels - iterate services: %v", ErrScanRow, err)
	}

	return labels, nil
}

func displayName(name string, shortName sql.NullString) string {
	if shortName.Valid && shortName.String != "" {
		return shortName.String
	}
	return name
}
