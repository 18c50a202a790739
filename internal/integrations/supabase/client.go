package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
)

// Client хранилище поверх REST API управляемой платформы (PostgREST)
// Реализует те же контракты, что и postgres-репозитории
type Client struct {
	db  QueryBuilderFactory
	log Logger
}

// NewClient создает клиента платформы по URL проекта и service-role ключу
func NewClient(url, key string, log Logger) (*Client, error) {
	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrInternal, err)
	}
	return NewClientWithFactory(client, log), nil
}

// NewClientWithFactory создает клиента поверх готового builder'а запросов
func NewClientWithFactory(db QueryBuilderFactory, log Logger) *Client {
	return &Client{db: db, log: log}
}

// GetByInstance получает недельное расписание инстанса
// postgrest-go не принимает context, поэтому отмена проверяется только до запроса
func (c *Client) GetByInstance(ctx context.Context, instanceID string) (domain.WeeklyHours, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, _, err := c.db.From(tableInstances).
		Select("id,working_hours", "", false).
		Eq("id", instanceID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstance - failed to execute request: %v", ErrInternal, err)
	}

	var rows []instanceRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: GetByInstance - failed to decode response: %v", ErrInvalidResponse, err)
	}
	if len(rows) == 0 {
		return nil, ErrInstanceNotFound
	}

	raw := rows[0].WorkingHours
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var hours domain.WeeklyHours
	if err := json.Unmarshal(raw, &hours); err != nil {
		return nil, fmt.Errorf("%w: GetByInstance - failed to decode working hours: %v", ErrInvalidResponse, err)
	}
	return hours, nil
}

// Update сохраняет недельное расписание инстанса
func (c *Client) Update(ctx context.Context, instanceID string, hours domain.WeeklyHours) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, _, err := c.db.From(tableInstances).
		Update(map[string]interface{}{"working_hours": hours}, "representation", "").
		Eq("id", instanceID).
		Execute()
	if err != nil {
		return fmt.Errorf("%w: Update - failed to execute request: %v", ErrInternal, err)
	}

	var rows []instanceRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%w: Update - failed to decode response: %v", ErrInvalidResponse, err)
	}
	if len(rows) == 0 {
		return ErrInstanceNotFound
	}

	return nil
}

// ListByReservation получает изменения бронирования, отсортированные по created_at ASC
func (c *Client) ListByReservation(ctx context.Context, reservationID string) (domain.SortedChangeRecords, error) {
	if err := ctx.Err(); err != nil {
		return domain.SortedChangeRecords{}, err
	}

	data, _, err := c.db.From(tableReservationChanges).
		Select(changeColumns, "", false).
		Eq("reservation_id", reservationID).
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return domain.SortedChangeRecords{}, fmt.Errorf("%w: ListByReservation - failed to execute request: %v", ErrInternal, err)
	}

	var records []domain.ChangeRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return domain.SortedChangeRecords{}, fmt.Errorf("%w: ListByReservation - failed to decode response: %v", ErrInvalidResponse, err)
	}

	return domain.AssumeSorted(records), nil
}

// CreateBatch записывает пачку изменений одним запросом (PostgREST выполняет bulk insert одним оператором)
func (c *Client) CreateBatch(ctx context.Context, records []domain.ChangeRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, _, err := c.db.From(tableReservationChanges).
		Insert(records, false, "", "minimal", "").
		Execute(); err != nil {
		return fmt.Errorf("%w: CreateBatch - failed to execute request: %v", ErrInternal, err)
	}

	c.log.Info("Supabase: stored %d change records for reservation=%s", len(records), records[0].ReservationID)
	return nil
}

// GetLabels возвращает отображаемые названия услуг инстанса
func (c *Client) GetLabels(ctx context.Context, instanceID string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, _, err := c.db.From(tableServices).
		Select("id,name,short_name", "", false).
		Eq("instance_id", instanceID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLabels - failed to execute request: %v", ErrInternal, err)
	}

	var rows []serviceRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: GetLabels - failed to decode response: %v", ErrInvalidResponse, err)
	}

	labels := make(map[string]string, len(rows))
	for _, row := range rows {
		labels[row.ID] = row.Name
		if row.ShortName != nil && *row.ShortName != "" {
			labels[row.ID] = *row.ShortName
		}
	}
	return labels, nil
}

// Do выполняет fn без транзакции: каждая запись через PostgREST атомарна сама по себе
func (c *Client) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
