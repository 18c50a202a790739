package record_reservation_changes

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	changeRepo "github.com/m04kA/SMC-ReservationCore/internal/infra/storage/reservationchange"
	"github.com/m04kA/SMC-ReservationCore/pkg/logger"
	"github.com/m04kA/SMC-ReservationCore/pkg/ptr"
)

type mockChangeRepo struct {
	mock.Mock
}

func (m *mockChangeRepo) CreateBatch(ctx context.Context, records []domain.ChangeRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) AddChangesRecorded(changeType string, n int) {
	m.Called(changeType, n)
}

// inlineTx выполняет fn без транзакции и считает вызовы
type inlineTx struct {
	calls int
}

func (t *inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

func newTestUseCase(repo ChangeRepository, metrics Metrics) (*UseCase, *inlineTx) {
	tx := &inlineTx{}
	uc := NewUseCase(repo, tx, metrics, logger.Nop())
	uc.timeProvider = fixedTime{now: time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)}

	seq := 0
	uc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return uc, tx
}

func TestUseCase_Execute_Updated(t *testing.T) {
	repo := &mockChangeRepo{}
	var stored []domain.ChangeRecord
	repo.On("CreateBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(1).([]domain.ChangeRecord) }).
		Return(nil)
	metrics := &mockMetrics{}
	metrics.On("AddChangesRecorded", "updated", 3).Return()

	uc, tx := newTestUseCase(repo, metrics)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: "res-1",
		ChangeType:    domain.ChangeTypeUpdated,
		Old: &domain.ReservationSnapshot{
			Status:       ptr.Ptr("pending"),
			StartTime:    ptr.Ptr("10:00:00"),
			ServiceIDs:   []string{"s1", "s2"},
			CustomerName: ptr.Ptr("Jan"),
			Price:        ptr.Ptr(100.0),
		},
		New: domain.ReservationSnapshot{
			Status:       ptr.Ptr("confirmed"),
			StartTime:    ptr.Ptr("11:00:00"),
			ServiceIDs:   []string{"s2", "s1"},
			CustomerName: ptr.Ptr("Jan"),
			Price:        ptr.Ptr(120.0),
		},
		ChangedByUsername: "anna",
		ChangedByType:     domain.ActorAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, "id-1", resp.BatchID)
	require.Len(t, resp.Changes, 3)
	assert.Equal(t, stored, resp.Changes)

	// порядок определяется списком отслеживаемых полей
	assert.Equal(t, domain.FieldStartTime, resp.Changes[0].FieldName)
	assert.Equal(t, domain.FieldStatus, resp.Changes[1].FieldName)
	assert.Equal(t, domain.FieldPrice, resp.Changes[2].FieldName)

	assert.JSONEq(t, `"pending"`, string(resp.Changes[1].OldValue))
	assert.JSONEq(t, `"confirmed"`, string(resp.Changes[1].NewValue))
	assert.JSONEq(t, `120`, string(resp.Changes[2].NewValue))

	for _, rec := range resp.Changes {
		assert.Equal(t, "id-1", rec.BatchID)
		assert.Equal(t, "res-1", rec.ReservationID)
		assert.Equal(t, "anna", rec.ChangedByUsername)
		assert.Equal(t, domain.ActorAdmin, rec.ChangedByType)
		assert.Equal(t, resp.CreatedAt, rec.CreatedAt)
		assert.NotEqual(t, "id-1", rec.ID)
	}
	metrics.AssertExpectations(t)
}

func TestUseCase_Execute_Created(t *testing.T) {
	repo := &mockChangeRepo{}
	repo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
	metrics := &mockMetrics{}
	metrics.On("AddChangesRecorded", "created", 3).Return()

	uc, _ := newTestUseCase(repo, metrics)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: "res-1",
		ChangeType:    domain.ChangeTypeCreated,
		Old:           &domain.ReservationSnapshot{Status: ptr.Ptr("confirmed")},
		New: domain.ReservationSnapshot{
			ReservationDate: ptr.Ptr("2025-05-12"),
			ServiceIDs:      []string{"s1"},
			Status:          ptr.Ptr("pending"),
		},
		ChangedByType: domain.ActorSystem,
	})

	require.NoError(t, err)
	require.Len(t, resp.Changes, 3)
	assert.Equal(t, domain.FieldReservationDate, resp.Changes[0].FieldName)
	assert.Equal(t, domain.FieldServiceIDs, resp.Changes[1].FieldName)
	assert.JSONEq(t, `["s1"]`, string(resp.Changes[1].NewValue))
	for _, rec := range resp.Changes {
		assert.Nil(t, rec.OldValue)
		assert.Equal(t, domain.ChangeTypeCreated, rec.ChangeType)
		assert.Equal(t, "system", rec.ChangedByUsername)
	}
	metrics.AssertExpectations(t)
}

func TestUseCase_Execute_Created_SkipsEmptyStrings(t *testing.T) {
	repo := &mockChangeRepo{}
	repo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
	metrics := &mockMetrics{}
	metrics.On("AddChangesRecorded", "created", 1).Return()

	uc, _ := newTestUseCase(repo, metrics)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: "res-1",
		ChangeType:    domain.ChangeTypeCreated,
		New: domain.ReservationSnapshot{
			Status:        ptr.Ptr("pending"),
			CustomerNotes: ptr.Ptr(""),
			OfferNumber:   ptr.Ptr(""),
		},
		ChangedByType: domain.ActorSystem,
	})

	require.NoError(t, err)
	require.Len(t, resp.Changes, 1)
	assert.Equal(t, domain.FieldStatus, resp.Changes[0].FieldName)
	metrics.AssertExpectations(t)
}

func TestUseCase_Execute_EmptyStringEqualsUnset(t *testing.T) {
	repo := &mockChangeRepo{}
	uc, tx := newTestUseCase(repo, &mockMetrics{})

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID:     "res-1",
		ChangeType:        domain.ChangeTypeUpdated,
		Old:               &domain.ReservationSnapshot{Status: ptr.Ptr("pending")},
		New:               domain.ReservationSnapshot{Status: ptr.Ptr("pending"), AdminNotes: ptr.Ptr("")},
		ChangedByUsername: "anna",
		ChangedByType:     domain.ActorAdmin,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Changes)
	assert.Zero(t, tx.calls)
	repo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_NoChanges(t *testing.T) {
	repo := &mockChangeRepo{}
	uc, tx := newTestUseCase(repo, &mockMetrics{})
	snapshot := domain.ReservationSnapshot{Status: ptr.Ptr("pending")}

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID:     "res-1",
		ChangeType:        domain.ChangeTypeUpdated,
		Old:               &snapshot,
		New:               snapshot,
		ChangedByUsername: "jan",
		ChangedByType:     domain.ActorCustomer,
	})

	require.NoError(t, err)
	assert.Empty(t, resp.BatchID)
	assert.Empty(t, resp.Changes)
	assert.Zero(t, tx.calls)
	repo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_ClearedField(t *testing.T) {
	repo := &mockChangeRepo{}
	repo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
	metrics := &mockMetrics{}
	metrics.On("AddChangesRecorded", "updated", 1).Return()
	uc, _ := newTestUseCase(repo, metrics)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID:     "res-1",
		ChangeType:        domain.ChangeTypeUpdated,
		Old:               &domain.ReservationSnapshot{AdminNotes: ptr.Ptr("VIP")},
		New:               domain.ReservationSnapshot{},
		ChangedByUsername: "anna",
		ChangedByType:     domain.ActorAdmin,
	})

	require.NoError(t, err)
	require.Len(t, resp.Changes, 1)
	assert.Equal(t, domain.FieldAdminNotes, resp.Changes[0].FieldName)
	assert.JSONEq(t, `"VIP"`, string(resp.Changes[0].OldValue))
	assert.Nil(t, resp.Changes[0].NewValue)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	valid := func() *Request {
		return &Request{
			ReservationID:     "res-1",
			ChangeType:        domain.ChangeTypeUpdated,
			Old:               &domain.ReservationSnapshot{},
			New:               domain.ReservationSnapshot{Status: ptr.Ptr("confirmed")},
			ChangedByUsername: "anna",
			ChangedByType:     domain.ActorAdmin,
		}
	}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		repoErr error
		wantErr error
	}{
		{name: "empty reservation", mutate: func(r *Request) { r.ReservationID = "" }, wantErr: ErrInvalidInput},
		{name: "unknown change type", mutate: func(r *Request) { r.ChangeType = "deleted" }, wantErr: ErrInvalidInput},
		{name: "unknown actor", mutate: func(r *Request) { r.ChangedByType = "robot" }, wantErr: ErrInvalidInput},
		{name: "admin without username", mutate: func(r *Request) { r.ChangedByUsername = " " }, wantErr: ErrInvalidInput},
		{name: "update without previous snapshot", mutate: func(r *Request) { r.Old = nil }, wantErr: ErrInvalidInput},
		{name: "unknown status", mutate: func(r *Request) { r.New.Status = ptr.Ptr("lost") }, wantErr: ErrInvalidInput},
		{
			name:    "reservation missing in storage",
			mutate:  func(r *Request) {},
			repoErr: changeRepo.ErrReservationNotFound,
			wantErr: ErrReservationNotFound,
		},
		{
			name:    "storage failure",
			mutate:  func(r *Request) {},
			repoErr: errors.New("connection reset"),
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockChangeRepo{}
			repo.On("CreateBatch", mock.Anything, mock.Anything).Return(tt.repoErr)
			uc, _ := newTestUseCase(repo, &mockMetrics{})
			req := valid()
			tt.mutate(req)

			resp, err := uc.Execute(context.Background(), req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
