package workinghours

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
)

func TestDecodeWeeklyHours(t *testing.T) {
	hours, err := decodeWeeklyHours([]byte(`{"monday":{"open":"08:00:00","close":"18:00:00"},"sunday":null}`))
	require.NoError(t, err)

	require.NotNil(t, hours.For(domain.Monday))
	assert.Equal(t, "08:00:00", hours.For(domain.Monday).Open)
	assert.Nil(t, hours.For(domain.Sunday))

	hours, err = decodeWeeklyHours(nil)
	require.NoError(t, err)
	assert.Nil(t, hours)

	hours, err = decodeWeeklyHours([]byte("null"))
	require.NoError(t, err)
	assert.Nil(t, hours)

	_, err = decodeWeeklyHours([]byte("{broken"))
	assert.ErrorIs(t, err, ErrDecode)
}

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

const selectHoursQuery = `SELECT working_hours FROM instances WHERE id = \$1`

func TestRepository_GetByInstance(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(selectHoursQuery).
		WithArgs("inst-1").
		WillReturnRows(sqlmock.NewRows([]string{"working_hours"}).
			AddRow(`{"monday":{"open":"08:00:00","close":"18:00:00"}}`))

	hours, err := repo.GetByInstance(context.Background(), "inst-1")
	require.NoError(t, err)
	require.NotNil(t, hours.For(domain.Monday))
	assert.Equal(t, "18:00:00", hours.For(domain.Monday).Close)
	assert.Nil(t, hours.For(domain.Tuesday))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByInstance_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "instance not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectHoursQuery).WithArgs("inst-1").
					WillReturnRows(sqlmock.NewRows([]string{"working_hours"}))
			},
			wantErr: ErrInstanceNotFound,
		},
		{
			name: "null working hours",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectHoursQuery).WithArgs("inst-1").
					WillReturnRows(sqlmock.NewRows([]string{"working_hours"}).AddRow(nil))
			},
		},
		{
			name: "broken json",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectHoursQuery).WithArgs("inst-1").
					WillReturnRows(sqlmock.NewRows([]string{"working_hours"}).AddRow(`{broken`))
			},
			wantErr: ErrDecode,
		},
		{
			name: "query failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectHoursQuery).WithArgs("inst-1").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrScanRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setup(mock)

			hours, err := repo.GetByInstance(context.Background(), "inst-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Nil(t, hours)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

const updateHoursQuery = `UPDATE instances SET working_hours = \$1, updated_at = NOW\(\) WHERE id = \$2`

func TestRepository_Update(t *testing.T) {
	hours := domain.WeeklyHours{
		domain.Monday: &domain.DayHours{Open: "08:00", Close: "18:00"},
	}

	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "updated", affected: 1},
		{name: "instance not found", affected: 0, wantErr: ErrInstanceNotFound},
		{name: "exec failure", execErr: errors.New("connection reset"), wantErr: ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)

			exec := mock.ExpectExec(updateHoursQuery).
				WithArgs(`{"monday":{"open":"08:00","close":"18:00"}}`, "inst-1")
			if tt.execErr != nil {
				exec.WillReturnError(tt.execErr)
			} else {
				exec.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.Update(context.Background(), "inst-1", hours)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
