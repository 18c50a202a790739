package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
	"github.com/m04kA/SMC-ReservationCore/internal/history"
)

func TestHistoryWriter_Write(t *testing.T) {
	batches := []history.BatchView{
		{
			BatchID:           "b1",
			ChangeType:        domain.ChangeTypeUpdated,
			ChangedByUsername: "admin",
			ChangedByType:     domain.ActorAdmin,
			CreatedAt:         time.Date(2025, 4, 2, 9, 15, 0, 0, time.UTC),
			Changes: []history.ChangeView{
				{FieldName: "status", Label: "Status", Old: "Oczekująca", New: "Potwierdzona"},
				{
					FieldName: "service_ids",
					Label:     "Usługi",
					Old:       "Mycie",
					New:       "Woskowanie",
					Services:  &domain.ServiceDiff{Added: []string{"Woskowanie"}, Removed: []string{"Mycie"}},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewHistoryWriter(time.UTC).Write(&buf, "res-1", batches))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	sheets := file.GetSheetList()
	require.Len(t, sheets, 1)
	assert.Equal(t, "Historia res-1", sheets[0])

	rows, err := file.GetRows(sheets[0])
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Data", rows[0][0])
	assert.Equal(t, []string{"2025-04-02 09:15:00", "admin", "admin", "updated", "Status", "Oczekująca", "Potwierdzona"}, rows[1][:7])
	require.Len(t, rows[2], 9)
	assert.Equal(t, "Woskowanie", rows[2][7])
	assert.Equal(t, "Mycie", rows[2][8])
}

func TestSheetName(t *testing.T) {
	long := "Historia 123e4567-e89b-12d3-a456-426614174000"
	assert.Len(t, []rune(sheetName(long)), excelSheetNameLimit)
	assert.Equal(t, "short", sheetName("short"))
	assert.Equal(t, "Historia res_1_ a_b_c_d_e_f", sheetName("Historia res[1] a:b/c\\d?e*f'"))
}

func TestHistoryWriter_Write_ForbiddenSheetChars(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewHistoryWriter(time.UTC).Write(&buf, "res[1]", nil))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{"Historia res_1_"}, file.GetSheetList())
}
