package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-ReservationCore/internal/history"
)

const (
	historySheet = "Historia"

	// excelSheetNameLimit ограничение Excel на длину имени листа
	excelSheetNameLimit = 31
)

var historyColumns = []string{
	"Data",
	"Autor",
	"Typ autora",
	"Rodzaj",
	"Pole",
	"Było",
	"Jest",
	"Dodane usługi",
	"Usunięte usługi",
}

// HistoryWriter выгружает историю изменений бронирования в xlsx
type HistoryWriter struct {
	location *time.Location
}

// NewHistoryWriter создает writer; даты форматируются в указанной таймзоне
func NewHistoryWriter(location *time.Location) *HistoryWriter {
	if location == nil {
		location = time.UTC
	}
	return &HistoryWriter{location: location}
}

// Write пишет один лист: строка на каждое изменение поля, пачки идут в исходном порядке
func (w *HistoryWriter) Write(out io.Writer, reservationID string, batches []history.BatchView) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := sheetName(historySheet + " " + reservationID)
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}

	if err := writeRow(file, sheet, 1, toInterfaces(historyColumns)); err != nil {
		return err
	}
	if style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(historyColumns), 1)
		_ = file.SetCellStyle(sheet, "A1", endCell, style)
	}

	row := 2
	for _, batch := range batches {
		createdAt := batch.CreatedAt.In(w.location).Format("2006-01-02 15:04:05")
		for _, change := range batch.Changes {
			var added, removed string
			if change.Services != nil {
				added = strings.Join(change.Services.Added, ", ")
				removed = strings.Join(change.Services.Removed, ", ")
			}

			values := []interface{}{
				createdAt,
				batch.ChangedByUsername,
				string(batch.ChangedByType),
				string(batch.ChangeType),
				change.Label,
				change.Old,
				change.New,
				added,
				removed,
			}
			if err := writeRow(file, sheet, row, values); err != nil {
				return err
			}
			row++
		}
	}

	if err := file.Write(out); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

func writeRow(file *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("export: cell name: %w", err)
	}
	if err := file.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("export: write row %d: %w", row, err)
	}
	return nil
}

// sheetNameReplacer заменяет символы, запрещенные Excel в имени листа
var sheetNameReplacer = strings.NewReplacer(
	":", "_", "\\", "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

func sheetName(name string) string {
	name = strings.Trim(sheetNameReplacer.Replace(name), "'")
	runes := []rune(name)
	if len(runes) > excelSheetNameLimit {
		return string(runes[:excelSheetNameLimit])
	}
	return name
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
