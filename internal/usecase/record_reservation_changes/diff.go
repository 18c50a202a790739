package record_reservation_changes

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
)

// trackedField поле бронирования, попадающее в журнал
type trackedField struct {
	name  string
	value func(s *domain.ReservationSnapshot) interface{}
}

// trackedFields порядок полей определяет порядок записей внутри пачки
var trackedFields = []trackedField{
	{domain.FieldReservationDate, func(s *domain.ReservationSnapshot) interface{} { return s.ReservationDate }},
	{domain.FieldEndDate, func(s *domain.ReservationSnapshot) interface{} { return s.EndDate }},
	{domain.FieldStartTime, func(s *domain.ReservationSnapshot) interface{} { return s.StartTime }},
	{domain.FieldEndTime, func(s *domain.ReservationSnapshot) interface{} { return s.EndTime }},
	{domain.FieldServiceIDs, func(s *domain.ReservationSnapshot) interface{} { return sortedIDs(s.ServiceIDs) }},
	{domain.FieldStationID, func(s *domain.ReservationSnapshot) interface{} { return s.StationID }},
	{domain.FieldStatus, func(s *domain.ReservationSnapshot) interface{} { return s.Status }},
	{domain.FieldPrice, func(s *domain.ReservationSnapshot) interface{} { return s.Price }},
	{domain.FieldCustomerName, func(s *domain.ReservationSnapshot) interface{} { return s.CustomerName }},
	{domain.FieldCustomerPhone, func(s *domain.ReservationSnapshot) interface{} { return s.CustomerPhone }},
	{domain.FieldVehiclePlate, func(s *domain.ReservationSnapshot) interface{} { return s.VehiclePlate }},
	{domain.FieldCarSize, func(s *domain.ReservationSnapshot) interface{} { return s.CarSize }},
	{domain.FieldNotes, func(s *domain.ReservationSnapshot) interface{} { return s.CustomerNotes }},
	{domain.FieldAdminNotes, func(s *domain.ReservationSnapshot) interface{} { return s.AdminNotes }},
	{domain.FieldOfferNumber, func(s *domain.ReservationSnapshot) interface{} { return s.OfferNumber }},
}

// fieldChange изменение одного поля до присвоения batch/автора
type fieldChange struct {
	field    string
	oldValue json.RawMessage
	newValue json.RawMessage
}

// diffSnapshots сравнивает снимки по отслеживаемым полям
// prev == nil означает создание: в журнал попадают все заполненные поля next
func diffSnapshots(prev, next *domain.ReservationSnapshot) ([]fieldChange, error) {
	changes := make([]fieldChange, 0)

	for _, f := range trackedFields {
		newValue, err := encodeValue(f.value(next))
		if err != nil {
			return nil, err
		}

		var oldValue json.RawMessage
		if prev != nil {
			oldValue, err = encodeValue(f.value(prev))
			if err != nil {
				return nil, err
			}
		}

		if bytes.Equal(oldValue, newValue) {
			continue
		}

		changes = append(changes, fieldChange{
			field:    f.name,
			oldValue: oldValue,
			newValue: newValue,
		})
	}

	return changes, nil
}

// encodeValue кодирует значение в JSON; незаданное значение и пустая строка - nil
func encodeValue(v interface{}) (json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(raw) == "null" || string(raw) == `""` {
		return nil, nil
	}
	return raw, nil
}

// sortedIDs копия списка услуг в каноническом порядке; пустой список - nil
func sortedIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return sorted
}
