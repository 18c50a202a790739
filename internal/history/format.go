package history

import "github.com/m04kA/SMC-ReservationCore/internal/domain"

// Placeholder shown for a missing value
const Placeholder = "-"

// DefaultFieldIcon glyph for fields without a dedicated icon
const DefaultFieldIcon = "•"

var statusLabels = map[domain.ReservationStatus]string{
	domain.StatusPending:         "Oczekująca",
	domain.StatusConfirmed:       "Potwierdzona",
	domain.StatusInProgress:      "W trakcie",
	domain.StatusCompleted:       "Zakończona",
	domain.StatusReleased:        "Wydana",
	domain.StatusCancelled:       "Anulowana",
	domain.StatusNoShow:          "Nieobecność",
	domain.StatusChangeRequested: "Prośba o zmianę",
}

var fieldIcons = map[string]string{
	domain.FieldReservationDate: "📅",
	domain.FieldEndDate:         "📅",
	domain.FieldStartTime:       "🕐",
	domain.FieldEndTime:         "🕐",
	domain.FieldServiceIDs:      "🛠",
	domain.FieldStationID:       "📍",
	domain.FieldStatus:          "🔄",
	domain.FieldPrice:           "💰",
	domain.FieldCustomerName:    "👤",
	domain.FieldCustomerPhone:   "📞",
	domain.FieldVehiclePlate:    "🚗",
	domain.FieldCarSize:         "📏",
	domain.FieldNotes:           "📝",
	domain.FieldAdminNotes:      "🗒",
	domain.FieldOfferNumber:     "📄",
}

var fieldLabels = map[string]string{
	domain.FieldReservationDate: "Data",
	domain.FieldEndDate:         "Data zakończenia",
	domain.FieldStartTime:       "Godzina rozpoczęcia",
	domain.FieldEndTime:         "Godzina zakończenia",
	domain.FieldServiceIDs:      "Usługi",
	domain.FieldStationID:       "Stanowisko",
	domain.FieldStatus:          "Status",
	domain.FieldPrice:           "Cena",
	domain.FieldCustomerName:    "Klient",
	domain.FieldCustomerPhone:   "Telefon",
	domain.FieldVehiclePlate:    "Pojazd",
	domain.FieldCarSize:         "Wielkość auta",
	domain.FieldNotes:           "Uwagi klienta",
	domain.FieldAdminNotes:      "Notatki wewnętrzne",
	domain.FieldOfferNumber:     "Numer oferty",
}

// TranslateStatus display label of a status code.
// nil gives "-", an unknown code is returned as is.
func TranslateStatus(code *string) string {
	if code == nil {
		return Placeholder
	}
	if label, ok := statusLabels[domain.ReservationStatus(*code)]; ok {
		return label
	}
	return *code
}

// FieldIcon glyph for a tracked field, DefaultFieldIcon otherwise
func FieldIcon(fieldName string) string {
	if icon, ok := fieldIcons[fieldName]; ok {
		return icon
	}
	return DefaultFieldIcon
}

// FieldLabel human readable field name, the raw name when unknown
func FieldLabel(fieldName string) string {
	if label, ok := fieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}

// ShortTime cuts "HH:MM:SS" (or longer) down to "HH:MM"; nil gives "-"
func ShortTime(value *string) string {
	if value == nil {
		return Placeholder
	}
	if len(*value) <= 5 {
		return *value
	}
	return (*value)[:5]
}
