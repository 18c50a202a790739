package domain

// ReservationStatus status code of a reservation
type ReservationStatus string

const (
	StatusPending         ReservationStatus = "pending"
	StatusConfirmed       ReservationStatus = "confirmed"
	StatusInProgress      ReservationStatus = "in_progress"
	StatusCompleted       ReservationStatus = "completed"
	StatusReleased        ReservationStatus = "released"
	StatusCancelled       ReservationStatus = "cancelled"
	StatusNoShow          ReservationStatus = "no_show"
	StatusChangeRequested ReservationStatus = "change_requested"
)

// IsValid reports whether the status code is known
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted,
		StatusReleased, StatusCancelled, StatusNoShow, StatusChangeRequested:
		return true
	}
	return false
}

// Tracked reservation fields written to the change log
const (
	FieldReservationDate = "reservation_date"
	FieldEndDate         = "end_date"
	FieldStartTime       = "start_time"
	FieldEndTime         = "end_time"
	FieldServiceIDs      = "service_ids"
	FieldStationID       = "station_id"
	FieldStatus          = "status"
	FieldPrice           = "price"
	FieldCustomerName    = "customer_name"
	FieldCustomerPhone   = "customer_phone"
	FieldVehiclePlate    = "vehicle_plate"
	FieldCarSize         = "car_size"
	FieldNotes           = "customer_notes"
	FieldAdminNotes      = "admin_notes"
	FieldOfferNumber     = "offer_number"
)

// ReservationSnapshot state of a reservation before or after an edit.
// Only tracked fields are present; nil means "not set".
type ReservationSnapshot struct {
	ReservationDate *string  `json:"reservation_date,omitempty"`
	EndDate         *string  `json:"end_date,omitempty"`
	StartTime       *string  `json:"start_time,omitempty"`
	EndTime         *string  `json:"end_time,omitempty"`
	ServiceIDs      []string `json:"service_ids,omitempty"`
	StationID       *string  `json:"station_id,omitempty"`
	Status          *string  `json:"status,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	CustomerName    *string  `json:"customer_name,omitempty"`
	CustomerPhone   *string  `json:"customer_phone,omitempty"`
	VehiclePlate    *string  `json:"vehicle_plate,omitempty"`
	CarSize         *string  `json:"car_size,omitempty"`
	CustomerNotes   *string  `json:"customer_notes,omitempty"`
	AdminNotes      *string  `json:"admin_notes,omitempty"`
	OfferNumber     *string  `json:"offer_number,omitempty"`
}
