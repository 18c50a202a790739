package supabase

import "encoding/json"

const (
	tableInstances          = "instances"
	tableReservationChanges = "reservation_changes"
	tableServices           = "services"

	changeColumns = "id,reservation_id,change_type,field_name,old_value,new_value,batch_id,changed_by_username,changed_by_type,created_at"
)

// instanceRow строка instances
type instanceRow struct {
	ID           string          `json:"id"`
	WorkingHours json.RawMessage `json:"working_hours"`
}

// serviceRow строка services
type serviceRow struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ShortName *string `json:"short_name"`
}
