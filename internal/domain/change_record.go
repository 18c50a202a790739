package domain

import (
	"encoding/json"
	"sort"
	"time"
)

// ChangeType kind of logical edit
type ChangeType string

const (
	ChangeTypeCreated ChangeType = "created"
	ChangeTypeUpdated ChangeType = "updated"
)

// IsValid reports whether the change type is known
func (c ChangeType) IsValid() bool {
	return c == ChangeTypeCreated || c == ChangeTypeUpdated
}

// ActorType who performed the edit
type ActorType string

const (
	ActorAdmin    ActorType = "admin"
	ActorCustomer ActorType = "customer"
	ActorSystem   ActorType = "system"
)

// IsValid reports whether the actor type is known
func (a ActorType) IsValid() bool {
	return a == ActorAdmin || a == ActorCustomer || a == ActorSystem
}

// ChangeRecord one mutated field of a reservation. Immutable once written.
// OldValue/NewValue hold raw JSON (jsonb column); nil or "null" means no value.
type ChangeRecord struct {
	ID                string          `json:"id"`
	ReservationID     string          `json:"reservation_id"`
	ChangeType        ChangeType      `json:"change_type"`
	FieldName         string          `json:"field_name"`
	OldValue          json.RawMessage `json:"old_value"`
	NewValue          json.RawMessage `json:"new_value"`
	BatchID           string          `json:"batch_id"`
	ChangedByUsername string          `json:"changed_by_username"`
	ChangedByType     ActorType       `json:"changed_by_type"`
	CreatedAt         time.Time       `json:"created_at"`
}

// SortedChangeRecords change records ordered by CreatedAt ascending.
// Produced by storage (ORDER BY created_at, id) or SortChangeRecords; grouping relies on this order.
type SortedChangeRecords struct {
	records []ChangeRecord
}

// AssumeSorted wraps records already ordered by CreatedAt ascending (as delivered by storage)
func AssumeSorted(records []ChangeRecord) SortedChangeRecords {
	return SortedChangeRecords{records: records}
}

// SortChangeRecords returns a sorted copy; ties keep their input order
func SortChangeRecords(records []ChangeRecord) SortedChangeRecords {
	sorted := make([]ChangeRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return SortedChangeRecords{records: sorted}
}

// Records returns the underlying slice. Callers must not reorder it.
func (s SortedChangeRecords) Records() []ChangeRecord {
	return s.records
}

// Len number of records
func (s SortedChangeRecords) Len() int {
	return len(s.records)
}

// GroupedChange all records of one batch, in insertion order
type GroupedChange struct {
	BatchID           string         `json:"batch_id"`
	ChangedByUsername string         `json:"changed_by_username"`
	ChangedByType     ActorType      `json:"changed_by_type"`
	CreatedAt         time.Time      `json:"created_at"`
	Changes           []ChangeRecord `json:"changes"`
}

// ServiceDiff services added and removed between two id lists, by display label
type ServiceDiff struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
}

// IsEmpty reports whether nothing changed
func (d ServiceDiff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}
