package history

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationCore/internal/domain"
)

// ChangeView one field change ready for display
type ChangeView struct {
	FieldName string              `json:"fieldName"`
	Label     string              `json:"label"`
	Icon      string              `json:"icon"`
	Old       string              `json:"old"`
	New       string              `json:"new"`
	Services  *domain.ServiceDiff `json:"services,omitempty"`
}

// BatchView one logical edit ready for display
type BatchView struct {
	BatchID           string            `json:"batchId"`
	ChangeType        domain.ChangeType `json:"changeType"`
	ChangedByUsername string            `json:"changedByUsername"`
	ChangedByType     domain.ActorType  `json:"changedByType"`
	CreatedAt         time.Time         `json:"createdAt"`
	Changes           []ChangeView      `json:"changes"`
}

// Render groups records and renders every change
func Render(records domain.SortedChangeRecords, lookup LabelLookup) []BatchView {
	groups := Group(records)
	views := make([]BatchView, len(groups))
	for i, g := range groups {
		views[i] = RenderGroup(g, lookup)
	}
	return views
}

// RenderGroup renders a single batch
func RenderGroup(group domain.GroupedChange, lookup LabelLookup) BatchView {
	view := BatchView{
		BatchID:           group.BatchID,
		ChangedByUsername: group.ChangedByUsername,
		ChangedByType:     group.ChangedByType,
		CreatedAt:         group.CreatedAt,
		Changes:           make([]ChangeView, len(group.Changes)),
	}
	if len(group.Changes) > 0 {
		view.ChangeType = group.Changes[0].ChangeType
	}

	for i, record := range group.Changes {
		view.Changes[i] = RenderChange(record, lookup)
	}

	return view
}

// RenderChange renders one field change according to the field kind
func RenderChange(record domain.ChangeRecord, lookup LabelLookup) ChangeView {
	view := ChangeView{
		FieldName: record.FieldName,
		Label:     FieldLabel(record.FieldName),
		Icon:      FieldIcon(record.FieldName),
	}

	switch record.FieldName {
	case domain.FieldStatus:
		view.Old = TranslateStatus(DecodeString(record.OldValue))
		view.New = TranslateStatus(DecodeString(record.NewValue))

	case domain.FieldStartTime, domain.FieldEndTime:
		view.Old = ShortTime(DecodeString(record.OldValue))
		view.New = ShortTime(DecodeString(record.NewValue))

	case domain.FieldServiceIDs:
		oldIDs := DecodeStringList(record.OldValue)
		newIDs := DecodeStringList(record.NewValue)
		diff := DiffServiceIDs(oldIDs, newIDs, lookup)
		view.Services = &diff
		view.Old = joinLabels(oldIDs, lookup)
		view.New = joinLabels(newIDs, lookup)

	default:
		view.Old = orPlaceholder(DecodeString(record.OldValue))
		view.New = orPlaceholder(DecodeString(record.NewValue))
	}

	return view
}

// DecodeString reads a jsonb value as text.
// Missing or null gives nil, a JSON string is unquoted, anything else is returned verbatim.
func DecodeString(raw json.RawMessage) *string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return &s
	}

	text := string(trimmed)
	return &text
}

// DecodeStringList reads a jsonb array of ids. A JSON string holding an array is accepted too.
func DecodeStringList(raw json.RawMessage) []string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var ids []string
	if err := json.Unmarshal(trimmed, &ids); err == nil {
		return ids
	}

	var nested string
	if err := json.Unmarshal(trimmed, &nested); err == nil {
		if err := json.Unmarshal([]byte(nested), &ids); err == nil {
			return ids
		}
	}

	return nil
}

func joinLabels(ids []string, lookup LabelLookup) string {
	if len(ids) == 0 {
		return Placeholder
	}
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = label(id, lookup)
	}
	return strings.Join(labels, ", ")
}

func orPlaceholder(value *string) string {
	if value == nil || *value == "" {
		return Placeholder
	}
	return *value
}
