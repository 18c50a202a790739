// Package history rebuilds the audit trail of a reservation from field-level change
// records: edits are grouped into batches and each change is rendered for display.
package history

import "github.com/m04kA/SMC-ReservationCore/internal/domain"

// Group collects records sharing a batch id.
// Batches appear in the order their first record appears; the result is not re-sorted by time.
// The first record of a batch provides its author, actor type and timestamp.
func Group(records domain.SortedChangeRecords) []domain.GroupedChange {
	groups := make([]domain.GroupedChange, 0)
	index := make(map[string]int)

	for _, record := range records.Records() {
		i, ok := index[record.BatchID]
		if !ok {
			groups = append(groups, domain.GroupedChange{
				BatchID:           record.BatchID,
				ChangedByUsername: record.ChangedByUsername,
				ChangedByType:     record.ChangedByType,
				CreatedAt:         record.CreatedAt,
				Changes:           make([]domain.ChangeRecord, 0, 1),
			})
			i = len(groups) - 1
			index[record.BatchID] = i
		}
		groups[i].Changes = append(groups[i].Changes, record)
	}

	return groups
}
