package history

import "github.com/m04kA/SMC-ReservationCore/internal/domain"

// LabelLookup resolves a service id to its display name
type LabelLookup func(id string) (string, bool)

// MapLookup LabelLookup over a snapshot of the service dictionary
func MapLookup(labels map[string]string) LabelLookup {
	return func(id string) (string, bool) {
		label, ok := labels[id]
		return label, ok
	}
}

// DiffServiceIDs compares both lists as sets.
// Added holds ids only in newIDs, Removed ids only in oldIDs, each rendered through lookup
// (raw id when unknown). Order inside Added/Removed is not part of the contract.
func DiffServiceIDs(oldIDs, newIDs []string, lookup LabelLookup) domain.ServiceDiff {
	oldSet := toSet(oldIDs)
	newSet := toSet(newIDs)

	diff := domain.ServiceDiff{
		Added:   make([]string, 0),
		Removed: make([]string, 0),
	}

	for _, id := range uniq(newIDs) {
		if _, ok := oldSet[id]; !ok {
			diff.Added = append(diff.Added, label(id, lookup))
		}
	}
	for _, id := range uniq(oldIDs) {
		if _, ok := newSet[id]; !ok {
			diff.Removed = append(diff.Removed, label(id, lookup))
		}
	}

	return diff
}

func label(id string, lookup LabelLookup) string {
	if lookup == nil {
		return id
	}
	if name, ok := lookup(id); ok && name != "" {
		return name
	}
	return id
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func uniq(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
