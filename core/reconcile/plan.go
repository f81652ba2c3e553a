package reconcile

import "sort"

// Diff partitions a snapshot against a baseline of active keys.
//
// Records whose key is not in the baseline are planned for insertion, records
// whose key is in the baseline for update, and baseline keys missing from the
// snapshot for soft deletion. When the snapshot repeats a key, the last record
// wins and keeps the position of the first occurrence.
func Diff[T any](snapshot []T, baseline map[string]struct{}, key func(T) string) *Plan[T] {
	unique, duplicates := dedupe(snapshot, key)

	plan := &Plan[T]{
		ToAdd:    []T{},
		ToUpdate: []T{},
		ToDelete: []string{},
	}

	seen := make(map[string]struct{}, len(unique))
	for _, item := range unique {
		k := key(item)
		seen[k] = struct{}{}
		if _, ok := baseline[k]; ok {
			plan.ToUpdate = append(plan.ToUpdate, item)
		} else {
			plan.ToAdd = append(plan.ToAdd, item)
		}
	}

	for k := range baseline {
		if _, ok := seen[k]; !ok {
			plan.ToDelete = append(plan.ToDelete, k)
		}
	}
	sort.Strings(plan.ToDelete)

	plan.Actions = make([]Action, 0, len(plan.ToDelete)+len(plan.ToUpdate)+len(plan.ToAdd))
	for _, k := range plan.ToDelete {
		plan.Actions = append(plan.Actions, Action{Type: ActionDelete, Key: k})
	}
	for _, item := range plan.ToUpdate {
		plan.Actions = append(plan.Actions, Action{Type: ActionUpdate, Key: key(item)})
	}
	for _, item := range plan.ToAdd {
		plan.Actions = append(plan.Actions, Action{Type: ActionAdd, Key: key(item)})
	}

	plan.Summary = PlanSummary{
		SnapshotSize: len(unique),
		BaselineSize: len(baseline),
		Duplicates:   duplicates,
		ToAdd:        len(plan.ToAdd),
		ToUpdate:     len(plan.ToUpdate),
		ToDelete:     len(plan.ToDelete),
	}

	return plan
}

// dedupe collapses records sharing a key, last write wins.
func dedupe[T any](snapshot []T, key func(T) string) ([]T, int) {
	pos := make(map[string]int, len(snapshot))
	unique := make([]T, 0, len(snapshot))
	duplicates := 0

	for _, item := range snapshot {
		k := key(item)
		if i, ok := pos[k]; ok {
			unique[i] = item
			duplicates++
			continue
		}
		pos[k] = len(unique)
		unique = append(unique, item)
	}

	return unique, duplicates
}
