package domain

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey identifies one of the supported task orderings.
type SortKey string

// Supported sort keys. The values are the literal path segments accepted by
// the GET /tasks/sort/{sortBy} endpoint.
const (
	// SortByDueDate orders tasks in ascending chronological order.
	SortByDueDate SortKey = "dueDate"

	// SortByCategory orders tasks by category in ascending locale-aware
	// lexicographic order.
	SortByCategory SortKey = "category"

	// SortByCompletionStatus orders incomplete tasks before completed ones.
	SortByCompletionStatus SortKey = "completionStatus"
)

// ParseSortKey converts a raw string into a SortKey.
// Returns ErrInvalidSortKey for any unrecognized value.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortByDueDate, SortByCategory, SortByCompletionStatus:
		return SortKey(s), nil
	default:
		return "", ErrInvalidSortKey
	}
}

// SortTasks orders tasks in place by the given key. Ties keep their input
// relative order. Returns ErrInvalidSortKey if the key is not supported.
func SortTasks(tasks []*Task, key SortKey) error {
	switch key {
	case SortByDueDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		})
	case SortByCategory:
		// A collator is not safe for concurrent use, so each call gets
		// its own.
		c := collate.New(language.Und)
		sort.SliceStable(tasks, func(i, j int) bool {
			return c.CompareString(tasks[i].Category, tasks[j].Category) < 0
		})
	case SortByCompletionStatus:
		sort.SliceStable(tasks, func(i, j int) bool {
			return !tasks[i].Completed && tasks[j].Completed
		})
	default:
		return ErrInvalidSortKey
	}
	return nil
}
