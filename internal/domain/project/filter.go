package project

import (
	"sort"
	"strings"
	"time"
)

// Sort keys accepted by the board.
const (
	SortRecent   = "recent"
	SortName     = "name"
	SortProgress = "progress"
	SortDue      = "due"
)

// Query narrows and orders the enriched project list. Zero values mean
// "no filtering" for that dimension.
type Query struct {
	Search   string
	Status   Status
	Priority Priority
	SortBy   string
}

// Filter returns the projects matching q. Search is a case-insensitive
// substring match on name or description; status and priority match exactly.
// The input slice is never modified.
func Filter(projects []Enriched, q Query) []Enriched {
	needle := strings.ToLower(q.Search)

	out := make([]Enriched, 0, len(projects))
	for _, p := range projects {
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		if q.Status != "" && p.Status != q.Status {
			continue
		}
		if q.Priority != "" && p.Priority != q.Priority {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Sort orders a copy of the list by the given key. Unknown keys and
// SortRecent keep insertion order.
func Sort(projects []Enriched, key string) []Enriched {
	out := make([]Enriched, len(projects))
	copy(out, projects)

	switch key {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Name < out[j].Name
		})
	case SortProgress:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Progress > out[j].Progress
		})
	case SortDue:
		sort.SliceStable(out, func(i, j int) bool {
			return dueTime(out[i].DueDate).Before(dueTime(out[j].DueDate))
		})
	}
	return out
}

func dueTime(display string) time.Time {
	t, err := time.Parse("Jan 2, 2006", display)
	if err != nil {
		return time.Time{}
	}
	return t
}
