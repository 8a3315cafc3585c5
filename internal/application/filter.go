package application

import (
	"strings"

	"github.com/rentora/admin-cli/internal/domain"
)

// FilterCriteria is ephemeral view state, recomputed on every change.
// An empty Query matches everything; an empty Status matches any state.
type FilterCriteria struct {
	Query  string
	Status domain.ModerationStatus
}

// VisibleRecords derives the visible subset of a cache snapshot. Pure
// linear scan, insertion order preserved, never re-sorted.
func VisibleRecords(records []domain.Record, criteria FilterCriteria) []domain.Record {
	query := strings.ToLower(strings.TrimSpace(criteria.Query))

	visible := make([]domain.Record, 0, len(records))
	for _, record := range records {
		if criteria.Status != "" && record.Status != criteria.Status {
			continue
		}
		if query != "" && !strings.Contains(searchText(record), query) {
			continue
		}
		visible = append(visible, record)
	}

	return visible
}

// searchText is the fixed field set the query matches against: name,
// contact fields, and role/category.
func searchText(record domain.Record) string {
	return strings.ToLower(strings.Join([]string{
		record.Name,
		record.Email,
		record.Phone,
		record.AlternatePhone,
		record.Role,
	}, " "))
}
