package core

import "strings"

// Wildcard values the job browser UI sends when a dropdown is left on its
// default option.
const (
	AllTypes     = "All Types"
	AllLocations = "All Locations"
)

// JobFilter narrows a job listing. Zero values and the "All ..." wildcards
// match everything.
type JobFilter struct {
	Search   string
	Type     string
	Location string
}

// Matches reports whether a job passes the filter. Search is a
// case-insensitive substring match against title, company, and description,
// the same linear predicate the job browser applies.
func (f JobFilter) Matches(job *Job) bool {
	if job == nil {
		return false
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(job.Title), needle) &&
			!strings.Contains(strings.ToLower(job.Company), needle) &&
			!strings.Contains(strings.ToLower(job.Description), needle) {
			return false
		}
	}

	if f.Type != "" && f.Type != AllTypes && !strings.EqualFold(f.Type, job.Type) {
		return false
	}

	if f.Location != "" && f.Location != AllLocations && !strings.EqualFold(f.Location, job.Location) {
		return false
	}

	return true
}
