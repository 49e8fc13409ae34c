package core

import "testing"

// Requirement: search matches title, company, and description ignoring case;
// type and location match exactly but honor the "All ..." wildcards.
func TestJobFilter_Matches(t *testing.T) {
	job := &Job{
		Title:       "Frontend Developer Intern",
		Company:     "TechCorp",
		Location:    "Remote",
		Type:        "internship",
		Description: "Work with React on our dashboard.",
	}

	tests := []struct {
		name   string
		filter JobFilter
		want   bool
	}{
		{name: "empty filter matches", filter: JobFilter{}, want: true},
		{name: "search in title", filter: JobFilter{Search: "frontend"}, want: true},
		{name: "search in company", filter: JobFilter{Search: "techcorp"}, want: true},
		{name: "search in description", filter: JobFilter{Search: "react"}, want: true},
		{name: "search misses", filter: JobFilter{Search: "golang"}, want: false},
		{name: "type matches ignoring case", filter: JobFilter{Type: "Internship"}, want: true},
		{name: "type mismatch", filter: JobFilter{Type: "full-time"}, want: false},
		{name: "type wildcard", filter: JobFilter{Type: AllTypes}, want: true},
		{name: "location matches", filter: JobFilter{Location: "remote"}, want: true},
		{name: "location mismatch", filter: JobFilter{Location: "Berlin"}, want: false},
		{name: "location wildcard", filter: JobFilter{Location: AllLocations}, want: true},
		{name: "all criteria together", filter: JobFilter{Search: "intern", Type: "internship", Location: "Remote"}, want: true},
		{name: "search hits but type misses", filter: JobFilter{Search: "intern", Type: "full-time"}, want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.filter.Matches(job); got != test.want {
				t.Errorf("Matches() = %v, want %v", got, test.want)
			}
		})
	}

	if (JobFilter{}).Matches(nil) {
		t.Error("Matches(nil) = true, want false")
	}
}
