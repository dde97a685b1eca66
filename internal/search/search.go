// Package search implements the job board's in-memory query engine: a
// free-text search predicate, a structured filter predicate and the
// orchestrator that intersects them. All functions are pure and never mutate
// the job records they read.
package search

import (
	"strings"

	"github.com/ndishimyeemilien/job-connect/internal/model"
)

// MatchesQuery reports whether the free-text query matches a job. An empty or
// whitespace-only query matches everything; otherwise the lowercased query
// must be a substring of the title, company, description or any skill.
// No tokenization or ranking, just containment.
func MatchesQuery(job *model.Job, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(job.Title), q) ||
		strings.Contains(strings.ToLower(job.Company), q) ||
		strings.Contains(strings.ToLower(job.Description), q) {
		return true
	}
	for _, skill := range job.Skills {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	return false
}

// MatchesLocation reports whether the location query matches a job. An empty
// query matches everything. A remote job also matches when the query itself
// mentions "remote".
func MatchesLocation(job *model.Job, location string) bool {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return true
	}
	if strings.Contains(strings.ToLower(job.Location), loc) {
		return true
	}
	return job.IsRemote && strings.Contains(loc, "remote")
}
