package search

import (
	"time"

	"github.com/ndishimyeemilien/job-connect/internal/model"
)

// Query returns the jobs matching both the free-text search (query +
// location) and the structured criteria. Since every predicate is evaluated
// per job, a single pass is equivalent to intersecting the two match sets by
// identity, and the relative order of jobs is preserved. Calling Query twice
// with identical inputs yields identical output.
func Query(jobs []model.Job, query, location string, c Criteria, now time.Time) []model.Job {
	matched := make([]model.Job, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		if MatchesQuery(job, query) && MatchesLocation(job, location) && MatchesCriteria(job, c, now) {
			matched = append(matched, jobs[i])
		}
	}
	return matched
}
