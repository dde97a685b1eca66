package search

import (
	"time"

	"github.com/ndishimyeemilien/job-connect/internal/model"
)

// MatchesCriteria evaluates the structured filters against a job as a logical
// AND of independent sub-predicates. now is injected so recency buckets stay
// deterministic under test.
func MatchesCriteria(job *model.Job, c Criteria, now time.Time) bool {
	return matchesJobType(job, c.JobTypes) &&
		matchesExperience(job, c.ExperienceLevels) &&
		matchesRemote(job, c.Remote) &&
		matchesSalary(job, c.Salary) &&
		matchesDatePosted(job, c.DatePosted, now)
}

func matchesJobType(job *model.Job, types []model.EmploymentType) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if job.EmploymentType == t {
			return true
		}
	}
	return false
}

func matchesExperience(job *model.Job, levels []model.ExperienceLevel) bool {
	if len(levels) == 0 {
		return true
	}
	for _, l := range levels {
		if job.ExperienceLevel == l {
			return true
		}
	}
	return false
}

func matchesRemote(job *model.Job, remote bool) bool {
	return !remote || job.IsRemote
}

// matchesSalary checks the parsed lower bound of the job's free-text salary
// against the requested inclusive range. A job without a parseable salary
// always passes, so postings that omit pay are never hidden by the filter.
func matchesSalary(job *model.Job, r *SalaryRange) bool {
	if r == nil {
		return true
	}
	salary, ok := ParseSalary(job.Salary)
	if !ok {
		return true
	}
	return salary >= r.Min && salary <= r.Max
}

func matchesDatePosted(job *model.Job, d DatePosted, now time.Time) bool {
	if d == "" {
		return true
	}
	daysSince := int(now.Sub(job.PostedDate).Hours() / 24)
	return daysSince < d.days()
}
