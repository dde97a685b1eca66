package search

import (
	"fmt"

	"github.com/ndishimyeemilien/job-connect/internal/model"
)

type DatePosted string

const (
	DatePostedToday DatePosted = "today"
	DatePostedWeek  DatePosted = "week"
	DatePostedMonth DatePosted = "month"
)

func ParseDatePosted(s string) (DatePosted, error) {
	switch DatePosted(s) {
	case DatePostedToday, DatePostedWeek, DatePostedMonth:
		return DatePosted(s), nil
	}
	return "", fmt.Errorf("invalid date posted bucket %q", s)
}

// days returns the recency window: postings newer than this many days pass.
func (d DatePosted) days() int {
	switch d {
	case DatePostedToday:
		return 1
	case DatePostedWeek:
		return 7
	case DatePostedMonth:
		return 30
	}
	return 0
}

// SalaryRange is an inclusive [Min, Max] bound in whole currency units.
type SalaryRange struct {
	Min int
	Max int
}

// Criteria is the structured, non-text-search constraint set. The zero value
// matches every job: empty slices mean no constraint, Remote false means no
// constraint, nil Salary and empty DatePosted mean no constraint.
type Criteria struct {
	JobTypes         []model.EmploymentType
	ExperienceLevels []model.ExperienceLevel
	Remote           bool
	Salary           *SalaryRange
	DatePosted       DatePosted
}
