package search_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ndishimyeemilien/job-connect/internal/model"
	"github.com/ndishimyeemilien/job-connect/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobList() []model.Job {
	fullTime := model.Job{
		ID:              uuid.New(),
		Title:           "Backend Developer",
		Company:         "DataStream",
		Location:        "Chicago, IL",
		Description:     "APIs and data pipelines.",
		EmploymentType:  model.EmploymentFullTime,
		ExperienceLevel: model.ExperienceSenior,
		Skills:          []string{"Go", "PostgreSQL"},
		IsRemote:        true,
		Status:          model.JobStatusActive,
	}
	contract := model.Job{
		ID:              uuid.New(),
		Title:           "Backend Engineer",
		Company:         "CloudFirst",
		Location:        "Seattle, WA",
		Description:     "Cloud infrastructure work.",
		EmploymentType:  model.EmploymentContract,
		ExperienceLevel: model.ExperienceMid,
		Skills:          []string{"AWS", "Terraform"},
		IsRemote:        false,
		Status:          model.JobStatusActive,
	}
	designer := model.Job{
		ID:              uuid.New(),
		Title:           "UX Designer",
		Company:         "DesignHub",
		Location:        "Austin, TX",
		Description:     "Crafting interfaces.",
		EmploymentType:  model.EmploymentFullTime,
		ExperienceLevel: model.ExperienceMid,
		Skills:          []string{"Figma"},
		IsRemote:        true,
		Status:          model.JobStatusActive,
	}
	return []model.Job{fullTime, contract, designer}
}

func TestQuery_EmptyInputsReturnAllInOrder(t *testing.T) {
	jobs := jobList()
	got := search.Query(jobs, "", "", search.Criteria{}, now)

	require.Len(t, got, len(jobs))
	for i := range jobs {
		assert.Equal(t, jobs[i].ID, got[i].ID)
	}
}

func TestQuery_IntersectsSearchAndFilters(t *testing.T) {
	jobs := jobList()

	// "backend" matches the first two; the full-time filter keeps only one.
	got := search.Query(jobs, "backend", "", search.Criteria{
		JobTypes: []model.EmploymentType{model.EmploymentFullTime},
	}, now)

	require.Len(t, got, 1)
	assert.Equal(t, "DataStream", got[0].Company)
}

func TestQuery_JobTypeFilterAlone(t *testing.T) {
	jobs := jobList()[:2] // one full-time, one contract

	got := search.Query(jobs, "", "", search.Criteria{
		JobTypes: []model.EmploymentType{model.EmploymentFullTime},
	}, now)

	require.Len(t, got, 1)
	assert.Equal(t, model.EmploymentFullTime, got[0].EmploymentType)
}

func TestQuery_Idempotent(t *testing.T) {
	jobs := jobList()
	criteria := search.Criteria{Remote: true}

	first := search.Query(jobs, "e", "", criteria, now)
	second := search.Query(jobs, "e", "", criteria, now)

	assert.Equal(t, first, second)
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	jobs := jobList()
	before := make([]model.Job, len(jobs))
	copy(before, jobs)

	search.Query(jobs, "backend", "seattle", search.Criteria{Remote: true}, now)

	assert.Equal(t, before, jobs)
}
