package search_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ndishimyeemilien/job-connect/internal/model"
	"github.com/ndishimyeemilien/job-connect/internal/search"
	"github.com/stretchr/testify/assert"
)

func sampleJob() *model.Job {
	return &model.Job{
		ID:              uuid.New(),
		Title:           "Senior Frontend Developer",
		Company:         "TechCorp Solutions",
		Location:        "San Francisco, CA",
		Description:     "Build customer-facing applications with modern web technologies.",
		EmploymentType:  model.EmploymentFullTime,
		ExperienceLevel: model.ExperienceSenior,
		Skills:          []string{"React", "TypeScript", "Jest"},
		IsRemote:        true,
		Status:          model.JobStatusActive,
	}
}

func TestMatchesQuery_EmptyMatchesAll(t *testing.T) {
	job := sampleJob()
	assert.True(t, search.MatchesQuery(job, ""))
	assert.True(t, search.MatchesQuery(job, "   "))
}

func TestMatchesQuery_Fields(t *testing.T) {
	job := sampleJob()

	cases := []struct {
		name  string
		query string
		want  bool
	}{
		{"title substring", "frontend", true},
		{"company substring", "techcorp", true},
		{"description substring", "customer-facing", true},
		{"skill substring", "typescript", true},
		{"partial skill", "react", true},
		{"mixed case", "FrOnTeNd", true},
		{"no match", "golang", false},
		{"location is not searched", "san francisco", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, search.MatchesQuery(job, c.query))
		})
	}
}

func TestMatchesLocation(t *testing.T) {
	onsite := sampleJob()
	onsite.IsRemote = false

	assert.True(t, search.MatchesLocation(onsite, ""))
	assert.True(t, search.MatchesLocation(onsite, "san francisco"))
	assert.True(t, search.MatchesLocation(onsite, "Francisco"))
	assert.False(t, search.MatchesLocation(onsite, "new york"))
	assert.False(t, search.MatchesLocation(onsite, "remote"))

	remote := sampleJob()
	assert.True(t, search.MatchesLocation(remote, "remote"))
	assert.True(t, search.MatchesLocation(remote, "Remote only"))
	assert.False(t, search.MatchesLocation(remote, "new york"))
}
