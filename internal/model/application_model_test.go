package model_test

import (
	"testing"

	"github.com/ndishimyeemilien/job-connect/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestParseApplicationStatus(t *testing.T) {
	valid := []string{"pending", "reviewing", "interviewed", "offered", "accepted", "rejected", "withdrawn"}
	for _, s := range valid {
		got, err := model.ParseApplicationStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, s, string(got))
	}

	_, err := model.ParseApplicationStatus("ghosted")
	assert.Error(t, err)
	_, err = model.ParseApplicationStatus("")
	assert.Error(t, err)
}

func TestCanTransition_ForwardPipeline(t *testing.T) {
	cases := []struct {
		from model.ApplicationStatus
		to   model.ApplicationStatus
	}{
		{model.ApplicationPending, model.ApplicationReviewing},
		{model.ApplicationReviewing, model.ApplicationInterviewed},
		{model.ApplicationInterviewed, model.ApplicationOffered},
		{model.ApplicationOffered, model.ApplicationAccepted},
	}
	for _, c := range cases {
		assert.True(t, model.CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestCanTransition_RejectAndWithdrawFromAnyNonTerminal(t *testing.T) {
	nonTerminal := []model.ApplicationStatus{
		model.ApplicationPending,
		model.ApplicationReviewing,
		model.ApplicationInterviewed,
		model.ApplicationOffered,
	}
	for _, from := range nonTerminal {
		assert.True(t, model.CanTransition(from, model.ApplicationRejected), "%s -> rejected", from)
		assert.True(t, model.CanTransition(from, model.ApplicationWithdrawn), "%s -> withdrawn", from)
	}
}

func TestCanTransition_TerminalStatesAreFinal(t *testing.T) {
	terminal := []model.ApplicationStatus{
		model.ApplicationAccepted,
		model.ApplicationRejected,
		model.ApplicationWithdrawn,
	}
	all := []model.ApplicationStatus{
		model.ApplicationPending,
		model.ApplicationReviewing,
		model.ApplicationInterviewed,
		model.ApplicationOffered,
		model.ApplicationAccepted,
		model.ApplicationRejected,
		model.ApplicationWithdrawn,
	}
	for _, from := range terminal {
		for _, to := range all {
			assert.False(t, model.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestCanTransition_NoSkippingStages(t *testing.T) {
	assert.False(t, model.CanTransition(model.ApplicationPending, model.ApplicationInterviewed))
	assert.False(t, model.CanTransition(model.ApplicationPending, model.ApplicationOffered))
	assert.False(t, model.CanTransition(model.ApplicationReviewing, model.ApplicationAccepted))
	// No moving backwards either.
	assert.False(t, model.CanTransition(model.ApplicationInterviewed, model.ApplicationPending))
}
