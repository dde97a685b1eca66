package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/ndishimyeemilien/job-connect/internal/model"
)

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ApplicationDTO struct {
	ID          uuid.UUID               `json:"id"`
	JobID       uuid.UUID               `json:"job_id"`
	UserID      string                  `json:"user_id"`
	ResumeURL   string                  `json:"resume_url"`
	CoverLetter string                  `json:"cover_letter,omitempty"`
	AppliedDate time.Time               `json:"applied_date"`
	Status      model.ApplicationStatus `json:"status"`
}

func NewApplicationDTO(app model.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:          app.ID,
		JobID:       app.JobID,
		UserID:      app.UserID,
		ResumeURL:   app.ResumeURL,
		CoverLetter: app.CoverLetter,
		AppliedDate: app.AppliedDate,
		Status:      app.Status,
	}
}

func NewApplicationDTOs(apps []model.Application) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewApplicationDTO(a))
	}
	return out
}
