package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/ndishimyeemilien/job-connect/internal/model"
)

type CreateJobRequest struct {
	Title               string     `json:"title" validate:"required"`
	Company             string     `json:"company" validate:"required"`
	Location            string     `json:"location" validate:"required"`
	Description         string     `json:"description" validate:"required"`
	EmploymentType      string     `json:"employment_type" validate:"required"`
	ExperienceLevel     string     `json:"experience_level" validate:"required"`
	Skills              []string   `json:"skills"`
	Salary              string     `json:"salary"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	IsRemote            bool       `json:"is_remote"`
}

type UpdateJobRequest struct {
	Title               *string    `json:"title"`
	Company             *string    `json:"company"`
	Location            *string    `json:"location"`
	Description         *string    `json:"description"`
	EmploymentType      *string    `json:"employment_type"`
	ExperienceLevel     *string    `json:"experience_level"`
	Skills              *[]string  `json:"skills"`
	Salary              *string    `json:"salary"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
	IsRemote            *bool      `json:"is_remote"`
	Status              *string    `json:"status"`
}

type JobDTO struct {
	ID                  uuid.UUID             `json:"id"`
	Title               string                `json:"title"`
	Company             string                `json:"company"`
	Location            string                `json:"location"`
	Description         string                `json:"description"`
	EmploymentType      model.EmploymentType  `json:"employment_type"`
	ExperienceLevel     model.ExperienceLevel `json:"experience_level"`
	Skills              []string              `json:"skills"`
	Salary              string                `json:"salary,omitempty"`
	PostedDate          time.Time             `json:"posted_date"`
	ApplicationDeadline *time.Time            `json:"application_deadline,omitempty"`
	IsRemote            bool                  `json:"is_remote"`
	Status              model.JobStatus       `json:"status"`
}

func NewJobDTO(job model.Job) JobDTO {
	return JobDTO{
		ID:                  job.ID,
		Title:               job.Title,
		Company:             job.Company,
		Location:            job.Location,
		Description:         job.Description,
		EmploymentType:      job.EmploymentType,
		ExperienceLevel:     job.ExperienceLevel,
		Skills:              job.Skills,
		Salary:              job.Salary,
		PostedDate:          job.PostedDate,
		ApplicationDeadline: job.ApplicationDeadline,
		IsRemote:            job.IsRemote,
		Status:              job.Status,
	}
}

func NewJobDTOs(jobs []model.Job) []JobDTO {
	out := make([]JobDTO, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobDTO(j))
	}
	return out
}
