package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
	EmploymentFreelance  EmploymentType = "freelance"
)

func ParseEmploymentType(s string) (EmploymentType, error) {
	switch EmploymentType(s) {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship, EmploymentFreelance:
		return EmploymentType(s), nil
	}
	return "", fmt.Errorf("invalid employment type %q", s)
}

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	switch ExperienceLevel(s) {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return ExperienceLevel(s), nil
	}
	return "", fmt.Errorf("invalid experience level %q", s)
}

type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

func ParseJobStatus(s string) (JobStatus, error) {
	switch JobStatus(s) {
	case JobStatusActive, JobStatusClosed, JobStatusDraft:
		return JobStatus(s), nil
	}
	return "", fmt.Errorf("invalid job status %q", s)
}

type Job struct {
	ID                  uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title               string          `gorm:"type:varchar(255)" json:"title"`
	Company             string          `gorm:"type:varchar(255)" json:"company"`
	Location            string          `gorm:"type:varchar(255)" json:"location"`
	Description         string          `gorm:"type:text" json:"description"`
	EmploymentType      EmploymentType  `gorm:"type:varchar(20)" json:"employment_type"`
	ExperienceLevel     ExperienceLevel `gorm:"type:varchar(20)" json:"experience_level"`
	Skills              []string        `gorm:"serializer:json" json:"skills"`
	Salary              string          `gorm:"type:varchar(100)" json:"salary"` // free text, e.g. "$100,000 - $130,000"
	PostedDate          time.Time       `json:"posted_date"`
	ApplicationDeadline *time.Time      `json:"application_deadline,omitempty"`
	IsRemote            bool            `json:"is_remote"`
	Status              JobStatus       `gorm:"type:varchar(20);default:'active'" json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}

func (j *Job) IsActive() bool {
	return j.Status == JobStatusActive
}
