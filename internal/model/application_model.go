package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewing   ApplicationStatus = "reviewing"
	ApplicationInterviewed ApplicationStatus = "interviewed"
	ApplicationOffered     ApplicationStatus = "offered"
	ApplicationAccepted    ApplicationStatus = "accepted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationWithdrawn   ApplicationStatus = "withdrawn"
)

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(s) {
	case ApplicationPending, ApplicationReviewing, ApplicationInterviewed,
		ApplicationOffered, ApplicationAccepted, ApplicationRejected, ApplicationWithdrawn:
		return ApplicationStatus(s), nil
	}
	return "", fmt.Errorf("invalid application status %q", s)
}

// allowedTransitions lists the forward moves an employer can make plus the
// reject/withdraw moves available from any non-terminal status.
var allowedTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending:     {ApplicationReviewing, ApplicationRejected, ApplicationWithdrawn},
	ApplicationReviewing:   {ApplicationInterviewed, ApplicationRejected, ApplicationWithdrawn},
	ApplicationInterviewed: {ApplicationOffered, ApplicationRejected, ApplicationWithdrawn},
	ApplicationOffered:     {ApplicationAccepted, ApplicationRejected, ApplicationWithdrawn},
}

// CanTransition reports whether an application may move from one status to
// another. Accepted, rejected and withdrawn are terminal.
func CanTransition(from, to ApplicationStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Application struct {
	ID          uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobID       uuid.UUID         `gorm:"type:uuid;index" json:"job_id"`
	UserID      string            `gorm:"type:varchar(255);index" json:"user_id"`
	ResumeURL   string            `gorm:"type:text" json:"resume_url"`
	CoverLetter string            `gorm:"type:text" json:"cover_letter"`
	AppliedDate time.Time         `json:"applied_date"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (a *Application) TableName() string {
	return "applications"
}
