package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ndishimyeemilien/job-connect/internal/model"
	"github.com/ndishimyeemilien/job-connect/internal/service"
	"github.com/ndishimyeemilien/job-connect/internal/util"
	"gorm.io/gorm"
)

type applicationRepository interface {
	CreateApplication(app *model.Application) error
	UpdateApplication(app *model.Application) error
	FindApplicationByID(id string) (*model.Application, error)
	FindApplicationsByJobID(jobID string) ([]model.Application, error)
	FindApplicationsByUserID(userID string) ([]model.Application, error)
}

type jobFinder interface {
	FindJobByID(id string) (*model.Job, error)
}

// SubmitState tracks a submission attempt through the apply workflow.
type SubmitState string

const (
	StateIdle       SubmitState = "idle"
	StateValidating SubmitState = "validating"
	StateUploading  SubmitState = "uploading"
	StateCreating   SubmitState = "creating"
	StateSucceeded  SubmitState = "succeeded"
	StateFailed     SubmitState = "failed"
)

const maxResumeSize = 5 * 1024 * 1024 // 5 MiB

var allowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// ResumeUpload is the handler-agnostic view of the uploaded file.
type ResumeUpload struct {
	Filename    string
	Size        int64
	ContentType string
	Content     io.Reader
}

type SubmitApplicationInput struct {
	JobID       string
	UserID      string
	CoverLetter string
	Resume      *ResumeUpload
}

// SubmitResult reports the terminal state of a submission attempt. On failure
// FailedDuring records the stage that broke.
type SubmitResult struct {
	Application  *model.Application
	State        SubmitState
	FailedDuring SubmitState
}

// ApplicationUsecase runs the apply workflow
// (Validating → Uploading → Creating) and the employer-side status moves.
type ApplicationUsecase struct {
	appRepo applicationRepository
	jobRepo jobFinder
	storage service.StorageServiceInterface

	// OnSubmitted, when set, runs after a submission succeeds.
	OnSubmitted func(app *model.Application)

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewApplicationUsecase(appRepo applicationRepository, jobRepo jobFinder, storage service.StorageServiceInterface) *ApplicationUsecase {
	return &ApplicationUsecase{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		storage:  storage,
		inFlight: make(map[string]struct{}),
	}
}

// Submit walks one application attempt through the workflow. There are no
// retries: any failure is terminal for the attempt and the user re-triggers
// from scratch. A second submission for the same job and user while one is in
// flight is rejected outright.
func (uc *ApplicationUsecase) Submit(ctx context.Context, in SubmitApplicationInput) (*SubmitResult, error) {
	key := in.JobID + ":" + in.UserID
	if !uc.begin(key) {
		return &SubmitResult{State: StateFailed, FailedDuring: StateIdle},
			util.NewValidationError("an application for this job is already in progress", nil)
	}
	defer uc.end(key)

	// Validating
	if err := validateResume(in.Resume); err != nil {
		return &SubmitResult{State: StateFailed, FailedDuring: StateValidating}, err
	}

	// Uploading
	ext := filepath.Ext(in.Resume.Filename)
	objectKey := fmt.Sprintf("resumes/%s%s", uuid.NewString(), ext)
	resumeURL, err := uc.storage.Upload(ctx, objectKey, in.Resume.ContentType, in.Resume.Content, in.Resume.Size)
	if err != nil {
		return &SubmitResult{State: StateFailed, FailedDuring: StateUploading},
			util.NewTransientError("resume upload", err)
	}

	// Creating
	job, err := uc.jobRepo.FindJobByID(in.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &SubmitResult{State: StateFailed, FailedDuring: StateCreating},
				util.NewNotFoundError("job", in.JobID)
		}
		return &SubmitResult{State: StateFailed, FailedDuring: StateCreating},
			util.NewTransientError("job lookup", err)
	}
	if !job.IsActive() {
		return &SubmitResult{State: StateFailed, FailedDuring: StateCreating},
			util.NewNotFoundError("job", in.JobID)
	}

	app := &model.Application{
		ID:          uuid.New(),
		JobID:       job.ID,
		UserID:      in.UserID,
		ResumeURL:   resumeURL,
		CoverLetter: in.CoverLetter,
		AppliedDate: time.Now(),
		Status:      model.ApplicationPending,
	}
	if err := uc.appRepo.CreateApplication(app); err != nil {
		return &SubmitResult{State: StateFailed, FailedDuring: StateCreating},
			util.NewTransientError("create application", err)
	}

	if uc.OnSubmitted != nil {
		uc.OnSubmitted(app)
	}
	return &SubmitResult{Application: app, State: StateSucceeded}, nil
}

func validateResume(r *ResumeUpload) error {
	if r == nil || r.Content == nil {
		return util.NewValidationError("resume file is required", nil)
	}
	if r.Size > maxResumeSize {
		return util.NewValidationError("resume file size is too large (max 5MB)", nil)
	}
	if !allowedResumeTypes[r.ContentType] {
		return util.NewValidationError("only PDF, DOC and DOCX files are allowed", nil)
	}
	return nil
}

func (uc *ApplicationUsecase) begin(key string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, busy := uc.inFlight[key]; busy {
		return false
	}
	uc.inFlight[key] = struct{}{}
	return true
}

func (uc *ApplicationUsecase) end(key string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inFlight, key)
}

func (uc *ApplicationUsecase) GetApplicationsForJob(jobID string) ([]model.Application, error) {
	if _, err := uc.jobRepo.FindJobByID(jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("job", jobID)
		}
		return nil, err
	}
	return uc.appRepo.FindApplicationsByJobID(jobID)
}

func (uc *ApplicationUsecase) GetApplicationsForUser(userID string) ([]model.Application, error) {
	return uc.appRepo.FindApplicationsByUserID(userID)
}

// UpdateStatus moves an application along the employer review pipeline,
// enforcing the allowed-transition table.
func (uc *ApplicationUsecase) UpdateStatus(id, status string) (*model.Application, error) {
	next, err := model.ParseApplicationStatus(status)
	if err != nil {
		return nil, util.NewValidationError(err.Error(), nil)
	}

	app, err := uc.appRepo.FindApplicationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("application", id)
		}
		return nil, err
	}

	if !model.CanTransition(app.Status, next) {
		return nil, util.NewValidationError(
			fmt.Sprintf("cannot move application from %s to %s", app.Status, next), nil)
	}

	app.Status = next
	if err := uc.appRepo.UpdateApplication(app); err != nil {
		return nil, util.NewTransientError("update application", err)
	}
	return app, nil
}
