package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ndishimyeemilien/job-connect/internal/dto"
	"github.com/ndishimyeemilien/job-connect/internal/model"
	"github.com/ndishimyeemilien/job-connect/internal/search"
	"github.com/ndishimyeemilien/job-connect/internal/service"
	"github.com/ndishimyeemilien/job-connect/internal/util"
	"gorm.io/gorm"
)

type jobRepository interface {
	CreateJob(job *model.Job) error
	UpdateJob(job *model.Job) error
	FindJobByID(id string) (*model.Job, error)
	GetJobs() ([]model.Job, error)
}

// JobUsecase owns the job record store: a read-only in-memory snapshot the
// query engine filters over, backed by Postgres. The snapshot is loaded once
// at startup and refreshed on employer writes.
type JobUsecase struct {
	jobRepo jobRepository
	feed    service.JobFeedServiceInterface

	mu   sync.RWMutex
	jobs []model.Job
}

func NewJobUsecase(jobRepo jobRepository, feed service.JobFeedServiceInterface) *JobUsecase {
	return &JobUsecase{jobRepo: jobRepo, feed: feed}
}

// LoadJobs populates the snapshot: existing rows win, then a configured
// remote feed, then the embedded seed postings. Feed or seed jobs are
// persisted so later runs take the database path.
func (uc *JobUsecase) LoadJobs(ctx context.Context) error {
	jobs, err := uc.jobRepo.GetJobs()
	if err != nil {
		return err
	}

	if len(jobs) == 0 && uc.feed != nil {
		jobs, err = uc.feed.FetchJobs(ctx)
		if err != nil {
			log.Printf("job feed unavailable, falling back to seed data: %v", err)
			jobs = nil
		}
		for i := range jobs {
			if err := uc.jobRepo.CreateJob(&jobs[i]); err != nil {
				return err
			}
		}
	}

	if len(jobs) == 0 {
		jobs = seedJobs(time.Now())
		for i := range jobs {
			if err := uc.jobRepo.CreateJob(&jobs[i]); err != nil {
				return err
			}
		}
	}

	uc.mu.Lock()
	uc.jobs = jobs
	uc.mu.Unlock()
	log.Printf("job store loaded with %d postings", len(jobs))
	return nil
}

// SearchJobs runs the query engine over the snapshot. Pure read; calling it
// twice with the same inputs yields the same result.
func (uc *JobUsecase) SearchJobs(query, location string, criteria search.Criteria) []model.Job {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return search.Query(uc.jobs, query, location, criteria, time.Now())
}

func (uc *JobUsecase) GetJobByID(id string) (*model.Job, error) {
	job, err := uc.jobRepo.FindJobByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("job", id)
		}
		return nil, err
	}
	return job, nil
}

func (uc *JobUsecase) CreateJob(req dto.CreateJobRequest) (*model.Job, error) {
	empType, err := model.ParseEmploymentType(req.EmploymentType)
	if err != nil {
		return nil, util.NewValidationError(err.Error(), nil)
	}
	expLevel, err := model.ParseExperienceLevel(req.ExperienceLevel)
	if err != nil {
		return nil, util.NewValidationError(err.Error(), nil)
	}

	job := &model.Job{
		ID:                  uuid.New(),
		Title:               req.Title,
		Company:             req.Company,
		Location:            req.Location,
		Description:         req.Description,
		EmploymentType:      empType,
		ExperienceLevel:     expLevel,
		Skills:              req.Skills,
		Salary:              req.Salary,
		PostedDate:          time.Now(),
		ApplicationDeadline: req.ApplicationDeadline,
		IsRemote:            req.IsRemote,
		Status:              model.JobStatusActive,
	}
	if err := uc.jobRepo.CreateJob(job); err != nil {
		return nil, util.NewTransientError("create job", err)
	}

	uc.mu.Lock()
	uc.jobs = append([]model.Job{*job}, uc.jobs...)
	uc.mu.Unlock()
	return job, nil
}

func (uc *JobUsecase) UpdateJob(id string, req dto.UpdateJobRequest) (*model.Job, error) {
	job, err := uc.GetJobByID(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.EmploymentType != nil {
		empType, err := model.ParseEmploymentType(*req.EmploymentType)
		if err != nil {
			return nil, util.NewValidationError(err.Error(), nil)
		}
		job.EmploymentType = empType
	}
	if req.ExperienceLevel != nil {
		expLevel, err := model.ParseExperienceLevel(*req.ExperienceLevel)
		if err != nil {
			return nil, util.NewValidationError(err.Error(), nil)
		}
		job.ExperienceLevel = expLevel
	}
	if req.Skills != nil {
		job.Skills = *req.Skills
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.ApplicationDeadline != nil {
		job.ApplicationDeadline = req.ApplicationDeadline
	}
	if req.IsRemote != nil {
		job.IsRemote = *req.IsRemote
	}
	if req.Status != nil {
		status, err := model.ParseJobStatus(*req.Status)
		if err != nil {
			return nil, util.NewValidationError(err.Error(), nil)
		}
		job.Status = status
	}

	if err := uc.jobRepo.UpdateJob(job); err != nil {
		return nil, util.NewTransientError("update job", err)
	}
	uc.replaceInSnapshot(*job)
	return job, nil
}

// CloseJob is the soft delete: the posting stays on record but stops
// accepting applications and disappears from active listings.
func (uc *JobUsecase) CloseJob(id string) error {
	job, err := uc.GetJobByID(id)
	if err != nil {
		return err
	}
	job.Status = model.JobStatusClosed
	if err := uc.jobRepo.UpdateJob(job); err != nil {
		return util.NewTransientError("close job", err)
	}
	uc.replaceInSnapshot(*job)
	return nil
}

func (uc *JobUsecase) replaceInSnapshot(job model.Job) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i := range uc.jobs {
		if uc.jobs[i].ID == job.ID {
			uc.jobs[i] = job
			return
		}
	}
	uc.jobs = append([]model.Job{job}, uc.jobs...)
}
