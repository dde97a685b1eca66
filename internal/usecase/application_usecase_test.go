package usecase_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/ndishimyeemilien/job-connect/internal/model"
	"github.com/ndishimyeemilien/job-connect/internal/usecase"
	"github.com/ndishimyeemilien/job-connect/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeJobFinder struct {
	jobs map[string]*model.Job
}

func (f *fakeJobFinder) FindJobByID(id string) (*model.Job, error) {
	if j, ok := f.jobs[id]; ok {
		return j, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeStorage struct {
	mu      sync.Mutex
	keys    []string
	err     error
	block   chan struct{} // when set, Upload waits until closed
	started chan struct{} // closed when the first Upload begins
}

func (f *fakeStorage) Upload(_ context.Context, key, _ string, _ io.Reader, _ int64) (string, error) {
	f.mu.Lock()
	if f.started != nil {
		close(f.started)
		f.started = nil
	}
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if f.err != nil {
		return "", f.err
	}

	f.mu.Lock()
	f.keys = append(f.keys, key)
	f.mu.Unlock()
	return "https://storage.example.com/" + key, nil
}

func (f *fakeStorage) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.keys)
}

type fakeAppRepo struct {
	created   []*model.Application
	createErr error
	byID      map[string]*model.Application
}

func (f *fakeAppRepo) CreateApplication(app *model.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, app)
	return nil
}

func (f *fakeAppRepo) UpdateApplication(app *model.Application) error {
	return nil
}

func (f *fakeAppRepo) FindApplicationByID(id string) (*model.Application, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAppRepo) FindApplicationsByJobID(jobID string) ([]model.Application, error) {
	var out []model.Application
	for _, a := range f.created {
		if a.JobID.String() == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppRepo) FindApplicationsByUserID(userID string) ([]model.Application, error) {
	var out []model.Application
	for _, a := range f.created {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func activeJob() *model.Job {
	return &model.Job{
		ID:     uuid.New(),
		Title:  "Backend Developer",
		Status: model.JobStatusActive,
	}
}

func pdfResume(size int64) *usecase.ResumeUpload {
	return &usecase.ResumeUpload{
		Filename:    "resume.pdf",
		Size:        size,
		ContentType: "application/pdf",
		Content:     strings.NewReader("%PDF-1.4"),
	}
}

func newWorkflow(job *model.Job) (*usecase.ApplicationUsecase, *fakeAppRepo, *fakeStorage) {
	jobs := map[string]*model.Job{}
	if job != nil {
		jobs[job.ID.String()] = job
	}
	appRepo := &fakeAppRepo{byID: map[string]*model.Application{}}
	storage := &fakeStorage{}
	uc := usecase.NewApplicationUsecase(appRepo, &fakeJobFinder{jobs: jobs}, storage)
	return uc, appRepo, storage
}

func TestSubmit_MissingResume(t *testing.T) {
	job := activeJob()
	uc, appRepo, storage := newWorkflow(job)

	result, err := uc.Submit(context.Background(), usecase.SubmitApplicationInput{
		JobID:  job.ID.String(),
		UserID: "user-1",
	})

	var verr *util.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, usecase.StateFailed, result.State)
	assert.Equal(t, usecase.StateValidating, result.FailedDuring)
	assert.Zero(t, storage.uploadCount(), "no upload should be attempted")
	assert.Empty(t, appRepo.created)
}

func TestSubmit_FileTooLarge(t *testing.T) {
	job := activeJob()
	uc, appRepo, storage := newWorkflow(job)

	result, err := uc.Submit(context.Background(), usecase.SubmitApplicationInput{
		JobID:  job.ID.String(),
		UserID: "user-1",
		Resume: pdfResume(6 * 1024 * 1024),
	})

	var verr *util.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "too large")
	assert.Equal(t, usecase.StateValidating, result.FailedDuring)
	assert.Zero(t, storage.uploadCount(), "no upload should be attempted")
	assert.Empty(t, appRepo.created)
}

func TestSubmit_WrongFileType(t *testing.T) {
	job := activeJob()
	uc, _, storage := newWorkflow(job)

	result, err := uc.Submit(context.Background(), usecase.SubmitApplicationInput{
		JobID:  job.ID.String(),
		UserID: "user-1",
		Resume: &usecase.ResumeUpload{
			Filename:    "photo.png",
			Size:        1024,
			ContentType: "image/png",
			Content:     strings.NewReader("png"),
		},
	})

	var verr *util.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, usecase.StateValidating, result.FailedDuring)
	assert.Zero(t, storage.uploadCount())
}

func TestSubmit_Success(t *testing.T) {
	job := activeJob()
	uc, appRepo, storage := newWorkflow(job)

	var notified *model.Application
	uc.OnSubmitted = func(a *model.Application) { notified = a }

	result, err := uc.Submit(context.Background(), usecase.SubmitApplicationInput{
		JobID:       job.ID.String(),
		UserID:      "user-1",
		CoverLetter: "I would be a great fit.",
		Resume:      pdfResume(1024 * 1024),
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.StateSucceeded, result.State)

	require.Len(t, appRepo.created, 1)
	app := appRepo.created[0]
	assert.Equal(t, job.ID, app.JobID)
	assert.Equal(t, "user-1", app.UserID)
	assert.Equal(t, "I would be a great fit.", app.CoverLetter)
	assert.Equal(t, model.ApplicationPending, app.Status)
	assert.NotEmpty(t, app.ResumeURL)

	require.Equal(t, 1, storage.uploadCount())
	assert.True(t, strings.HasPrefix(storage.keys[0], "resumes/"))
	assert.True(t, strings.HasSuffix(storage.keys[0], ".pdf"))

	require.NotNil(t, notified)
	assert.Equal(t, app.ID, notified.ID)
}

func TestSubmit_ClosedJob(t *testing.T) {
	job := activeJob()
	job.Status = model.JobStatusClosed
	uc, appRepo, _ := newWorkflow(job)

	result, err := uc.Submit(context.Background(), usecase.SubmitApplicationInput{
		JobID:  job.ID.String(),
		UserID: "user-1",
		Resume: pdfResume(1024),
	})

	var nfe *util.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, usecase.StateCreating, result.FailedDuring)
	assert.Empty(t, appRepo.created, "no application record should be created")
}

func TestSubmit_UnknownJob(t *testing.T) {
	uc, appRepo, _ := newWorkflow(nil)

	_, err := uc.Submit(context.Background(), usecase.SubmitApplicationInput{
		JobID:  uuid.NewString(),
		UserID: "user-1",
		Resume: pdfResume(1024),
	})

	var nfe *util.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Empty(t, appRepo.created)
}

func TestSubmit_UploadFailure(t *testing.T) {
	job := activeJob()
	uc, appRepo, storage := newWorkflow(job)
	storage.err = fmt.Errorf("connection reset")

	result, err := uc.Submit(context.Background(), usecase.SubmitApplicationInput{
		JobID:  job.ID.String(),
		UserID: "user-1",
		Resume: pdfResume(1024),
	})

	var terr *util.TransientError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, usecase.StateUploading, result.FailedDuring)
	assert.Empty(t, appRepo.created)
}

func TestSubmit_RejectsConcurrentDuplicate(t *testing.T) {
	job := activeJob()
	uc, appRepo, storage := newWorkflow(job)

	storage.block = make(chan struct{})
	storage.started = make(chan struct{})
	started := storage.started

	done := make(chan error, 1)
	go func() {
		_, err := uc.Submit(context.Background(), usecase.SubmitApplicationInput{
			JobID:  job.ID.String(),
			UserID: "user-1",
			Resume: pdfResume(1024),
		})
		done <- err
	}()

	// Wait until the first submission is mid-upload, then try again.
	<-started
	_, err := uc.Submit(context.Background(), usecase.SubmitApplicationInput{
		JobID:  job.ID.String(),
		UserID: "user-1",
		Resume: pdfResume(1024),
	})
	var verr *util.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "already in progress")

	close(storage.block)
	require.NoError(t, <-done)
	assert.Len(t, appRepo.created, 1, "only the first submission should go through")
}

func TestUpdateStatus(t *testing.T) {
	job := activeJob()
	uc, appRepo, _ := newWorkflow(job)

	app := &model.Application{
		ID:     uuid.New(),
		JobID:  job.ID,
		UserID: "user-1",
		Status: model.ApplicationPending,
	}
	appRepo.byID[app.ID.String()] = app

	updated, err := uc.UpdateStatus(app.ID.String(), "reviewing")
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationReviewing, updated.Status)

	// Skipping straight to offered is not allowed from reviewing.
	_, err = uc.UpdateStatus(app.ID.String(), "offered")
	var verr *util.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = uc.UpdateStatus(app.ID.String(), "ghosted")
	require.ErrorAs(t, err, &verr)

	_, err = uc.UpdateStatus(uuid.NewString(), "reviewing")
	var nfe *util.NotFoundError
	require.ErrorAs(t, err, &nfe)
}

func TestGetApplicationsForJob_UnknownJob(t *testing.T) {
	uc, _, _ := newWorkflow(nil)

	_, err := uc.GetApplicationsForJob(uuid.NewString())
	var nfe *util.NotFoundError
	require.ErrorAs(t, err, &nfe)
}
