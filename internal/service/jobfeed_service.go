package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/ndishimyeemilien/job-connect/internal/config"
	"github.com/ndishimyeemilien/job-connect/internal/model"
	"github.com/tidwall/gjson"
)

type JobFeedServiceInterface interface {
	FetchJobs(ctx context.Context) ([]model.Job, error)
}

// JobFeedService loads the initial job list once from a remote document
// endpoint. The feed is either a bare JSON array of postings or an object
// with a top-level "jobs" array.
type JobFeedService struct {
	client *resty.Client
	url    string
}

func NewJobFeedService() *JobFeedService {
	return &JobFeedService{
		client: resty.New().SetTimeout(30 * time.Second),
		url:    config.LoadJobFeedConfig().URL,
	}
}

func (s *JobFeedService) Enabled() bool {
	return s.url != ""
}

func (s *JobFeedService) FetchJobs(ctx context.Context) ([]model.Job, error) {
	if s.url == "" {
		return nil, fmt.Errorf("JOB_FEED_URL not set")
	}

	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job feed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("job feed returned %s", resp.Status())
	}

	body := resp.String()
	items := gjson.Get(body, "jobs")
	if !items.Exists() {
		items = gjson.Parse(body)
	}
	if !items.IsArray() {
		return nil, fmt.Errorf("job feed payload is not an array")
	}

	var jobs []model.Job
	for _, item := range items.Array() {
		job, err := parseFeedJob(item)
		if err != nil {
			// Skip malformed entries rather than failing the whole load.
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func parseFeedJob(item gjson.Result) (model.Job, error) {
	title := item.Get("title").String()
	company := item.Get("company").String()
	if title == "" || company == "" {
		return model.Job{}, fmt.Errorf("feed entry missing title or company")
	}

	id, err := uuid.Parse(item.Get("id").String())
	if err != nil {
		id = uuid.New()
	}

	empType, err := model.ParseEmploymentType(item.Get("employment_type").String())
	if err != nil {
		empType = model.EmploymentFullTime
	}
	expLevel, err := model.ParseExperienceLevel(item.Get("experience_level").String())
	if err != nil {
		expLevel = model.ExperienceMid
	}
	status, err := model.ParseJobStatus(item.Get("status").String())
	if err != nil {
		status = model.JobStatusActive
	}

	var skills []string
	for _, s := range item.Get("skills").Array() {
		skills = append(skills, s.String())
	}

	posted := parseFeedDate(item.Get("posted_date").String())
	var deadline *time.Time
	if d := item.Get("application_deadline").String(); d != "" {
		t := parseFeedDate(d)
		deadline = &t
	}

	return model.Job{
		ID:                  id,
		Title:               title,
		Company:             company,
		Location:            item.Get("location").String(),
		Description:         item.Get("description").String(),
		EmploymentType:      empType,
		ExperienceLevel:     expLevel,
		Skills:              skills,
		Salary:              item.Get("salary").String(),
		PostedDate:          posted,
		ApplicationDeadline: deadline,
		IsRemote:            item.Get("is_remote").Bool(),
		Status:              status,
	}, nil
}

func parseFeedDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}
