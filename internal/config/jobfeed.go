package config

import (
	"os"
	"sync"
)

type JobFeedConfig struct {
	URL string
}

var (
	jobFeedConfig *JobFeedConfig
	jobFeedOnce   sync.Once
)

func LoadJobFeedConfig() *JobFeedConfig {
	jobFeedOnce.Do(func() {
		jobFeedConfig = &JobFeedConfig{
			URL: os.Getenv("JOB_FEED_URL"),
		}
	})
	return jobFeedConfig
}
