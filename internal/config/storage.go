package config

import (
	"os"
	"sync"
	"time"
)

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	URLExpiry time.Duration
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		bucket := os.Getenv("STORAGE_BUCKET")
		if bucket == "" {
			bucket = "resumes"
		}
		expiry := 24 * time.Hour
		if v := os.Getenv("STORAGE_URL_EXPIRY"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				expiry = d
			}
		}
		storageConfig = &StorageConfig{
			Endpoint:  os.Getenv("STORAGE_ENDPOINT"),
			AccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
			SecretKey: os.Getenv("STORAGE_SECRET_KEY"),
			Bucket:    bucket,
			UseSSL:    os.Getenv("STORAGE_USE_SSL") == "true",
			URLExpiry: expiry,
		}
	})
	return storageConfig
}
