package repository

import (
	"github.com/ndishimyeemilien/job-connect/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

func (r *ApplicationRepository) CreateApplication(app *model.Application) error {
	return r.db.Create(app).Error
}

func (r *ApplicationRepository) UpdateApplication(app *model.Application) error {
	return r.db.Save(app).Error
}

func (r *ApplicationRepository) FindApplicationByID(id string) (*model.Application, error) {
	var app model.Application
	err := r.db.First(&app, "id = ?", id).Error
	return &app, err
}

func (r *ApplicationRepository) FindApplicationsByJobID(jobID string) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Order("applied_date DESC").Find(&apps, "job_id = ?", jobID).Error
	return apps, err
}

func (r *ApplicationRepository) FindApplicationsByUserID(userID string) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Order("applied_date DESC").Find(&apps, "user_id = ?", userID).Error
	return apps, err
}
