package repository

import (
	"halodkm-be-svc/internal/models"

	"gorm.io/gorm"
)

// SchedulerLogRepository defines the interface for scheduler run logging
type SchedulerLogRepository interface {
	Create(entry *models.SchedulerLog) error
}

// schedulerLogRepository implements SchedulerLogRepository
type schedulerLogRepository struct {
	db *gorm.DB
}

// NewSchedulerLogRepository creates a new instance of SchedulerLogRepository
func NewSchedulerLogRepository(db *gorm.DB) SchedulerLogRepository {
	return &schedulerLogRepository{db: db}
}

// Create appends a scheduler log entry
func (r *schedulerLogRepository) Create(entry *models.SchedulerLog) error {
	return r.db.Create(entry).Error
}
