package repository

import (
	"halodkm-be-svc/internal/models"

	"gorm.io/gorm"
)

// AuditRepository defines the interface for the append-only audit log
type AuditRepository interface {
	Create(entry *models.AuditLog) error
	GetAll(limit int) ([]models.AuditLog, error)
}

// auditRepository implements AuditRepository
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new instance of AuditRepository
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

// Create appends an audit entry
func (r *auditRepository) Create(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// GetAll retrieves the most recent audit entries
func (r *auditRepository) GetAll(limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = 200
	}
	var entries []models.AuditLog
	if err := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
