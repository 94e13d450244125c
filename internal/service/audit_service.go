package service

import (
	"halodkm-be-svc/internal/models"
	"halodkm-be-svc/internal/repository"
	"halodkm-be-svc/pkg/logger"
)

// AuditService records every mutating operation with actor identity
type AuditService interface {
	Record(actor *models.User, action, entity string, entityID uint)
	GetLogs(limit int) ([]models.AuditLog, error)
}

// auditService implements AuditService
type auditService struct {
	auditRepo repository.AuditRepository
	logger    *logger.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditRepository, logger *logger.Logger) AuditService {
	return &auditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Record appends an audit entry. Failures are logged but never fail the
// operation being audited.
func (s *auditService) Record(actor *models.User, action, entity string, entityID uint) {
	entry := &models.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	}
	if actor != nil {
		entry.UserID = actor.ID
		entry.Username = actor.Username
	}

	if err := s.auditRepo.Create(entry); err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"action": action,
			"entity": entity,
		}).Error("Failed to write audit log entry")
	}
}

// GetLogs retrieves the most recent audit entries
func (s *auditService) GetLogs(limit int) ([]models.AuditLog, error) {
	return s.auditRepo.GetAll(limit)
}
