package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"halodkm-be-svc/internal/apperrors"
	"halodkm-be-svc/internal/models"
	"halodkm-be-svc/internal/repository"
	"halodkm-be-svc/pkg/logger"
)

// InfoRequest carries an announcement payload
type InfoRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
	Tanggal  string `json:"tanggal" binding:"required"`
}

// InfoService defines the public announcement business operations
type InfoService interface {
	GetAll() ([]models.InfoPublik, error)
	Create(actor *models.User, req *InfoRequest) (*models.InfoPublik, error)
	Update(actor *models.User, id uint, req *InfoRequest) error
	Delete(actor *models.User, id uint) error
}

// infoService implements InfoService
type infoService struct {
	infoRepo repository.InfoRepository
	auditSvc AuditService
	logger   *logger.Logger
}

// NewInfoService creates a new info service
func NewInfoService(infoRepo repository.InfoRepository, auditSvc AuditService, logger *logger.Logger) InfoService {
	return &infoService{
		infoRepo: infoRepo,
		auditSvc: auditSvc,
		logger:   logger,
	}
}

func validateInfoRequest(req *InfoRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return apperrors.NewValidation("title harus diisi")
	}
	if strings.TrimSpace(req.Content) == "" {
		return apperrors.NewValidation("content harus diisi")
	}
	switch req.Category {
	case models.InfoCategoryKegiatanMasjid, models.InfoCategoryKegiatanDusun, models.InfoCategoryPengumuman:
		return nil
	}
	return apperrors.NewValidation("category tidak valid")
}

// GetAll lists announcements, newest first
func (s *infoService) GetAll() ([]models.InfoPublik, error) {
	return s.infoRepo.GetAll()
}

// Create publishes an announcement
func (s *infoService) Create(actor *models.User, req *InfoRequest) (*models.InfoPublik, error) {
	if err := validateInfoRequest(req); err != nil {
		return nil, err
	}
	tanggal, err := parseTanggal(req.Tanggal)
	if err != nil {
		return nil, apperrors.NewValidation("tanggal tidak valid")
	}

	info := &models.InfoPublik{
		Title:    strings.TrimSpace(req.Title),
		Content:  req.Content,
		Category: req.Category,
		Tanggal:  tanggal,
	}
	if actor != nil {
		info.CreatedBy = actor.FullName
	}

	if err := s.infoRepo.Create(info); err != nil {
		return nil, err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Mempublikasikan informasi: %s", info.Title), "info_publik", info.ID)
	return info, nil
}

// Update edits an announcement
func (s *infoService) Update(actor *models.User, id uint, req *InfoRequest) error {
	if err := validateInfoRequest(req); err != nil {
		return err
	}
	tanggal, err := parseTanggal(req.Tanggal)
	if err != nil {
		return apperrors.NewValidation("tanggal tidak valid")
	}

	info, err := s.infoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("informasi tidak ditemukan")
		}
		return err
	}

	info.Title = strings.TrimSpace(req.Title)
	info.Content = req.Content
	info.Category = req.Category
	info.Tanggal = tanggal

	if err := s.infoRepo.Update(info); err != nil {
		return err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Mengubah informasi: %s", info.Title), "info_publik", info.ID)
	return nil
}

// Delete removes an announcement
func (s *infoService) Delete(actor *models.User, id uint) error {
	if err := s.infoRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("informasi tidak ditemukan")
		}
		return err
	}

	s.auditSvc.Record(actor, "Menghapus informasi", "info_publik", id)
	return nil
}
