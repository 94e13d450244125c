package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"halodkm-be-svc/internal/apperrors"
	"halodkm-be-svc/internal/models"
	"halodkm-be-svc/internal/models/response"
	"halodkm-be-svc/internal/repository"
	"halodkm-be-svc/pkg/logger"
)

// Directory lookup parameters
const (
	searchMinQueryLen = 2
	searchLimit       = 10
)

// PendudukKhususRequest carries an ad-hoc resident payload
type PendudukKhususRequest struct {
	NIK          string  `json:"nik" binding:"required"`
	Nama         string  `json:"nama" binding:"required"`
	JenisKelamin string  `json:"jenis_kelamin" binding:"required"`
	Alamat       *string `json:"alamat,omitempty"`
	NoHP         *string `json:"no_hp,omitempty"`
	Label        string  `json:"label" binding:"required"`
	Keterangan   *string `json:"keterangan,omitempty"`
}

// PendudukService defines the ad-hoc resident registry and the combined
// directory lookup used by the committee selector.
type PendudukService interface {
	GetAll() (*response.PendudukKhususListResponse, error)
	Create(actor *models.User, req *PendudukKhususRequest) (*models.PendudukKhusus, error)
	Update(actor *models.User, id uint, req *PendudukKhususRequest) error
	Delete(actor *models.User, id uint) error
	Search(query string) ([]response.PendudukSearchResult, error)
}

// pendudukService implements PendudukService
type pendudukService struct {
	pendudukRepo repository.PendudukRepository
	familyRepo   repository.FamilyRepository
	auditSvc     AuditService
	logger       *logger.Logger
}

// NewPendudukService creates a new penduduk service
func NewPendudukService(pendudukRepo repository.PendudukRepository, familyRepo repository.FamilyRepository, auditSvc AuditService, logger *logger.Logger) PendudukService {
	return &pendudukService{
		pendudukRepo: pendudukRepo,
		familyRepo:   familyRepo,
		auditSvc:     auditSvc,
		logger:       logger,
	}
}

func validateLabel(label string) error {
	switch label {
	case models.LabelKontrak, models.LabelPedagang, models.LabelWargaDusunLain:
		return nil
	}
	return apperrors.NewValidation("label harus kontrak, pedagang, atau warga_dusun_lain")
}

// GetAll lists ad-hoc residents with per-label counts
func (s *pendudukService) GetAll() (*response.PendudukKhususListResponse, error) {
	penduduk, err := s.pendudukRepo.GetAll()
	if err != nil {
		return nil, err
	}
	counts, err := s.pendudukRepo.LabelCounts()
	if err != nil {
		return nil, err
	}
	return &response.PendudukKhususListResponse{
		Data:        penduduk,
		LabelCounts: counts,
	}, nil
}

// Create registers an ad-hoc resident
func (s *pendudukService) Create(actor *models.User, req *PendudukKhususRequest) (*models.PendudukKhusus, error) {
	if strings.TrimSpace(req.Nama) == "" {
		return nil, apperrors.NewValidation("nama harus diisi")
	}
	if err := validateLabel(req.Label); err != nil {
		return nil, err
	}

	p := &models.PendudukKhusus{
		NIK:          strings.TrimSpace(req.NIK),
		Nama:         strings.TrimSpace(req.Nama),
		JenisKelamin: req.JenisKelamin,
		Alamat:       req.Alamat,
		NoHP:         req.NoHP,
		Label:        req.Label,
		Keterangan:   req.Keterangan,
	}
	if err := s.pendudukRepo.Create(p); err != nil {
		return nil, err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Menambah penduduk khusus: %s (%s)", p.Nama, p.Label), "penduduk_khusus", p.ID)
	return p, nil
}

// Update edits an ad-hoc resident
func (s *pendudukService) Update(actor *models.User, id uint, req *PendudukKhususRequest) error {
	if strings.TrimSpace(req.Nama) == "" {
		return apperrors.NewValidation("nama harus diisi")
	}
	if err := validateLabel(req.Label); err != nil {
		return err
	}

	p, err := s.pendudukRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("penduduk khusus tidak ditemukan")
		}
		return err
	}

	p.NIK = strings.TrimSpace(req.NIK)
	p.Nama = strings.TrimSpace(req.Nama)
	p.JenisKelamin = req.JenisKelamin
	p.Alamat = req.Alamat
	p.NoHP = req.NoHP
	p.Label = req.Label
	p.Keterangan = req.Keterangan

	if err := s.pendudukRepo.Update(p); err != nil {
		return err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Mengubah penduduk khusus: %s", p.Nama), "penduduk_khusus", p.ID)
	return nil
}

// Delete removes an ad-hoc resident
func (s *pendudukService) Delete(actor *models.User, id uint) error {
	if err := s.pendudukRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("penduduk khusus tidak ditemukan")
		}
		return err
	}

	s.auditSvc.Record(actor, "Menghapus penduduk khusus", "penduduk_khusus", id)
	return nil
}

// Search looks a name up in both resident directories. Directory failures
// degrade to an empty candidate list instead of failing the caller; the
// lookup is advisory and only prefills committee fields.
func (s *pendudukService) Search(query string) ([]response.PendudukSearchResult, error) {
	query = strings.TrimSpace(query)
	if len(query) < searchMinQueryLen {
		return []response.PendudukSearchResult{}, nil
	}

	results := []response.PendudukSearchResult{}

	members, err := s.familyRepo.SearchMembers(query, searchLimit)
	if err != nil {
		s.logger.WithError(err).Warn("Fixed-resident directory lookup failed")
	} else {
		for _, m := range members {
			results = append(results, response.PendudukSearchResult{
				ID:         m.ID,
				Nama:       m.Nama,
				NIK:        m.NIK,
				SourceType: models.PanitiaSourcePendudukTetap,
			})
		}
	}

	khusus, err := s.pendudukRepo.Search(query, searchLimit)
	if err != nil {
		s.logger.WithError(err).Warn("Ad-hoc resident directory lookup failed")
	} else {
		for _, p := range khusus {
			result := response.PendudukSearchResult{
				ID:         p.ID,
				Nama:       p.Nama,
				NIK:        p.NIK,
				SourceType: models.PanitiaSourcePendudukKhusus,
			}
			if p.NoHP != nil {
				result.NoHP = *p.NoHP
			}
			results = append(results, result)
		}
	}

	return results, nil
}
