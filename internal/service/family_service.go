package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"halodkm-be-svc/internal/apperrors"
	"halodkm-be-svc/internal/models"
	"halodkm-be-svc/internal/repository"
	"halodkm-be-svc/pkg/logger"
)

// FamilyRequest carries a family create/update payload
type FamilyRequest struct {
	NoKK           string  `json:"no_kk" binding:"required"`
	KepalaKeluarga string  `json:"kepala_keluarga" binding:"required"`
	RT             string  `json:"rt" binding:"required"`
	Alamat         *string `json:"alamat,omitempty"`
	NoHP           *string `json:"no_hp,omitempty"`
}

// FamilyMemberRequest carries a member create/update payload
type FamilyMemberRequest struct {
	NIK          string `json:"nik" binding:"required"`
	Nama         string `json:"nama" binding:"required"`
	Hubungan     string `json:"hubungan" binding:"required"`
	JenisKelamin string `json:"jenis_kelamin" binding:"required"`
	TanggalLahir string `json:"tanggal_lahir,omitempty"`
}

// FamilyDetail bundles a family with its members
type FamilyDetail struct {
	Family  models.Family         `json:"family"`
	Members []models.FamilyMember `json:"members"`
}

// FamilyService defines the family registry business operations
type FamilyService interface {
	GetFamilies(rt string) ([]*repository.FamilyWithCount, error)
	GetFamily(id uint) (*FamilyDetail, error)
	CreateFamily(actor *models.User, req *FamilyRequest) (*models.Family, error)
	UpdateFamily(actor *models.User, id uint, req *FamilyRequest) error
	DeleteFamily(actor *models.User, id uint) error

	GetMembers(familyID uint) ([]models.FamilyMember, error)
	AddMember(actor *models.User, familyID uint, req *FamilyMemberRequest) (*models.FamilyMember, error)
	UpdateMember(actor *models.User, familyID, memberID uint, req *FamilyMemberRequest) error
	DeleteMember(actor *models.User, familyID, memberID uint) error
}

// familyService implements FamilyService
type familyService struct {
	familyRepo repository.FamilyRepository
	auditSvc   AuditService
	logger     *logger.Logger
}

// NewFamilyService creates a new family service
func NewFamilyService(familyRepo repository.FamilyRepository, auditSvc AuditService, logger *logger.Logger) FamilyService {
	return &familyService{
		familyRepo: familyRepo,
		auditSvc:   auditSvc,
		logger:     logger,
	}
}

func (s *familyService) getFamily(id uint) (*models.Family, error) {
	family, err := s.familyRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("keluarga tidak ditemukan")
		}
		return nil, err
	}
	return family, nil
}

// GetFamilies lists families with member counts, optionally filtered by RT
func (s *familyService) GetFamilies(rt string) ([]*repository.FamilyWithCount, error) {
	return s.familyRepo.GetAll(rt)
}

// GetFamily returns one family with all its members
func (s *familyService) GetFamily(id uint) (*FamilyDetail, error) {
	family, err := s.getFamily(id)
	if err != nil {
		return nil, err
	}
	members, err := s.familyRepo.GetMembers(id)
	if err != nil {
		return nil, err
	}
	return &FamilyDetail{Family: *family, Members: members}, nil
}

func validateFamilyRequest(req *FamilyRequest) error {
	if strings.TrimSpace(req.NoKK) == "" {
		return apperrors.NewValidation("no_kk harus diisi")
	}
	if strings.TrimSpace(req.KepalaKeluarga) == "" {
		return apperrors.NewValidation("kepala_keluarga harus diisi")
	}
	if strings.TrimSpace(req.RT) == "" {
		return apperrors.NewValidation("rt harus diisi")
	}
	return nil
}

// CreateFamily registers a new family card
func (s *familyService) CreateFamily(actor *models.User, req *FamilyRequest) (*models.Family, error) {
	if err := validateFamilyRequest(req); err != nil {
		return nil, err
	}

	family := &models.Family{
		NoKK:           strings.TrimSpace(req.NoKK),
		KepalaKeluarga: strings.TrimSpace(req.KepalaKeluarga),
		RT:             strings.TrimSpace(req.RT),
		Alamat:         req.Alamat,
		NoHP:           req.NoHP,
	}
	if err := s.familyRepo.Create(family); err != nil {
		return nil, err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Menambah keluarga: %s", family.KepalaKeluarga), "family", family.ID)
	return family, nil
}

// UpdateFamily edits an existing family card
func (s *familyService) UpdateFamily(actor *models.User, id uint, req *FamilyRequest) error {
	if err := validateFamilyRequest(req); err != nil {
		return err
	}

	family, err := s.getFamily(id)
	if err != nil {
		return err
	}

	family.NoKK = strings.TrimSpace(req.NoKK)
	family.KepalaKeluarga = strings.TrimSpace(req.KepalaKeluarga)
	family.RT = strings.TrimSpace(req.RT)
	family.Alamat = req.Alamat
	family.NoHP = req.NoHP

	if err := s.familyRepo.Update(family); err != nil {
		return err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Mengubah keluarga: %s", family.KepalaKeluarga), "family", family.ID)
	return nil
}

// DeleteFamily removes a family together with its members
func (s *familyService) DeleteFamily(actor *models.User, id uint) error {
	family, err := s.getFamily(id)
	if err != nil {
		return err
	}

	if err := s.familyRepo.Delete(id); err != nil {
		return err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Menghapus keluarga: %s", family.KepalaKeluarga), "family", id)
	return nil
}

// GetMembers lists the members of a family
func (s *familyService) GetMembers(familyID uint) ([]models.FamilyMember, error) {
	if _, err := s.getFamily(familyID); err != nil {
		return nil, err
	}
	return s.familyRepo.GetMembers(familyID)
}

func validateMemberRequest(req *FamilyMemberRequest) (*time.Time, error) {
	if strings.TrimSpace(req.NIK) == "" {
		return nil, apperrors.NewValidation("nik harus diisi")
	}
	if strings.TrimSpace(req.Nama) == "" {
		return nil, apperrors.NewValidation("nama harus diisi")
	}
	if req.TanggalLahir == "" {
		return nil, nil
	}
	tanggalLahir, err := parseTanggal(req.TanggalLahir)
	if err != nil {
		return nil, apperrors.NewValidation("tanggal_lahir tidak valid")
	}
	return &tanggalLahir, nil
}

// AddMember registers a member under a family
func (s *familyService) AddMember(actor *models.User, familyID uint, req *FamilyMemberRequest) (*models.FamilyMember, error) {
	family, err := s.getFamily(familyID)
	if err != nil {
		return nil, err
	}
	tanggalLahir, err := validateMemberRequest(req)
	if err != nil {
		return nil, err
	}

	member := &models.FamilyMember{
		FamilyID:     familyID,
		NIK:          strings.TrimSpace(req.NIK),
		Nama:         strings.TrimSpace(req.Nama),
		Hubungan:     req.Hubungan,
		JenisKelamin: req.JenisKelamin,
		TanggalLahir: tanggalLahir,
	}
	if err := s.familyRepo.CreateMember(member); err != nil {
		return nil, err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Menambah anggota keluarga %s: %s", family.KepalaKeluarga, member.Nama), "family_member", member.ID)
	return member, nil
}

// UpdateMember edits a member of a family
func (s *familyService) UpdateMember(actor *models.User, familyID, memberID uint, req *FamilyMemberRequest) error {
	family, err := s.getFamily(familyID)
	if err != nil {
		return err
	}
	tanggalLahir, err := validateMemberRequest(req)
	if err != nil {
		return err
	}

	member, err := s.familyRepo.GetMemberByID(familyID, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("anggota keluarga tidak ditemukan")
		}
		return err
	}

	member.NIK = strings.TrimSpace(req.NIK)
	member.Nama = strings.TrimSpace(req.Nama)
	member.Hubungan = req.Hubungan
	member.JenisKelamin = req.JenisKelamin
	member.TanggalLahir = tanggalLahir

	if err := s.familyRepo.UpdateMember(member); err != nil {
		return err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Mengubah anggota keluarga %s: %s", family.KepalaKeluarga, member.Nama), "family_member", member.ID)
	return nil
}

// DeleteMember removes a member of a family
func (s *familyService) DeleteMember(actor *models.User, familyID, memberID uint) error {
	family, err := s.getFamily(familyID)
	if err != nil {
		return err
	}

	if err := s.familyRepo.DeleteMember(familyID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("anggota keluarga tidak ditemukan")
		}
		return err
	}

	s.auditSvc.Record(actor, fmt.Sprintf("Menghapus anggota keluarga %s", family.KepalaKeluarga), "family_member", memberID)
	return nil
}
