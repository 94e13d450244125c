package repository

import (
	"halodkm-be-svc/internal/models"

	"gorm.io/gorm"
)

// FamilyWithCount is a family row with its member count attached
type FamilyWithCount struct {
	models.Family
	MemberCount int64 `json:"member_count"`
}

// FamilyRepository defines the interface for family registry data operations
type FamilyRepository interface {
	GetAll(rt string) ([]*FamilyWithCount, error)
	GetByID(id uint) (*models.Family, error)
	Create(family *models.Family) error
	Update(family *models.Family) error
	Delete(id uint) error
	GetMembers(familyID uint) ([]models.FamilyMember, error)
	GetMemberByID(familyID, memberID uint) (*models.FamilyMember, error)
	CreateMember(member *models.FamilyMember) error
	UpdateMember(member *models.FamilyMember) error
	DeleteMember(familyID, memberID uint) error
	SearchMembers(query string, limit int) ([]models.FamilyMember, error)
	CountMembers() (int64, error)
}

// familyRepository implements FamilyRepository
type familyRepository struct {
	db *gorm.DB
}

// NewFamilyRepository creates a new instance of FamilyRepository
func NewFamilyRepository(db *gorm.DB) FamilyRepository {
	return &familyRepository{db: db}
}

// GetAll retrieves families with member counts, optionally filtered by RT
func (r *familyRepository) GetAll(rt string) ([]*FamilyWithCount, error) {
	query := r.db.Table("families f").
		Select("f.*, COUNT(m.id) as member_count").
		Joins("LEFT JOIN family_members m ON m.family_id = f.id").
		Group("f.id").
		Order("f.kepala_keluarga ASC")
	if rt != "" {
		query = query.Where("f.rt = ?", rt)
	}

	var families []*FamilyWithCount
	if err := query.Scan(&families).Error; err != nil {
		return nil, err
	}
	return families, nil
}

// GetByID retrieves a family by ID
func (r *familyRepository) GetByID(id uint) (*models.Family, error) {
	var family models.Family
	if err := r.db.Where("id = ?", id).First(&family).Error; err != nil {
		return nil, err
	}
	return &family, nil
}

// Create inserts a new family
func (r *familyRepository) Create(family *models.Family) error {
	return r.db.Create(family).Error
}

// Update saves changes to an existing family
func (r *familyRepository) Update(family *models.Family) error {
	return r.db.Save(family).Error
}

// Delete removes a family and its members
func (r *familyRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("family_id = ?", id).Delete(&models.FamilyMember{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Family{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetMembers retrieves all members of a family
func (r *familyRepository) GetMembers(familyID uint) ([]models.FamilyMember, error) {
	var members []models.FamilyMember
	if err := r.db.Where("family_id = ?", familyID).Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GetMemberByID retrieves a member scoped to its family
func (r *familyRepository) GetMemberByID(familyID, memberID uint) (*models.FamilyMember, error) {
	var member models.FamilyMember
	if err := r.db.Where("id = ? AND family_id = ?", memberID, familyID).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// CreateMember inserts a new family member
func (r *familyRepository) CreateMember(member *models.FamilyMember) error {
	return r.db.Create(member).Error
}

// UpdateMember saves changes to an existing member
func (r *familyRepository) UpdateMember(member *models.FamilyMember) error {
	return r.db.Save(member).Error
}

// DeleteMember removes a member scoped to its family
func (r *familyRepository) DeleteMember(familyID, memberID uint) error {
	result := r.db.Where("id = ? AND family_id = ?", memberID, familyID).Delete(&models.FamilyMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchMembers finds fixed residents by name for the committee lookup
func (r *familyRepository) SearchMembers(query string, limit int) ([]models.FamilyMember, error) {
	var members []models.FamilyMember
	err := r.db.Where("nama ILIKE ?", "%"+query+"%").
		Order("nama ASC").
		Limit(limit).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// CountMembers counts all registered fixed residents
func (r *familyRepository) CountMembers() (int64, error) {
	var count int64
	if err := r.db.Model(&models.FamilyMember{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
