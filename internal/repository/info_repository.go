package repository

import (
	"halodkm-be-svc/internal/models"

	"gorm.io/gorm"
)

// InfoRepository defines the interface for public announcement data operations
type InfoRepository interface {
	GetAll() ([]models.InfoPublik, error)
	GetByID(id uint) (*models.InfoPublik, error)
	Create(info *models.InfoPublik) error
	Update(info *models.InfoPublik) error
	Delete(id uint) error
}

// infoRepository implements InfoRepository
type infoRepository struct {
	db *gorm.DB
}

// NewInfoRepository creates a new instance of InfoRepository
func NewInfoRepository(db *gorm.DB) InfoRepository {
	return &infoRepository{db: db}
}

// GetAll retrieves all announcements, newest first
func (r *infoRepository) GetAll() ([]models.InfoPublik, error) {
	var infos []models.InfoPublik
	if err := r.db.Order("tanggal DESC, id DESC").Find(&infos).Error; err != nil {
		return nil, err
	}
	return infos, nil
}

// GetByID retrieves an announcement by ID
func (r *infoRepository) GetByID(id uint) (*models.InfoPublik, error) {
	var info models.InfoPublik
	if err := r.db.Where("id = ?", id).First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// Create inserts a new announcement
func (r *infoRepository) Create(info *models.InfoPublik) error {
	return r.db.Create(info).Error
}

// Update saves changes to an existing announcement
func (r *infoRepository) Update(info *models.InfoPublik) error {
	return r.db.Save(info).Error
}

// Delete removes an announcement by ID
func (r *infoRepository) Delete(id uint) error {
	result := r.db.Delete(&models.InfoPublik{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
