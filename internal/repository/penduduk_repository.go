package repository

import (
	"halodkm-be-svc/internal/models"

	"gorm.io/gorm"
)

// PendudukRepository defines the interface for the ad-hoc resident directory
type PendudukRepository interface {
	GetAll() ([]models.PendudukKhusus, error)
	GetByID(id uint) (*models.PendudukKhusus, error)
	Create(p *models.PendudukKhusus) error
	Update(p *models.PendudukKhusus) error
	Delete(id uint) error
	LabelCounts() (map[string]int64, error)
	Search(query string, limit int) ([]models.PendudukKhusus, error)
}

// pendudukRepository implements PendudukRepository
type pendudukRepository struct {
	db *gorm.DB
}

// NewPendudukRepository creates a new instance of PendudukRepository
func NewPendudukRepository(db *gorm.DB) PendudukRepository {
	return &pendudukRepository{db: db}
}

// GetAll retrieves all ad-hoc residents, newest first
func (r *pendudukRepository) GetAll() ([]models.PendudukKhusus, error) {
	var penduduk []models.PendudukKhusus
	if err := r.db.Order("created_at DESC").Find(&penduduk).Error; err != nil {
		return nil, err
	}
	return penduduk, nil
}

// GetByID retrieves an ad-hoc resident by ID
func (r *pendudukRepository) GetByID(id uint) (*models.PendudukKhusus, error) {
	var p models.PendudukKhusus
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new ad-hoc resident
func (r *pendudukRepository) Create(p *models.PendudukKhusus) error {
	return r.db.Create(p).Error
}

// Update saves changes to an existing ad-hoc resident
func (r *pendudukRepository) Update(p *models.PendudukKhusus) error {
	return r.db.Save(p).Error
}

// Delete removes an ad-hoc resident by ID
func (r *pendudukRepository) Delete(id uint) error {
	result := r.db.Delete(&models.PendudukKhusus{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LabelCounts returns how many residents carry each label
func (r *pendudukRepository) LabelCounts() (map[string]int64, error) {
	rows, err := r.db.Model(&models.PendudukKhusus{}).
		Select("label, COUNT(*) as count").
		Group("label").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int64{
		models.LabelKontrak:        0,
		models.LabelPedagang:       0,
		models.LabelWargaDusunLain: 0,
	}
	for rows.Next() {
		var label string
		var count int64
		if err := rows.Scan(&label, &count); err != nil {
			return nil, err
		}
		counts[label] = count
	}
	return counts, nil
}

// Search finds ad-hoc residents by name for the committee lookup
func (r *pendudukRepository) Search(query string, limit int) ([]models.PendudukKhusus, error) {
	var penduduk []models.PendudukKhusus
	err := r.db.Where("nama ILIKE ?", "%"+query+"%").
		Order("nama ASC").
		Limit(limit).
		Find(&penduduk).Error
	if err != nil {
		return nil, err
	}
	return penduduk, nil
}
