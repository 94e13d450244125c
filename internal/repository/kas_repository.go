package repository

import (
	"time"

	"halodkm-be-svc/internal/models"

	"gorm.io/gorm"
)

// KasFilter narrows kas transaction listings
type KasFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      string
}

// MonthlyTotal is one month bucket of aggregated kas flow
type MonthlyTotal struct {
	Month       time.Time
	TotalMasuk  float64
	TotalKeluar float64
}

// KasRepository defines the interface for treasury ledger data operations
type KasRepository interface {
	List(filter KasFilter) ([]models.KasTransaction, error)
	GetByID(id uint) (*models.KasTransaction, error)
	Create(trans *models.KasTransaction) error
	Update(trans *models.KasTransaction) error
	Delete(id uint) error
	SumByType(transType string) (float64, error)
	SumByTypeInRange(transType string, start, end time.Time) (float64, error)
	MonthlyTotals(months int) ([]MonthlyTotal, error)
}

// kasRepository implements KasRepository
type kasRepository struct {
	db *gorm.DB
}

// NewKasRepository creates a new instance of KasRepository
func NewKasRepository(db *gorm.DB) KasRepository {
	return &kasRepository{db: db}
}

// List retrieves kas transactions matching the filter, newest first
func (r *kasRepository) List(filter KasFilter) ([]models.KasTransaction, error) {
	query := r.db.Model(&models.KasTransaction{})
	if filter.StartDate != nil {
		query = query.Where("tanggal >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("tanggal <= ?", *filter.EndDate)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var transactions []models.KasTransaction
	if err := query.Order("tanggal DESC, id DESC").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// GetByID retrieves a kas transaction by ID
func (r *kasRepository) GetByID(id uint) (*models.KasTransaction, error) {
	var trans models.KasTransaction
	if err := r.db.Where("id = ?", id).First(&trans).Error; err != nil {
		return nil, err
	}
	return &trans, nil
}

// Create appends a new entry to the treasury ledger
func (r *kasRepository) Create(trans *models.KasTransaction) error {
	return r.db.Create(trans).Error
}

// Update saves changes to an existing entry
func (r *kasRepository) Update(trans *models.KasTransaction) error {
	return r.db.Save(trans).Error
}

// Delete removes an entry by ID
func (r *kasRepository) Delete(id uint) error {
	result := r.db.Delete(&models.KasTransaction{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SumByType totals all entries of the given direction
func (r *kasRepository) SumByType(transType string) (float64, error) {
	var total float64
	err := r.db.Model(&models.KasTransaction{}).
		Where("type = ?", transType).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// SumByTypeInRange totals entries of the given direction within [start, end)
func (r *kasRepository) SumByTypeInRange(transType string, start, end time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.KasTransaction{}).
		Where("type = ? AND tanggal >= ? AND tanggal < ?", transType, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// MonthlyTotals aggregates kas flow per month over the last N months
func (r *kasRepository) MonthlyTotals(months int) ([]MonthlyTotal, error) {
	query := `
		SELECT
			date_trunc('month', tanggal) as month,
			COALESCE(SUM(amount) FILTER (WHERE type = 'masuk'), 0) as total_masuk,
			COALESCE(SUM(amount) FILTER (WHERE type = 'keluar'), 0) as total_keluar
		FROM kas_transactions
		WHERE tanggal >= date_trunc('month', NOW()) - (? * INTERVAL '1 month')
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := r.db.Raw(query, months-1).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []MonthlyTotal
	for rows.Next() {
		var t MonthlyTotal
		if err := rows.Scan(&t.Month, &t.TotalMasuk, &t.TotalKeluar); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, nil
}
