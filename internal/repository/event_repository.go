package repository

import (
	"time"

	"halodkm-be-svc/internal/models"
	"halodkm-be-svc/internal/models/response"

	"gorm.io/gorm"
)

// EventRepository defines the interface for event, ledger, recipient and
// committee data operations.
type EventRepository interface {
	GetAllWithTotals(status string) ([]*response.EventListItem, error)
	GetByID(id uint) (*models.Event, error)
	Create(event *models.Event) error
	Update(event *models.Event) error
	Delete(id uint) error

	GetTransactions(eventID uint) ([]models.EventTransaction, error)
	GetTransactionByID(eventID, transID uint) (*models.EventTransaction, error)
	CreateTransaction(trans *models.EventTransaction) error
	UpdateTransaction(trans *models.EventTransaction) error
	DeleteTransaction(eventID, transID uint) error
	CountTransactions(eventID uint) (int64, error)

	GetRecipients(eventID uint) ([]models.EventRecipient, error)
	GetRecipientByID(eventID, recipientID uint) (*models.EventRecipient, error)
	CreateRecipient(recipient *models.EventRecipient) error
	UpdateRecipient(recipient *models.EventRecipient) error
	DeleteRecipient(eventID, recipientID uint) error

	GetPanitia(eventID uint) ([]models.EventPanitia, error)
	GetPanitiaByID(eventID, panitiaID uint) (*models.EventPanitia, error)
	CreatePanitia(panitia *models.EventPanitia) error
	UpdatePanitia(panitia *models.EventPanitia) error
	DeletePanitia(eventID, panitiaID uint) error

	// Settle flips the event to selesai and, when kasEntry is non-nil,
	// appends it to the treasury ledger in the same database transaction.
	// The status flip is a conditional update on status = aktif, so a
	// concurrent or repeated settlement cannot double-transfer.
	Settle(eventID uint, completedAt time.Time, kasEntry *models.KasTransaction) error
}

// eventRepository implements EventRepository
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new instance of EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// GetAllWithTotals retrieves events with derived ledger totals and recipient
// counts, optionally filtered by status.
func (r *eventRepository) GetAllWithTotals(status string) ([]*response.EventListItem, error) {
	query := `
		SELECT
			e.*,
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'masuk'), 0) as total_masuk,
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'keluar'), 0) as total_keluar,
			COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'masuk'), 0)
				- COALESCE(SUM(t.amount) FILTER (WHERE t.type = 'keluar'), 0) as saldo,
			(SELECT COUNT(*) FROM event_recipients rec WHERE rec.event_id = e.id) as total_recipients
		FROM events e
		LEFT JOIN event_transactions t ON t.event_id = e.id
	`
	args := []interface{}{}
	if status != "" {
		query += " WHERE e.status = ?"
		args = append(args, status)
	}
	query += " GROUP BY e.id ORDER BY e.tanggal_mulai DESC, e.id DESC"

	var events []*response.EventListItem
	if err := r.db.Raw(query, args...).Scan(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetByID retrieves an event by ID
func (r *eventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts a new event
func (r *eventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// Update saves changes to an existing event
func (r *eventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete removes an event and its registries
func (r *eventRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.EventRecipient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.EventPanitia{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Event{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetTransactions retrieves the full ledger of an event, newest first
func (r *eventRepository) GetTransactions(eventID uint) ([]models.EventTransaction, error) {
	var transactions []models.EventTransaction
	err := r.db.Where("event_id = ?", eventID).
		Order("tanggal DESC, id DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// GetTransactionByID retrieves a ledger entry scoped to its event
func (r *eventRepository) GetTransactionByID(eventID, transID uint) (*models.EventTransaction, error) {
	var trans models.EventTransaction
	if err := r.db.Where("id = ? AND event_id = ?", transID, eventID).First(&trans).Error; err != nil {
		return nil, err
	}
	return &trans, nil
}

// CreateTransaction appends a ledger entry
func (r *eventRepository) CreateTransaction(trans *models.EventTransaction) error {
	return r.db.Create(trans).Error
}

// UpdateTransaction saves changes to a ledger entry
func (r *eventRepository) UpdateTransaction(trans *models.EventTransaction) error {
	return r.db.Save(trans).Error
}

// DeleteTransaction removes a ledger entry scoped to its event
func (r *eventRepository) DeleteTransaction(eventID, transID uint) error {
	result := r.db.Where("id = ? AND event_id = ?", transID, eventID).Delete(&models.EventTransaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountTransactions counts ledger entries of an event
func (r *eventRepository) CountTransactions(eventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.EventTransaction{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetRecipients retrieves all recipients of an event
func (r *eventRepository) GetRecipients(eventID uint) ([]models.EventRecipient, error) {
	var recipients []models.EventRecipient
	err := r.db.Where("event_id = ?", eventID).Order("id ASC").Find(&recipients).Error
	if err != nil {
		return nil, err
	}
	return recipients, nil
}

// GetRecipientByID retrieves a recipient scoped to its event
func (r *eventRepository) GetRecipientByID(eventID, recipientID uint) (*models.EventRecipient, error) {
	var recipient models.EventRecipient
	if err := r.db.Where("id = ? AND event_id = ?", recipientID, eventID).First(&recipient).Error; err != nil {
		return nil, err
	}
	return &recipient, nil
}

// CreateRecipient inserts a new recipient
func (r *eventRepository) CreateRecipient(recipient *models.EventRecipient) error {
	return r.db.Create(recipient).Error
}

// UpdateRecipient saves changes to an existing recipient
func (r *eventRepository) UpdateRecipient(recipient *models.EventRecipient) error {
	return r.db.Save(recipient).Error
}

// DeleteRecipient removes a recipient scoped to its event
func (r *eventRepository) DeleteRecipient(eventID, recipientID uint) error {
	result := r.db.Where("id = ? AND event_id = ?", recipientID, eventID).Delete(&models.EventRecipient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetPanitia retrieves the committee of an event
func (r *eventRepository) GetPanitia(eventID uint) ([]models.EventPanitia, error) {
	var panitia []models.EventPanitia
	err := r.db.Where("event_id = ?", eventID).Order("id ASC").Find(&panitia).Error
	if err != nil {
		return nil, err
	}
	return panitia, nil
}

// GetPanitiaByID retrieves a committee member scoped to its event
func (r *eventRepository) GetPanitiaByID(eventID, panitiaID uint) (*models.EventPanitia, error) {
	var panitia models.EventPanitia
	if err := r.db.Where("id = ? AND event_id = ?", panitiaID, eventID).First(&panitia).Error; err != nil {
		return nil, err
	}
	return &panitia, nil
}

// CreatePanitia inserts a new committee member
func (r *eventRepository) CreatePanitia(panitia *models.EventPanitia) error {
	return r.db.Create(panitia).Error
}

// UpdatePanitia saves changes to an existing committee member
func (r *eventRepository) UpdatePanitia(panitia *models.EventPanitia) error {
	return r.db.Save(panitia).Error
}

// DeletePanitia removes a committee member scoped to its event
func (r *eventRepository) DeletePanitia(eventID, panitiaID uint) error {
	result := r.db.Where("id = ? AND event_id = ?", panitiaID, eventID).Delete(&models.EventPanitia{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Settle performs the one-way settlement: the status flip and the treasury
// transfer commit or fail together.
func (r *eventRepository) Settle(eventID uint, completedAt time.Time, kasEntry *models.KasTransaction) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Event{}).
			Where("id = ? AND status = ?", eventID, models.EventStatusAktif).
			Updates(map[string]interface{}{
				"status":          models.EventStatusSelesai,
				"tanggal_selesai": completedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Lost the race: someone settled this event first.
			return gorm.ErrRecordNotFound
		}
		if kasEntry != nil {
			if err := tx.Create(kasEntry).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
