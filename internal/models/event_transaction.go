package models

import (
	"time"
)

// EventTransaction represents the event_transactions table, the per-event
// ledger. Entries stay untouched after settlement as the historical record.
type EventTransaction struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	EventID     uint      `json:"event_id" gorm:"column:event_id;index;not null"`
	Type        string    `json:"type" gorm:"column:type;not null"`
	Amount      float64   `json:"amount" gorm:"column:amount;not null"`
	Description string    `json:"description" gorm:"column:description;not null"`
	Tanggal     time.Time `json:"tanggal" gorm:"column:tanggal;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the insert table name for EventTransaction
func (EventTransaction) TableName() string {
	return "event_transactions"
}
