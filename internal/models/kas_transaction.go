package models

import (
	"time"
)

// Transaction direction for kas and event ledgers
const (
	TransactionMasuk  = "masuk"
	TransactionKeluar = "keluar"
)

// KasTransaction represents the kas_transactions table, the append-only
// mosque treasury ledger. Settled event balances land here as single
// masuk entries.
type KasTransaction struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Type        string    `json:"type" gorm:"column:type;not null"`
	Amount      float64   `json:"amount" gorm:"column:amount;not null"`
	Description string    `json:"description" gorm:"column:description;not null"`
	Category    *string   `json:"category,omitempty" gorm:"column:category"`
	Tanggal     time.Time `json:"tanggal" gorm:"column:tanggal;not null"`
	CreatedBy   string    `json:"created_by" gorm:"column:created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName sets the insert table name for KasTransaction
func (KasTransaction) TableName() string {
	return "kas_transactions"
}
