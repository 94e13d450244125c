package models

import (
	"time"
)

// EventRecipient represents the event_recipients table. Recipients are
// informational only; they carry no financial linkage to the event ledger.
type EventRecipient struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	EventID      uint      `json:"event_id" gorm:"column:event_id;index;not null"`
	Nama         string    `json:"nama" gorm:"column:nama;not null"`
	Alamat       *string   `json:"alamat,omitempty" gorm:"column:alamat"`
	NoHP         *string   `json:"no_hp,omitempty" gorm:"column:no_hp"`
	JenisBantuan *string   `json:"jenis_bantuan,omitempty" gorm:"column:jenis_bantuan"`
	Jumlah       *string   `json:"jumlah,omitempty" gorm:"column:jumlah"`
	Keterangan   *string   `json:"keterangan,omitempty" gorm:"column:keterangan"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName sets the insert table name for EventRecipient
func (EventRecipient) TableName() string {
	return "event_recipients"
}
