package models

import (
	"time"
)

// Event types
const (
	EventTipePenggalanganDana = "penggalangan_dana"
	EventTipeDistribusi       = "distribusi"
)

// Event lifecycle states
const (
	EventStatusAktif   = "aktif"
	EventStatusSelesai = "selesai"
)

// Event represents the events table. An event is a bounded fundraising or
// aid-distribution campaign with its own sub-ledger. Tipe is immutable
// after creation; status moves aktif -> selesai exactly once via the
// completion endpoint and selesai is terminal.
type Event struct {
	ID             uint       `json:"id" gorm:"primarykey"`
	Nama           string     `json:"nama" gorm:"column:nama;not null"`
	Deskripsi      *string    `json:"deskripsi,omitempty" gorm:"column:deskripsi"`
	Tipe           string     `json:"tipe" gorm:"column:tipe;not null"`
	TanggalMulai   time.Time  `json:"tanggal_mulai" gorm:"column:tanggal_mulai;not null"`
	TanggalSelesai *time.Time `json:"tanggal_selesai,omitempty" gorm:"column:tanggal_selesai"`
	Status         string     `json:"status" gorm:"column:status;default:aktif"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName sets the insert table name for Event
func (Event) TableName() string {
	return "events"
}

// IsAktif reports whether the event still accepts registry mutations
func (e *Event) IsAktif() bool {
	return e.Status == EventStatusAktif
}
