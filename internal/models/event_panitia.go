package models

import (
	"time"
)

// Source directories a committee member can be picked from
const (
	PanitiaSourcePendudukTetap  = "penduduk_tetap"
	PanitiaSourcePendudukKhusus = "penduduk_khusus"
	PanitiaSourceManual         = "manual"
)

// EventPanitia represents the event_panitia table, the committee for an
// event. SourceID is a weak reference into a resident directory used only
// to prefill fields at creation time; deleting the source person does not
// cascade.
type EventPanitia struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	EventID    uint      `json:"event_id" gorm:"column:event_id;index;not null"`
	SourceType string    `json:"source_type" gorm:"column:source_type;default:manual"`
	SourceID   *uint     `json:"source_id,omitempty" gorm:"column:source_id"`
	Nama       string    `json:"nama" gorm:"column:nama;not null"`
	Role       string    `json:"role" gorm:"column:role;not null"`
	NoHP       *string   `json:"no_hp,omitempty" gorm:"column:no_hp"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName sets the insert table name for EventPanitia
func (EventPanitia) TableName() string {
	return "event_panitia"
}
