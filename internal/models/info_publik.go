package models

import (
	"time"
)

// Announcement categories
const (
	InfoCategoryKegiatanMasjid = "Kegiatan Masjid"
	InfoCategoryKegiatanDusun  = "Kegiatan Dusun"
	InfoCategoryPengumuman     = "Pengumuman"
)

// InfoPublik represents the info_publik table (public announcements).
// Event completion reports and monthly kas recaps are published here.
type InfoPublik struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Title     string    `json:"title" gorm:"column:title;not null"`
	Content   string    `json:"content" gorm:"column:content;type:text;not null"`
	Category  string    `json:"category" gorm:"column:category;not null"`
	Tanggal   time.Time `json:"tanggal" gorm:"column:tanggal;not null"`
	CreatedBy string    `json:"created_by" gorm:"column:created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName sets the insert table name for InfoPublik
func (InfoPublik) TableName() string {
	return "info_publik"
}
