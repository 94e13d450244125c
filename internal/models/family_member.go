package models

import (
	"time"
)

// FamilyMember represents the family_members table. Members of the fixed
// resident directory (penduduk tetap) live here.
type FamilyMember struct {
	ID           uint       `json:"id" gorm:"primarykey"`
	FamilyID     uint       `json:"family_id" gorm:"column:family_id;index;not null"`
	NIK          string     `json:"nik" gorm:"column:nik;not null"`
	Nama         string     `json:"nama" gorm:"column:nama;not null"`
	Hubungan     string     `json:"hubungan" gorm:"column:hubungan"`
	JenisKelamin string     `json:"jenis_kelamin" gorm:"column:jenis_kelamin"`
	TanggalLahir *time.Time `json:"tanggal_lahir,omitempty" gorm:"column:tanggal_lahir"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName sets the insert table name for FamilyMember
func (FamilyMember) TableName() string {
	return "family_members"
}
