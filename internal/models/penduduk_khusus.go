package models

import (
	"time"
)

// Labels for ad-hoc residents
const (
	LabelKontrak        = "kontrak"
	LabelPedagang       = "pedagang"
	LabelWargaDusunLain = "warga_dusun_lain"
)

// PendudukKhusus represents the penduduk_khusus table, the ad-hoc resident
// directory (renters, traders, residents of other hamlets).
type PendudukKhusus struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	NIK          string    `json:"nik" gorm:"column:nik;not null"`
	Nama         string    `json:"nama" gorm:"column:nama;not null"`
	JenisKelamin string    `json:"jenis_kelamin" gorm:"column:jenis_kelamin"`
	Alamat       *string   `json:"alamat,omitempty" gorm:"column:alamat"`
	NoHP         *string   `json:"no_hp,omitempty" gorm:"column:no_hp"`
	Label        string    `json:"label" gorm:"column:label;not null"`
	Keterangan   *string   `json:"keterangan,omitempty" gorm:"column:keterangan"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName sets the insert table name for PendudukKhusus
func (PendudukKhusus) TableName() string {
	return "penduduk_khusus"
}
