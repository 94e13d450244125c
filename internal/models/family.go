package models

import (
	"time"
)

// Family represents the families table (kartu keluarga registry)
type Family struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	NoKK           string    `json:"no_kk" gorm:"column:no_kk;uniqueIndex;not null"`
	KepalaKeluarga string    `json:"kepala_keluarga" gorm:"column:kepala_keluarga;not null"`
	RT             string    `json:"rt" gorm:"column:rt;not null"`
	Alamat         *string   `json:"alamat,omitempty" gorm:"column:alamat"`
	NoHP           *string   `json:"no_hp,omitempty" gorm:"column:no_hp"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Family
func (Family) TableName() string {
	return "families"
}
