package models

import (
	"time"
)

// AuditLog represents the audit_logs table, an append-only record of every
// mutating operation with the acting user attached.
type AuditLog struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"column:user_id;index"`
	Username  string    `json:"username" gorm:"column:username"`
	Action    string    `json:"action" gorm:"column:action;not null"`
	Entity    string    `json:"entity" gorm:"column:entity"`
	EntityID  uint      `json:"entity_id" gorm:"column:entity_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the insert table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
