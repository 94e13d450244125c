package models

import (
	"time"
)

// SchedulerLog represents the scheduler_logs table, recording start and
// finish of scheduled jobs.
type SchedulerLog struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Code      string    `json:"code" gorm:"column:code;not null"`
	RunID     string    `json:"run_id" gorm:"column:run_id"`
	Status    string    `json:"status" gorm:"column:status"`
	Message   string    `json:"message" gorm:"column:message"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the insert table name for SchedulerLog
func (SchedulerLog) TableName() string {
	return "scheduler_logs"
}
