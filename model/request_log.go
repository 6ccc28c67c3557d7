package model

import (
	"time"

	"gorm.io/datatypes"
)

// RequestLog represents a persisted HTTP call
type RequestLog struct {
	ID         uint           `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	CreatedAt  time.Time      `json:"created_at" gorm:"column:created_at;index"`
	RequestID  string         `json:"request_id" gorm:"column:request_id;type:varchar(64);index"`
	Method     string         `json:"method" gorm:"column:method;type:varchar(16)"`
	Path       string         `json:"path" gorm:"column:path;type:varchar(255);index"`
	Status     int            `json:"status" gorm:"column:status"`
	DurationMS int64          `json:"duration_ms" gorm:"column:duration_ms"`
	ClientIP   string         `json:"client_ip" gorm:"column:client_ip;type:varchar(45)"`
	UserAgent  string         `json:"user_agent" gorm:"column:user_agent;type:varchar(512)"`
	City       string         `json:"city" gorm:"column:city;type:varchar(100)"`
	Country    string         `json:"country" gorm:"column:country;type:varchar(100)"`
	Message    string         `json:"message" gorm:"column:message;type:text"`
	Details    datatypes.JSON `json:"details" gorm:"column:details"`
}

func (RequestLog) TableName() string {
	return "request_log"
}
