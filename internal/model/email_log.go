package model

import (
	"time"
)

// Email log entry types and statuses
const (
	EmailTypeContactNotification     = "contact_notification"
	EmailTypeTestimonialNotification = "testimonial_notification"
	EmailTypeAutoReply               = "auto_reply"

	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// EmailLog records one outbound email attempt. Failed sends are logged here
// and never retried.
type EmailLog struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ToEmail      string    `json:"to_email" gorm:"type:varchar(254);not null"`
	Subject      string    `json:"subject" gorm:"type:varchar(254);not null"`
	Type         string    `json:"type" gorm:"type:varchar(32);not null"`
	Status       string    `json:"status" gorm:"type:varchar(16);not null"`
	ErrorMessage string    `json:"error_message,omitempty" gorm:"type:text"`
	SentAt       time.Time `json:"sent_at" gorm:"autoCreateTime"`
	RelatedID    int64     `json:"related_id,omitempty"`
}

// TableName returns the table name for EmailLog
func (EmailLog) TableName() string {
	return "email_logs"
}
