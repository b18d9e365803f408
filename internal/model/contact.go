package model

import (
	"time"
)

// Contact message statuses
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
	ContactStatusClosed  = "closed"
)

// ContactMessage represents a contact form submission
type ContactMessage struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string     `json:"name" gorm:"type:varchar(100);not null"`
	Email       string     `json:"email" gorm:"type:varchar(254);not null"`
	Phone       string     `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Message     string     `json:"message" gorm:"type:text;not null"`
	IPAddress   string     `json:"-" gorm:"type:varchar(64)"`
	UserAgent   string     `json:"-" gorm:"type:varchar(512)"`
	Status      string     `json:"status" gorm:"type:varchar(16);default:'new';index"`
	Response    string     `json:"response,omitempty" gorm:"type:text"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName returns the table name for ContactMessage
func (ContactMessage) TableName() string {
	return "contact_messages"
}

// ValidContactStatus reports whether s is one of the legal message statuses
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusClosed:
		return true
	}
	return false
}

// ContactRequest is the POST /api/contact body
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ContactStatusRequest is the PUT /api/contact/:id/status body
type ContactStatusRequest struct {
	Status   string `json:"status"`
	Response string `json:"response"`
}

// ContactListQuery carries the filters for GET /api/contact
type ContactListQuery struct {
	Page   int
	Limit  int
	Status string
}

// ContactList is a page of contact messages plus pagination metadata
type ContactList struct {
	Messages   []ContactMessage `json:"messages"`
	Pagination Pagination       `json:"pagination"`
}

// ContactStats aggregates the moderation state of the contact inbox
type ContactStats struct {
	Total           int64 `json:"total"`
	NewMessages     int64 `json:"new_messages"`
	ReadMessages    int64 `json:"read_messages"`
	RepliedMessages int64 `json:"replied_messages"`
	ClosedMessages  int64 `json:"closed_messages"`
	TodayMessages   int64 `json:"today_messages"`
	WeekMessages    int64 `json:"week_messages"`
}

// CreatedResponse acknowledges a stored submission
type CreatedResponse struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
}
