package model

import (
	"time"
)

// Device types derived from the user agent or supplied by the client
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
)

// Visit represents one recorded page view
type Visit struct {
	ID               int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	PageURL          string    `json:"page_url" gorm:"type:varchar(2048);not null;index"`
	PageTitle        string    `json:"page_title" gorm:"type:varchar(200)"`
	Referrer         string    `json:"referrer" gorm:"type:varchar(500)"`
	IPAddress        string    `json:"ip_address" gorm:"type:varchar(64);index"`
	UserAgent        string    `json:"user_agent" gorm:"type:varchar(512)"`
	Country          string    `json:"country,omitempty" gorm:"type:varchar(64)"`
	City             string    `json:"city,omitempty" gorm:"type:varchar(64)"`
	DeviceType       string    `json:"device_type" gorm:"type:varchar(16);index"`
	Browser          string    `json:"browser" gorm:"type:varchar(100)"`
	OS               string    `json:"os" gorm:"type:varchar(100)"`
	ScreenResolution string    `json:"screen_resolution" gorm:"type:varchar(16)"`
	Language         string    `json:"language" gorm:"type:varchar(10)"`
	SessionID        string    `json:"session_id" gorm:"type:varchar(64);index"`
	VisitDuration    int       `json:"visit_duration" gorm:"default:0"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName returns the table name for Visit
func (Visit) TableName() string {
	return "website_analytics"
}

// TrackVisitRequest is the POST /api/analytics/visit body. Everything except
// page_url is optional; device_type, browser and os override the values
// derived from the User-Agent header when present.
type TrackVisitRequest struct {
	PageURL          string `json:"page_url"`
	PageTitle        string `json:"page_title"`
	Referrer         string `json:"referrer"`
	DeviceType       string `json:"device_type"`
	Browser          string `json:"browser"`
	OS               string `json:"os"`
	ScreenResolution string `json:"screen_resolution"`
	Language         string `json:"language"`
	SessionID        string `json:"session_id"`
}

// TrackVisitResponse echoes the stored visit identity back to the client
type TrackVisitResponse struct {
	VisitID   int64  `json:"visit_id"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

// UpdateDurationRequest is the PUT /api/analytics/visit/:id/duration body.
// Duration is a pointer so a missing field can be told apart from zero.
type UpdateDurationRequest struct {
	Duration *int `json:"duration"`
}

// VisitListQuery carries the filters for GET /api/analytics/visits
type VisitListQuery struct {
	Page       int
	Limit      int
	DateFrom   string
	DateTo     string
	DeviceType string
	PageURL    string
}

// VisitList is a page of visits plus pagination metadata
type VisitList struct {
	Visits     []Visit    `json:"visits"`
	Pagination Pagination `json:"pagination"`
}

// Pagination describes one page of a filtered result set. Total is the
// pre-pagination match count and Pages is ceil(Total/Limit).
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// ExportQuery carries the filters for GET /api/analytics/export
type ExportQuery struct {
	Format   string
	DateFrom string
	DateTo   string
}

// Export formats
const (
	ExportFormatJSON = "json"
	ExportFormatCSV  = "csv"
)

// ExportResult is the outcome of an export. CSV is filled for the csv
// format, Visits for json; both carry the same rows.
type ExportResult struct {
	Format     string
	CSV        []byte
	Visits     []Visit
	ExportedAt string
}
