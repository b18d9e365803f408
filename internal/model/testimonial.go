package model

import (
	"time"
)

// Services offered by the factory; the service field of a testimonial must be
// one of these codes.
var ServiceCodes = []string{
	"curtain-wall", "cladding", "aluminum-windows",
	"upvc-windows", "wpc-doors", "shower-cabins",
	"railings", "roller-shutters", "glass-partitions",
	"kitchens", "other",
}

// ServiceNames maps service codes to their Arabic display names
var ServiceNames = map[string]string{
	"curtain-wall":     "كرتن وول",
	"cladding":         "كلادينج",
	"aluminum-windows": "نوافذ ألمنيوم",
	"upvc-windows":     "نوافذ UPVC",
	"wpc-doors":        "أبواب WPC",
	"shower-cabins":    "كابائن الدش",
	"railings":         "درابزين",
	"roller-shutters":  "رولر شتر",
	"glass-partitions": "قواطع زجاجية",
	"kitchens":         "مطابخ",
	"other":            "أخرى",
}

// ValidServiceCode reports whether code names a known service
func ValidServiceCode(code string) bool {
	for _, c := range ServiceCodes {
		if c == code {
			return true
		}
	}
	return false
}

// Testimonial represents a customer review awaiting or past moderation
type Testimonial struct {
	ID         int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string     `json:"name" gorm:"type:varchar(100);not null"`
	Email      string     `json:"email,omitempty" gorm:"type:varchar(254)"`
	Service    string     `json:"service" gorm:"type:varchar(32);not null;index"`
	Rating     int        `json:"rating" gorm:"not null"`
	Message    string     `json:"message" gorm:"type:text;not null"`
	IPAddress  string     `json:"-" gorm:"type:varchar(64);index"`
	UserAgent  string     `json:"-" gorm:"type:varchar(512)"`
	Approved   bool       `json:"approved" gorm:"default:false;index"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	AdminNotes string     `json:"admin_notes,omitempty" gorm:"type:text"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
}

// TableName returns the table name for Testimonial
func (Testimonial) TableName() string {
	return "testimonials"
}

// PublicTestimonial is the subset of a testimonial exposed on the public site
type PublicTestimonial struct {
	Name      string    `json:"name"`
	Service   string    `json:"service"`
	Rating    int       `json:"rating"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TestimonialRequest is the POST /api/testimonials body. Rating is a pointer
// so a missing field can be told apart from zero.
type TestimonialRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Rating  *int   `json:"rating"`
	Message string `json:"message"`
}

// ApproveTestimonialRequest is the PUT /api/testimonials/:id/approve body
type ApproveTestimonialRequest struct {
	Approved   *bool  `json:"approved"`
	AdminNotes string `json:"admin_notes"`
}

// Testimonial list sort modes
const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortRatingHigh = "rating_high"
	SortRatingLow  = "rating_low"
)

// TestimonialListQuery carries the filters for GET /api/testimonials
type TestimonialListQuery struct {
	Page    int
	Limit   int
	Status  string // approved, pending or all
	Service string
	Rating  string
	Sort    string
}

// RatingSummary carries the approved-average shown next to listings
type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalApproved int64   `json:"totalApproved"`
}

// TestimonialList is a page of testimonials plus pagination and rating metadata
type TestimonialList struct {
	Testimonials []Testimonial `json:"testimonials"`
	Pagination   Pagination    `json:"pagination"`
	Statistics   RatingSummary `json:"statistics"`
}

// ServiceStat is the per-service slice of the testimonial summary
type ServiceStat struct {
	Service   string  `json:"service"`
	Count     int64   `json:"count"`
	AvgRating float64 `json:"avg_rating"`
}

// TestimonialStats aggregates moderation state and rating distribution
type TestimonialStats struct {
	Total            int64         `json:"total"`
	Approved         int64         `json:"approved"`
	Pending          int64         `json:"pending"`
	AverageRating    float64       `json:"average_rating"`
	FiveStars        int64         `json:"five_stars"`
	FourStars        int64         `json:"four_stars"`
	ThreeStars       int64         `json:"three_stars"`
	TwoStars         int64         `json:"two_stars"`
	OneStar          int64         `json:"one_star"`
	Today            int64         `json:"today"`
	ThisWeek         int64         `json:"this_week"`
	ServiceBreakdown []ServiceStat `json:"service_breakdown" gorm:"-"`
}
