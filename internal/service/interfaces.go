package service

import (
	"context"
	"time"

	"kayan/internal/model"

	"github.com/redis/go-redis/v9"
)

// VisitRepositoryInterface defines the interface for visit storage (for testing)
type VisitRepositoryInterface interface {
	SaveVisit(ctx context.Context, v *model.Visit) error
	UpdateVisitDuration(ctx context.Context, id int64, seconds int) (int64, error)
	ListVisits(ctx context.Context, q *model.VisitListQuery) ([]model.Visit, int64, error)
	VisitsForExport(ctx context.Context, dateFrom, dateTo string) ([]model.Visit, error)
	OverviewTotals(ctx context.Context, period string, now time.Time) (*model.OverviewTotals, error)
	DeviceBreakdown(ctx context.Context, period string, now time.Time) ([]model.DeviceStat, error)
	BrowserBreakdown(ctx context.Context, period string, now time.Time) ([]model.BrowserStat, error)
	TopPages(ctx context.Context, period string, now time.Time) ([]model.PageStat, error)
	HourlyDistribution(ctx context.Context, period string, now time.Time) ([]model.HourStat, error)
	DailyTrend(ctx context.Context, period string, now time.Time) ([]model.DayStat, error)
	CurrentHourStats(ctx context.Context, now time.Time) (*model.CurrentHourStats, error)
	ActiveSessions(ctx context.Context, since time.Time) (int64, error)
	DeleteVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ContactRepositoryInterface defines the interface for contact storage (for testing)
type ContactRepositoryInterface interface {
	SaveContactMessage(ctx context.Context, m *model.ContactMessage) error
	GetContactMessage(ctx context.Context, id int64) (*model.ContactMessage, error)
	ListContactMessages(ctx context.Context, q *model.ContactListQuery) ([]model.ContactMessage, int64, error)
	UpdateContactStatus(ctx context.Context, id int64, status, response string, now time.Time) (int64, error)
	DeleteContactMessage(ctx context.Context, id int64) (int64, error)
	ContactStats(ctx context.Context, now time.Time) (*model.ContactStats, error)
}

// TestimonialRepositoryInterface defines the interface for testimonial storage (for testing)
type TestimonialRepositoryInterface interface {
	SaveTestimonial(ctx context.Context, t *model.Testimonial) error
	RecentTestimonialsByIP(ctx context.Context, ip string, since time.Time) (int64, error)
	ListTestimonials(ctx context.Context, q *model.TestimonialListQuery) ([]model.Testimonial, int64, error)
	ListApprovedTestimonials(ctx context.Context, service string, limit int) ([]model.Testimonial, error)
	ApprovedRatingSummary(ctx context.Context) (*model.RatingSummary, error)
	SetTestimonialApproval(ctx context.Context, id int64, approved bool, adminNotes string, now time.Time) (int64, error)
	DeleteTestimonial(ctx context.Context, id int64) (int64, error)
	TestimonialStats(ctx context.Context, now time.Time) (*model.TestimonialStats, error)
}

// RedisRepositoryInterface defines the interface for report caching (for testing)
type RedisRepositoryInterface interface {
	GetClient() *redis.Client
	GetOverviewReport(ctx context.Context, period string) (*model.OverviewReport, error)
	SaveOverviewReport(ctx context.Context, period string, report *model.OverviewReport) error
}

// NotifierInterface defines the interface for outbound notifications. Calls
// never fail the caller; delivery problems are logged and recorded only.
type NotifierInterface interface {
	NotifyContactMessage(ctx context.Context, m *model.ContactMessage)
	NotifyTestimonial(ctx context.Context, t *model.Testimonial)
}

// AnalyticsServiceInterface defines the interface for visit tracking and reporting
type AnalyticsServiceInterface interface {
	TrackVisit(ctx context.Context, req *model.TrackVisitRequest, clientIP, userAgent string) (*model.TrackVisitResponse, error)
	UpdateDuration(ctx context.Context, id int64, req *model.UpdateDurationRequest) error
	ListVisits(ctx context.Context, q *model.VisitListQuery) (*model.VisitList, error)
	Overview(ctx context.Context, period string) (*model.OverviewReport, error)
	RealTime(ctx context.Context) (*model.RealTimeReport, error)
	Export(ctx context.Context, q *model.ExportQuery) (*model.ExportResult, error)
}

// ContactServiceInterface defines the interface for contact form operations
type ContactServiceInterface interface {
	Submit(ctx context.Context, req *model.ContactRequest, clientIP, userAgent string) (*model.CreatedResponse, error)
	List(ctx context.Context, q *model.ContactListQuery) (*model.ContactList, error)
	Get(ctx context.Context, id int64) (*model.ContactMessage, error)
	UpdateStatus(ctx context.Context, id int64, req *model.ContactStatusRequest) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*model.ContactStats, error)
}

// TestimonialServiceInterface defines the interface for testimonial operations
type TestimonialServiceInterface interface {
	Submit(ctx context.Context, req *model.TestimonialRequest, clientIP, userAgent string) (*model.CreatedResponse, error)
	List(ctx context.Context, q *model.TestimonialListQuery) (*model.TestimonialList, error)
	ListPublic(ctx context.Context, service string, limit int) ([]model.PublicTestimonial, error)
	Approve(ctx context.Context, id int64, req *model.ApproveTestimonialRequest) (bool, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*model.TestimonialStats, error)
}
