package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"kayan/internal/model"
	"kayan/internal/useragent"
	"kayan/pkg/util"

	"github.com/rs/zerolog/log"
)

const (
	defaultVisitPage    = 1
	defaultVisitLimit   = 50
	activeSessionWindow = 30 * time.Minute
)

var screenResolutionRe = regexp.MustCompile(`^\d+x\d+$`)

// AnalyticsService handles visit tracking and reporting
type AnalyticsService struct {
	visitRepo VisitRepositoryInterface
	redisRepo RedisRepositoryInterface
}

// NewAnalyticsService creates a new Analytics Service. redisRepo may be nil
// when report caching is disabled.
func NewAnalyticsService(visitRepo VisitRepositoryInterface, redisRepo RedisRepositoryInterface) *AnalyticsService {
	return &AnalyticsService{
		visitRepo: visitRepo,
		redisRepo: redisRepo,
	}
}

// TrackVisit validates and stores one page view. Device, browser and OS fall
// back to User-Agent classification when the client did not supply them, and
// a missing session_id gets a fresh UUID.
func (s *AnalyticsService) TrackVisit(ctx context.Context, req *model.TrackVisitRequest, clientIP, userAgent string) (*model.TrackVisitResponse, error) {
	if err := validateTrackVisit(req); err != nil {
		return nil, err
	}

	parsed := useragent.Classify(userAgent)

	deviceType := req.DeviceType
	if deviceType == "" {
		deviceType = parsed.DeviceType
	}
	browser := req.Browser
	if browser == "" {
		browser = parsed.Browser
	}
	osName := req.OS
	if osName == "" {
		osName = parsed.OS
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = util.GenerateUUID()
	}

	language := req.Language
	if language == "" {
		language = "ar"
	}

	visit := &model.Visit{
		PageURL:          req.PageURL,
		PageTitle:        req.PageTitle,
		Referrer:         req.Referrer,
		IPAddress:        clientIP,
		UserAgent:        userAgent,
		DeviceType:       deviceType,
		Browser:          browser,
		OS:               osName,
		ScreenResolution: req.ScreenResolution,
		Language:         language,
		SessionID:        sessionID,
	}

	if err := s.visitRepo.SaveVisit(ctx, visit); err != nil {
		return nil, err
	}

	return &model.TrackVisitResponse{
		VisitID:   visit.ID,
		SessionID: sessionID,
		Timestamp: visit.CreatedAt.Format(time.RFC3339),
	}, nil
}

// UpdateDuration sets the dwell time of one visit. Duration zero is a valid
// bounce; only a missing or negative value is rejected.
func (s *AnalyticsService) UpdateDuration(ctx context.Context, id int64, req *model.UpdateDurationRequest) error {
	if req.Duration == nil || *req.Duration < 0 {
		return ValidationErrors{}.add("duration", "مدة الزيارة غير صحيحة")
	}

	affected, err := s.visitRepo.UpdateVisitDuration(ctx, id, *req.Duration)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListVisits returns one page of raw visits under the given filters
func (s *AnalyticsService) ListVisits(ctx context.Context, q *model.VisitListQuery) (*model.VisitList, error) {
	if q.Page < 1 {
		q.Page = defaultVisitPage
	}
	if q.Limit < 1 {
		q.Limit = defaultVisitLimit
	}

	visits, total, err := s.visitRepo.ListVisits(ctx, q)
	if err != nil {
		return nil, err
	}

	return &model.VisitList{
		Visits:     visits,
		Pagination: buildPagination(q.Page, q.Limit, total),
	}, nil
}

// Overview assembles the six-part statistics report for the period. An
// absent or unknown period means no date filter. Known periods are served
// through the cache when one is configured; the parts are independent
// reads, not a snapshot.
func (s *AnalyticsService) Overview(ctx context.Context, period string) (*model.OverviewReport, error) {
	cacheable := knownPeriod(period)
	if cacheable && s.redisRepo != nil {
		if cached, err := s.redisRepo.GetOverviewReport(ctx, period); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			log.Warn().Err(err).Str("period", period).Msg("Overview cache read failed")
		}
	}

	now := time.Now().UTC()

	totals, err := s.visitRepo.OverviewTotals(ctx, period, now)
	if err != nil {
		return nil, err
	}
	devices, err := s.visitRepo.DeviceBreakdown(ctx, period, now)
	if err != nil {
		return nil, err
	}
	browsers, err := s.visitRepo.BrowserBreakdown(ctx, period, now)
	if err != nil {
		return nil, err
	}
	pages, err := s.visitRepo.TopPages(ctx, period, now)
	if err != nil {
		return nil, err
	}
	hourly, err := s.visitRepo.HourlyDistribution(ctx, period, now)
	if err != nil {
		return nil, err
	}
	daily, err := s.visitRepo.DailyTrend(ctx, period, now)
	if err != nil {
		return nil, err
	}

	report := &model.OverviewReport{
		Overview:           *totals,
		DeviceBreakdown:    devices,
		BrowserBreakdown:   browsers,
		TopPages:           pages,
		HourlyDistribution: hourly,
		DailyTrend:         daily,
	}

	if cacheable && s.redisRepo != nil {
		if err := s.redisRepo.SaveOverviewReport(ctx, period, report); err != nil {
			log.Warn().Err(err).Str("period", period).Msg("Overview cache write failed")
		}
	}

	return report, nil
}

// RealTime reports the current calendar hour's counters plus the count of
// sessions active in the trailing thirty minutes
func (s *AnalyticsService) RealTime(ctx context.Context) (*model.RealTimeReport, error) {
	now := time.Now().UTC()

	currentHour, err := s.visitRepo.CurrentHourStats(ctx, now)
	if err != nil {
		return nil, err
	}

	active, err := s.visitRepo.ActiveSessions(ctx, now.Add(-activeSessionWindow))
	if err != nil {
		return nil, err
	}

	return &model.RealTimeReport{
		CurrentHour:    *currentHour,
		ActiveSessions: active,
		LastUpdated:    now.Format(time.RFC3339),
	}, nil
}

// Export dumps the filtered visit rows as CSV or JSON, newest first
func (s *AnalyticsService) Export(ctx context.Context, q *model.ExportQuery) (*model.ExportResult, error) {
	format := q.Format
	if format != model.ExportFormatCSV {
		format = model.ExportFormatJSON
	}

	visits, err := s.visitRepo.VisitsForExport(ctx, q.DateFrom, q.DateTo)
	if err != nil {
		return nil, err
	}

	result := &model.ExportResult{
		Format:     format,
		Visits:     visits,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if format == model.ExportFormatCSV {
		csvData, err := visitsToCSV(visits)
		if err != nil {
			return nil, err
		}
		result.CSV = csvData
	}

	return result, nil
}

// visitsToCSV renders rows with a fixed header matching the table columns.
// The csv writer handles quoting, so embedded commas and quotes survive a
// round trip.
func visitsToCSV(visits []model.Visit) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"id", "page_url", "page_title", "referrer", "ip_address", "user_agent",
		"country", "city", "device_type", "browser", "os", "screen_resolution",
		"language", "session_id", "visit_duration", "created_at",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, v := range visits {
		record := []string{
			strconv.FormatInt(v.ID, 10),
			v.PageURL,
			v.PageTitle,
			v.Referrer,
			v.IPAddress,
			v.UserAgent,
			v.Country,
			v.City,
			v.DeviceType,
			v.Browser,
			v.OS,
			v.ScreenResolution,
			v.Language,
			v.SessionID,
			strconv.Itoa(v.VisitDuration),
			v.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func validateTrackVisit(req *model.TrackVisitRequest) error {
	var errs ValidationErrors

	if !validPageURL(req.PageURL) {
		errs = errs.add("page_url", "رابط الصفحة غير صحيح")
	}
	if len([]rune(req.PageTitle)) > 200 {
		errs = errs.add("page_title", "عنوان الصفحة طويل جداً")
	}
	if len([]rune(req.Referrer)) > 500 {
		errs = errs.add("referrer", "المصدر طويل جداً")
	}
	if req.DeviceType != "" {
		switch req.DeviceType {
		case model.DeviceDesktop, model.DeviceMobile, model.DeviceTablet:
		default:
			errs = errs.add("device_type", "نوع الجهاز غير صحيح")
		}
	}
	if len([]rune(req.Browser)) > 100 {
		errs = errs.add("browser", "المتصفح طويل جداً")
	}
	if len([]rune(req.OS)) > 100 {
		errs = errs.add("os", "نظام التشغيل طويل جداً")
	}
	if req.ScreenResolution != "" && !screenResolutionRe.MatchString(req.ScreenResolution) {
		errs = errs.add("screen_resolution", "دقة الشاشة غير صحيحة")
	}
	if len([]rune(req.Language)) > 10 {
		errs = errs.add("language", "اللغة غير صحيحة")
	}

	return errs.orNil()
}

func validPageURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func knownPeriod(period string) bool {
	switch period {
	case model.PeriodDay, model.PeriodWeek, model.PeriodMonth, model.PeriodQuarter:
		return true
	}
	return false
}

// buildPagination derives page metadata from the pre-pagination match count
func buildPagination(page, limit int, total int64) model.Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return model.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}
