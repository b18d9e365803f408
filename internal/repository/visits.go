package repository

import (
	"context"
	"time"

	"kayan/internal/model"

	"gorm.io/gorm"
)

// visitPeriodScope narrows a visit query to the trailing window named by
// period. "1d" means today's calendar date; 7d/30d/90d mean dates not older
// than N days before now. Anything else leaves the query unfiltered.
func visitPeriodScope(period string, now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch period {
		case model.PeriodDay:
			return db.Where("DATE(created_at) = ?", now.Format(dateLayout))
		case model.PeriodWeek:
			return db.Where("DATE(created_at) >= ?", now.AddDate(0, 0, -7).Format(dateLayout))
		case model.PeriodMonth:
			return db.Where("DATE(created_at) >= ?", now.AddDate(0, 0, -30).Format(dateLayout))
		case model.PeriodQuarter:
			return db.Where("DATE(created_at) >= ?", now.AddDate(0, 0, -90).Format(dateLayout))
		default:
			return db
		}
	}
}

// visitFilterScope applies the AND-combined optional filters of a visit
// listing or export
func visitFilterScope(dateFrom, dateTo, deviceType, pageURL string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if dateFrom != "" {
			db = db.Where("DATE(created_at) >= ?", dateFrom)
		}
		if dateTo != "" {
			db = db.Where("DATE(created_at) <= ?", dateTo)
		}
		if deviceType != "" && deviceType != "all" {
			db = db.Where("device_type = ?", deviceType)
		}
		if pageURL != "" {
			db = db.Where("page_url LIKE ?", "%"+pageURL+"%")
		}
		return db
	}
}

// SaveVisit persists a visit row; the id and created_at fields are filled in
// by the database
func (r *SQLiteRepository) SaveVisit(ctx context.Context, v *model.Visit) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// UpdateVisitDuration sets visit_duration on one row, last write wins.
// Returns the number of affected rows so the caller can distinguish a miss.
func (r *SQLiteRepository) UpdateVisitDuration(ctx context.Context, id int64, seconds int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Visit{}).
		Where("id = ?", id).
		Update("visit_duration", seconds)
	return result.RowsAffected, result.Error
}

// ListVisits returns one page of filtered visits, newest first, plus the
// pre-pagination match count
func (r *SQLiteRepository) ListVisits(ctx context.Context, q *model.VisitListQuery) ([]model.Visit, int64, error) {
	scope := visitFilterScope(q.DateFrom, q.DateTo, q.DeviceType, q.PageURL)

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Visit{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var visits []model.Visit
	err := r.db.WithContext(ctx).
		Scopes(scope).
		Order("created_at DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&visits).Error
	return visits, total, err
}

// VisitsForExport returns the full filtered row set, newest first
func (r *SQLiteRepository) VisitsForExport(ctx context.Context, dateFrom, dateTo string) ([]model.Visit, error) {
	var visits []model.Visit
	err := r.db.WithContext(ctx).
		Scopes(visitFilterScope(dateFrom, dateTo, "", "")).
		Order("created_at DESC").
		Find(&visits).Error
	return visits, err
}

// overviewTotalsRow keeps the AVG unrounded; rounding happens in the service
type overviewTotalsRow struct {
	TotalVisits    int64
	UniqueSessions int64
	UniqueVisitors int64
	AvgDuration    float64
	UniquePages    int64
}

// OverviewTotals computes the headline counters over the period window
func (r *SQLiteRepository) OverviewTotals(ctx context.Context, period string, now time.Time) (*model.OverviewTotals, error) {
	var row overviewTotalsRow
	err := r.db.WithContext(ctx).
		Model(&model.Visit{}).
		Scopes(visitPeriodScope(period, now)).
		Select(`COUNT(*) as total_visits,
			COUNT(DISTINCT session_id) as unique_sessions,
			COUNT(DISTINCT ip_address) as unique_visitors,
			COALESCE(AVG(visit_duration), 0) as avg_duration,
			COUNT(DISTINCT page_url) as unique_pages`).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &model.OverviewTotals{
		TotalVisits:    row.TotalVisits,
		UniqueSessions: row.UniqueSessions,
		UniqueVisitors: row.UniqueVisitors,
		AvgDuration:    int64(row.AvgDuration + 0.5),
		UniquePages:    row.UniquePages,
	}, nil
}

// DeviceBreakdown counts visits per device type, descending
func (r *SQLiteRepository) DeviceBreakdown(ctx context.Context, period string, now time.Time) ([]model.DeviceStat, error) {
	stats := []model.DeviceStat{}
	err := r.db.WithContext(ctx).
		Model(&model.Visit{}).
		Scopes(visitPeriodScope(period, now)).
		Select("device_type, COUNT(*) as count").
		Group("device_type").
		Order("count DESC").
		Scan(&stats).Error
	return stats, err
}

// BrowserBreakdown counts visits per browser family, descending, top ten
func (r *SQLiteRepository) BrowserBreakdown(ctx context.Context, period string, now time.Time) ([]model.BrowserStat, error) {
	stats := []model.BrowserStat{}
	err := r.db.WithContext(ctx).
		Model(&model.Visit{}).
		Scopes(visitPeriodScope(period, now)).
		Select("browser, COUNT(*) as count").
		Group("browser").
		Order("count DESC").
		Limit(10).
		Scan(&stats).Error
	return stats, err
}

// TopPages counts visits per page, descending, top ten
func (r *SQLiteRepository) TopPages(ctx context.Context, period string, now time.Time) ([]model.PageStat, error) {
	stats := []model.PageStat{}
	err := r.db.WithContext(ctx).
		Model(&model.Visit{}).
		Scopes(visitPeriodScope(period, now)).
		Select("page_url, page_title, COUNT(*) as visits").
		Group("page_url").
		Order("visits DESC").
		Limit(10).
		Scan(&stats).Error
	return stats, err
}

// HourlyDistribution counts visits per hour of day, ascending by hour.
// Hours without visits are absent from the result.
func (r *SQLiteRepository) HourlyDistribution(ctx context.Context, period string, now time.Time) ([]model.HourStat, error) {
	stats := []model.HourStat{}
	err := r.db.WithContext(ctx).
		Model(&model.Visit{}).
		Scopes(visitPeriodScope(period, now)).
		Select("strftime('%H', created_at) as hour, COUNT(*) as visits").
		Group("hour").
		Order("hour ASC").
		Scan(&stats).Error
	return stats, err
}

// DailyTrend counts visits per calendar date, most recent thirty dates,
// descending
func (r *SQLiteRepository) DailyTrend(ctx context.Context, period string, now time.Time) ([]model.DayStat, error) {
	stats := []model.DayStat{}
	err := r.db.WithContext(ctx).
		Model(&model.Visit{}).
		Scopes(visitPeriodScope(period, now)).
		Select("DATE(created_at) as date, COUNT(*) as visits").
		Group("date").
		Order("date DESC").
		Limit(30).
		Scan(&stats).Error
	return stats, err
}

// CurrentHourStats counts visits inside the current calendar hour: hour of
// day AND date must both match "now". A visit at 13:59:59 drops out the
// moment the clock reads 14:00:00.
func (r *SQLiteRepository) CurrentHourStats(ctx context.Context, now time.Time) (*model.CurrentHourStats, error) {
	var stats model.CurrentHourStats
	err := r.db.WithContext(ctx).
		Model(&model.Visit{}).
		Where("strftime('%H', created_at) = ? AND DATE(created_at) = ?",
			now.Format("15"), now.Format(dateLayout)).
		Select(`COUNT(*) as visits_last_hour,
			COUNT(DISTINCT session_id) as unique_sessions_last_hour,
			COUNT(DISTINCT ip_address) as unique_visitors_last_hour`).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ActiveSessions counts distinct sessions with at least one visit after the
// cutoff (a genuine trailing window, unlike the hourly counters)
func (r *SQLiteRepository) ActiveSessions(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Visit{}).
		Where("created_at > ?", since).
		Distinct("session_id").
		Count(&count).Error
	return count, err
}

// DeleteVisitsBefore bulk-purges visit rows older than the cutoff
func (r *SQLiteRepository) DeleteVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.Visit{})
	return result.RowsAffected, result.Error
}
