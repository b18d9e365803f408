package repository

import (
	"context"
	"time"

	"kayan/internal/model"

	"gorm.io/gorm"
)

// testimonialOrder maps a sort mode to its ORDER BY clause, defaulting to
// newest first
func testimonialOrder(sort string) string {
	switch sort {
	case model.SortOldest:
		return "created_at ASC"
	case model.SortRatingHigh:
		return "rating DESC, created_at DESC"
	case model.SortRatingLow:
		return "rating ASC, created_at DESC"
	default:
		return "created_at DESC"
	}
}

// SaveTestimonial persists a submitted review, unapproved
func (r *SQLiteRepository) SaveTestimonial(ctx context.Context, t *model.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// RecentTestimonialsByIP counts submissions from one address after the
// cutoff. The per-address submission throttle reads this before inserting.
func (r *SQLiteRepository) RecentTestimonialsByIP(ctx context.Context, ip string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Testimonial{}).
		Where("ip_address = ? AND created_at > ?", ip, since).
		Count(&count).Error
	return count, err
}

// ListTestimonials returns one page of reviews under the given filters and
// sort mode, plus the pre-pagination match count
func (r *SQLiteRepository) ListTestimonials(ctx context.Context, q *model.TestimonialListQuery) ([]model.Testimonial, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		switch q.Status {
		case "approved":
			db = db.Where("approved = ?", true)
		case "pending":
			db = db.Where("approved = ?", false)
		}
		if q.Service != "" && q.Service != "all" {
			db = db.Where("service = ?", q.Service)
		}
		if q.Rating != "" && q.Rating != "all" {
			db = db.Where("rating = ?", q.Rating)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Testimonial{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var testimonials []model.Testimonial
	err := r.db.WithContext(ctx).
		Scopes(scope).
		Order(testimonialOrder(q.Sort)).
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&testimonials).Error
	return testimonials, total, err
}

// ListApprovedTestimonials returns the newest approved reviews up to limit,
// optionally restricted to one service
func (r *SQLiteRepository) ListApprovedTestimonials(ctx context.Context, service string, limit int) ([]model.Testimonial, error) {
	query := r.db.WithContext(ctx).Where("approved = ?", true)
	if service != "" && service != "all" {
		query = query.Where("service = ?", service)
	}
	var testimonials []model.Testimonial
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&testimonials).Error
	return testimonials, err
}

// ApprovedRatingSummary averages the ratings of approved reviews
func (r *SQLiteRepository) ApprovedRatingSummary(ctx context.Context) (*model.RatingSummary, error) {
	var summary model.RatingSummary
	err := r.db.WithContext(ctx).
		Model(&model.Testimonial{}).
		Where("approved = ?", true).
		Select("COALESCE(AVG(rating), 0) as average_rating, COUNT(*) as total_approved").
		Scan(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// SetTestimonialApproval flips the moderation flag. approved_at is stamped on
// approval and cleared on revocation; admin notes are overwritten either way.
func (r *SQLiteRepository) SetTestimonialApproval(ctx context.Context, id int64, approved bool, adminNotes string, now time.Time) (int64, error) {
	updates := map[string]interface{}{
		"approved":    approved,
		"admin_notes": adminNotes,
	}
	if approved {
		updates["approved_at"] = now
	} else {
		updates["approved_at"] = gorm.Expr("NULL")
	}
	result := r.db.WithContext(ctx).
		Model(&model.Testimonial{}).
		Where("id = ?", id).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// DeleteTestimonial removes one review by id
func (r *SQLiteRepository) DeleteTestimonial(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.Testimonial{}, id)
	return result.RowsAffected, result.Error
}

// TestimonialStats computes moderation and rating aggregates in one pass,
// plus the per-service breakdown
func (r *SQLiteRepository) TestimonialStats(ctx context.Context, now time.Time) (*model.TestimonialStats, error) {
	var stats model.TestimonialStats
	today := now.Format(dateLayout)
	weekAgo := now.AddDate(0, 0, -7).Format(dateLayout)
	err := r.db.WithContext(ctx).
		Model(&model.Testimonial{}).
		Select(`COUNT(*) as total,
			COALESCE(SUM(CASE WHEN approved = 1 THEN 1 ELSE 0 END), 0) as approved,
			COALESCE(SUM(CASE WHEN approved = 0 THEN 1 ELSE 0 END), 0) as pending,
			COALESCE(AVG(rating), 0) as average_rating,
			COALESCE(SUM(CASE WHEN rating = 5 THEN 1 ELSE 0 END), 0) as five_stars,
			COALESCE(SUM(CASE WHEN rating = 4 THEN 1 ELSE 0 END), 0) as four_stars,
			COALESCE(SUM(CASE WHEN rating = 3 THEN 1 ELSE 0 END), 0) as three_stars,
			COALESCE(SUM(CASE WHEN rating = 2 THEN 1 ELSE 0 END), 0) as two_stars,
			COALESCE(SUM(CASE WHEN rating = 1 THEN 1 ELSE 0 END), 0) as one_star,
			COALESCE(SUM(CASE WHEN DATE(created_at) = ? THEN 1 ELSE 0 END), 0) as today,
			COALESCE(SUM(CASE WHEN DATE(created_at) >= ? THEN 1 ELSE 0 END), 0) as this_week`,
			today, weekAgo).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	breakdown := []model.ServiceStat{}
	err = r.db.WithContext(ctx).
		Model(&model.Testimonial{}).
		Where("approved = ?", true).
		Select("service, COUNT(*) as count, COALESCE(AVG(rating), 0) as avg_rating").
		Group("service").
		Order("count DESC").
		Scan(&breakdown).Error
	if err != nil {
		return nil, err
	}
	stats.ServiceBreakdown = breakdown
	return &stats, nil
}
