package repository

import (
	"context"
	"errors"
	"time"

	"kayan/internal/model"

	"gorm.io/gorm"
)

// SaveContactMessage persists a contact form submission
func (r *SQLiteRepository) SaveContactMessage(ctx context.Context, m *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// GetContactMessage loads one message by id. Returns gorm.ErrRecordNotFound
// when no row matches.
func (r *SQLiteRepository) GetContactMessage(ctx context.Context, id int64) (*model.ContactMessage, error) {
	var m model.ContactMessage
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ListContactMessages returns one page of messages, newest first, optionally
// filtered by status, plus the pre-pagination match count
func (r *SQLiteRepository) ListContactMessages(ctx context.Context, q *model.ContactListQuery) ([]model.ContactMessage, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if q.Status != "" && q.Status != "all" {
			db = db.Where("status = ?", q.Status)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.ContactMessage{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []model.ContactMessage
	err := r.db.WithContext(ctx).
		Scopes(scope).
		Order("created_at DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&messages).Error
	return messages, total, err
}

// UpdateContactStatus moves a message through the moderation workflow.
// responded_at is stamped when the new status is "replied" and cleared for
// any other status.
func (r *SQLiteRepository) UpdateContactStatus(ctx context.Context, id int64, status, response string, now time.Time) (int64, error) {
	updates := map[string]interface{}{
		"status":   status,
		"response": response,
	}
	if status == model.ContactStatusReplied {
		updates["responded_at"] = now
	} else {
		updates["responded_at"] = nil
	}
	result := r.db.WithContext(ctx).
		Model(&model.ContactMessage{}).
		Where("id = ?", id).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// DeleteContactMessage removes one message by id
func (r *SQLiteRepository) DeleteContactMessage(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.ContactMessage{}, id)
	return result.RowsAffected, result.Error
}

// ContactStats computes the inbox summary in a single pass over the table
func (r *SQLiteRepository) ContactStats(ctx context.Context, now time.Time) (*model.ContactStats, error) {
	var stats model.ContactStats
	today := now.Format(dateLayout)
	weekAgo := now.AddDate(0, 0, -7).Format(dateLayout)
	err := r.db.WithContext(ctx).
		Model(&model.ContactMessage{}).
		Select(`COUNT(*) as total,
			COALESCE(SUM(CASE WHEN status = 'new' THEN 1 ELSE 0 END), 0) as new_messages,
			COALESCE(SUM(CASE WHEN status = 'read' THEN 1 ELSE 0 END), 0) as read_messages,
			COALESCE(SUM(CASE WHEN status = 'replied' THEN 1 ELSE 0 END), 0) as replied_messages,
			COALESCE(SUM(CASE WHEN status = 'closed' THEN 1 ELSE 0 END), 0) as closed_messages,
			COALESCE(SUM(CASE WHEN DATE(created_at) = ? THEN 1 ELSE 0 END), 0) as today_messages,
			COALESCE(SUM(CASE WHEN DATE(created_at) >= ? THEN 1 ELSE 0 END), 0) as week_messages`,
			today, weekAgo).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// IsRecordNotFound reports whether err is the backend's missing-row error
func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
