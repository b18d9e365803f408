package repository

import (
	"context"

	"kayan/internal/model"
)

// SaveEmailLog records a notification delivery attempt, successful or not
func (r *SQLiteRepository) SaveEmailLog(ctx context.Context, l *model.EmailLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}
