package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kayan/internal/model"
)

func TestSQLiteRepository_SaveEmailLog(t *testing.T) {
	repo := newSQLiteTestRepo(t)
	ctx := context.Background()

	l := &model.EmailLog{
		ToEmail:   "admin@example.com",
		Subject:   "رسالة تواصل جديدة",
		Type:      model.EmailTypeContactNotification,
		Status:    model.EmailStatusSent,
		RelatedID: 7,
	}

	err := repo.SaveEmailLog(ctx, l)
	require.NoError(t, err)
	assert.NotZero(t, l.ID)
	assert.False(t, l.SentAt.IsZero())

	failed := &model.EmailLog{
		ToEmail:      "admin@example.com",
		Subject:      "تقييم جديد",
		Type:         model.EmailTypeTestimonialNotification,
		Status:       model.EmailStatusFailed,
		ErrorMessage: "dial tcp: connection refused",
	}
	require.NoError(t, repo.SaveEmailLog(ctx, failed))
	assert.NotZero(t, failed.ID)
}
