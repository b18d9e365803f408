package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"kayan/internal/config"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kayan/internal/mocks"
)

func TestRetentionService_Start(t *testing.T) {
	t.Run("disabled config is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewRetentionService(mocks.NewMockVisitRepositoryInterface(ctrl), &config.RetentionConfig{Enabled: false})
		require.NoError(t, svc.Start())
		svc.Stop()
	})

	t.Run("bad schedule is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewRetentionService(mocks.NewMockVisitRepositoryInterface(ctrl), &config.RetentionConfig{
			Enabled:  true,
			Days:     90,
			Schedule: "not a schedule",
		})
		assert.Error(t, svc.Start())
	})

	t.Run("valid schedule starts and stops cleanly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewRetentionService(mocks.NewMockVisitRepositoryInterface(ctrl), &config.RetentionConfig{
			Enabled:  true,
			Days:     90,
			Schedule: "0 3 * * *",
		})
		require.NoError(t, svc.Start())
		svc.Stop()
	})
}

func TestRetentionService_Purge(t *testing.T) {
	t.Run("deletes rows past the horizon", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
		mockVisits.EXPECT().DeleteVisitsBefore(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cutoff time.Time) (int64, error) {
				assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, -90), cutoff, 2*time.Second)
				return 12, nil
			})

		svc := NewRetentionService(mockVisits, &config.RetentionConfig{Enabled: true, Days: 90})
		svc.Purge()
	})

	t.Run("repository error is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
		mockVisits.EXPECT().DeleteVisitsBefore(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("locked"))

		svc := NewRetentionService(mockVisits, &config.RetentionConfig{Enabled: true, Days: 30})
		svc.Purge()
	})
}
