package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"kayan/internal/model"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kayan/internal/mocks"
)

func intPtr(n int) *int { return &n }

func TestNewAnalyticsService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
	mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

	svc := NewAnalyticsService(mockVisits, mockRedis)

	assert.NotNil(t, svc)
	assert.Equal(t, mockVisits, svc.visitRepo)
	assert.Equal(t, mockRedis, svc.redisRepo)
}

func TestAnalyticsService_TrackVisit(t *testing.T) {
	const chromeWindows = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	tests := []struct {
		name      string
		req       *model.TrackVisitRequest
		userAgent string
		setupMock func(*gomock.Controller) VisitRepositoryInterface
		check     func(*testing.T, *model.TrackVisitResponse, error)
	}{
		{
			name:      "missing page_url",
			req:       &model.TrackVisitRequest{},
			userAgent: chromeWindows,
			setupMock: func(ctrl *gomock.Controller) VisitRepositoryInterface {
				return mocks.NewMockVisitRepositoryInterface(ctrl)
			},
			check: func(t *testing.T, resp *model.TrackVisitResponse, err error) {
				var verrs ValidationErrors
				require.ErrorAs(t, err, &verrs)
				assert.Equal(t, "page_url", verrs[0].Field)
				assert.Nil(t, resp)
			},
		},
		{
			name: "relative page_url rejected",
			req:  &model.TrackVisitRequest{PageURL: "/products"},
			setupMock: func(ctrl *gomock.Controller) VisitRepositoryInterface {
				return mocks.NewMockVisitRepositoryInterface(ctrl)
			},
			check: func(t *testing.T, resp *model.TrackVisitResponse, err error) {
				var verrs ValidationErrors
				require.ErrorAs(t, err, &verrs)
				assert.Nil(t, resp)
			},
		},
		{
			name: "invalid device_type and screen_resolution collected together",
			req: &model.TrackVisitRequest{
				PageURL:          "https://kayanfactory.com/",
				DeviceType:       "watch",
				ScreenResolution: "wide",
			},
			setupMock: func(ctrl *gomock.Controller) VisitRepositoryInterface {
				return mocks.NewMockVisitRepositoryInterface(ctrl)
			},
			check: func(t *testing.T, resp *model.TrackVisitResponse, err error) {
				var verrs ValidationErrors
				require.ErrorAs(t, err, &verrs)
				assert.Len(t, verrs, 2)
			},
		},
		{
			name:      "user agent fills device browser and os",
			req:       &model.TrackVisitRequest{PageURL: "https://kayanfactory.com/products"},
			userAgent: chromeWindows,
			setupMock: func(ctrl *gomock.Controller) VisitRepositoryInterface {
				mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
				mockVisits.EXPECT().SaveVisit(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, v *model.Visit) error {
						assert.Equal(t, model.DeviceDesktop, v.DeviceType)
						assert.Equal(t, "Chrome", v.Browser)
						assert.Equal(t, "Windows", v.OS)
						assert.Equal(t, "ar", v.Language)
						assert.NotEmpty(t, v.SessionID)
						v.ID = 7
						v.CreatedAt = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
						return nil
					})
				return mockVisits
			},
			check: func(t *testing.T, resp *model.TrackVisitResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(7), resp.VisitID)
				assert.NotEmpty(t, resp.SessionID)
				assert.Equal(t, "2026-03-10T14:00:00Z", resp.Timestamp)
			},
		},
		{
			name: "client fields override user agent classification",
			req: &model.TrackVisitRequest{
				PageURL:    "https://kayanfactory.com/",
				DeviceType: model.DeviceTablet,
				Browser:    "Firefox",
				OS:         "Linux",
				Language:   "en",
				SessionID:  "sess-42",
			},
			userAgent: chromeWindows,
			setupMock: func(ctrl *gomock.Controller) VisitRepositoryInterface {
				mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
				mockVisits.EXPECT().SaveVisit(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, v *model.Visit) error {
						assert.Equal(t, model.DeviceTablet, v.DeviceType)
						assert.Equal(t, "Firefox", v.Browser)
						assert.Equal(t, "Linux", v.OS)
						assert.Equal(t, "en", v.Language)
						assert.Equal(t, "sess-42", v.SessionID)
						return nil
					})
				return mockVisits
			},
			check: func(t *testing.T, resp *model.TrackVisitResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, "sess-42", resp.SessionID)
			},
		},
		{
			name: "save error propagates",
			req:  &model.TrackVisitRequest{PageURL: "https://kayanfactory.com/"},
			setupMock: func(ctrl *gomock.Controller) VisitRepositoryInterface {
				mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
				mockVisits.EXPECT().SaveVisit(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
				return mockVisits
			},
			check: func(t *testing.T, resp *model.TrackVisitResponse, err error) {
				assert.EqualError(t, err, "disk full")
				assert.Nil(t, resp)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewAnalyticsService(tt.setupMock(ctrl), nil)
			resp, err := svc.TrackVisit(context.Background(), tt.req, "203.0.113.9", tt.userAgent)
			tt.check(t, resp, err)
		})
	}
}

func TestAnalyticsService_UpdateDuration(t *testing.T) {
	tests := []struct {
		name      string
		req       *model.UpdateDurationRequest
		setupMock func(*gomock.Controller) VisitRepositoryInterface
		wantErr   error
	}{
		{
			name: "missing duration",
			req:  &model.UpdateDurationRequest{},
			setupMock: func(ctrl *gomock.Controller) VisitRepositoryInterface {
				return mocks.NewMockVisitRepositoryInterface(ctrl)
			},
			wantErr: ValidationErrors{}.add("duration", "مدة الزيارة غير صحيحة"),
		},
		{
			name: "negative duration",
			req:  &model.UpdateDurationRequest{Duration: intPtr(-3)},
			setupMock: func(ctrl *gomock.Controller) VisitRepositoryInterface {
				return mocks.NewMockVisitRepositoryInterface(ctrl)
			},
			wantErr: ValidationErrors{}.add("duration", "مدة الزيارة غير صحيحة"),
		},
		{
			name: "zero duration is a valid bounce",
			req:  &model.UpdateDurationRequest{Duration: intPtr(0)},
			setupMock: func(ctrl *gomock.Controller) VisitRepositoryInterface {
				mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
				mockVisits.EXPECT().UpdateVisitDuration(gomock.Any(), int64(5), 0).Return(int64(1), nil)
				return mockVisits
			},
		},
		{
			name: "unknown visit",
			req:  &model.UpdateDurationRequest{Duration: intPtr(30)},
			setupMock: func(ctrl *gomock.Controller) VisitRepositoryInterface {
				mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
				mockVisits.EXPECT().UpdateVisitDuration(gomock.Any(), int64(5), 30).Return(int64(0), nil)
				return mockVisits
			},
			wantErr: ErrNotFound,
		},
		{
			name: "repository error propagates",
			req:  &model.UpdateDurationRequest{Duration: intPtr(30)},
			setupMock: func(ctrl *gomock.Controller) VisitRepositoryInterface {
				mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
				mockVisits.EXPECT().UpdateVisitDuration(gomock.Any(), int64(5), 30).Return(int64(0), errors.New("locked"))
				return mockVisits
			},
			wantErr: errors.New("locked"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewAnalyticsService(tt.setupMock(ctrl), nil)
			err := svc.UpdateDuration(context.Background(), 5, tt.req)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalyticsService_ListVisits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
	mockVisits.EXPECT().ListVisits(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q *model.VisitListQuery) ([]model.Visit, int64, error) {
			// defaults applied before the repository sees the query
			assert.Equal(t, 1, q.Page)
			assert.Equal(t, 50, q.Limit)
			return []model.Visit{{ID: 1}, {ID: 2}}, 120, nil
		})

	svc := NewAnalyticsService(mockVisits, nil)
	list, err := svc.ListVisits(context.Background(), &model.VisitListQuery{})

	require.NoError(t, err)
	assert.Len(t, list.Visits, 2)
	assert.Equal(t, int64(120), list.Pagination.Total)
	assert.Equal(t, 3, list.Pagination.Pages)
}

func TestAnalyticsService_Overview(t *testing.T) {
	report := &model.OverviewReport{
		Overview: model.OverviewTotals{TotalVisits: 42, UniqueSessions: 10},
		DeviceBreakdown: []model.DeviceStat{
			{DeviceType: model.DeviceMobile, Count: 30},
		},
	}

	t.Run("cache hit short-circuits the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)
		mockRedis.EXPECT().GetOverviewReport(gomock.Any(), model.PeriodWeek).Return(report, nil)

		svc := NewAnalyticsService(mockVisits, mockRedis)
		got, err := svc.Overview(context.Background(), model.PeriodWeek)

		require.NoError(t, err)
		assert.Equal(t, report, got)
	})

	t.Run("absent period reads all-time and bypasses the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

		// empty period reaches the repository unchanged, so no date window
		// applies and no cache key exists for it
		mockVisits.EXPECT().OverviewTotals(gomock.Any(), "", gomock.Any()).Return(&model.OverviewTotals{}, nil)
		mockVisits.EXPECT().DeviceBreakdown(gomock.Any(), "", gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().BrowserBreakdown(gomock.Any(), "", gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().TopPages(gomock.Any(), "", gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().HourlyDistribution(gomock.Any(), "", gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().DailyTrend(gomock.Any(), "", gomock.Any()).Return(nil, nil)

		svc := NewAnalyticsService(mockVisits, mockRedis)
		_, err := svc.Overview(context.Background(), "")

		require.NoError(t, err)
	})

	t.Run("cache miss assembles and caches the report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

		mockRedis.EXPECT().GetOverviewReport(gomock.Any(), model.PeriodMonth).Return(nil, nil)
		mockVisits.EXPECT().OverviewTotals(gomock.Any(), model.PeriodMonth, gomock.Any()).Return(&report.Overview, nil)
		mockVisits.EXPECT().DeviceBreakdown(gomock.Any(), model.PeriodMonth, gomock.Any()).Return(report.DeviceBreakdown, nil)
		mockVisits.EXPECT().BrowserBreakdown(gomock.Any(), model.PeriodMonth, gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().TopPages(gomock.Any(), model.PeriodMonth, gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().HourlyDistribution(gomock.Any(), model.PeriodMonth, gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().DailyTrend(gomock.Any(), model.PeriodMonth, gomock.Any()).Return(nil, nil)
		mockRedis.EXPECT().SaveOverviewReport(gomock.Any(), model.PeriodMonth, gomock.Any()).Return(nil)

		svc := NewAnalyticsService(mockVisits, mockRedis)
		got, err := svc.Overview(context.Background(), model.PeriodMonth)

		require.NoError(t, err)
		assert.Equal(t, int64(42), got.Overview.TotalVisits)
		assert.Len(t, got.DeviceBreakdown, 1)
	})

	t.Run("unknown period bypasses the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

		// no GetOverviewReport / SaveOverviewReport expectations
		mockVisits.EXPECT().OverviewTotals(gomock.Any(), "all", gomock.Any()).Return(&model.OverviewTotals{}, nil)
		mockVisits.EXPECT().DeviceBreakdown(gomock.Any(), "all", gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().BrowserBreakdown(gomock.Any(), "all", gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().TopPages(gomock.Any(), "all", gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().HourlyDistribution(gomock.Any(), "all", gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().DailyTrend(gomock.Any(), "all", gomock.Any()).Return(nil, nil)

		svc := NewAnalyticsService(mockVisits, mockRedis)
		_, err := svc.Overview(context.Background(), "all")

		require.NoError(t, err)
	})

	t.Run("cache errors fall through to the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
		mockRedis := mocks.NewMockRedisRepositoryInterface(ctrl)

		mockRedis.EXPECT().GetOverviewReport(gomock.Any(), model.PeriodDay).Return(nil, errors.New("redis down"))
		mockVisits.EXPECT().OverviewTotals(gomock.Any(), model.PeriodDay, gomock.Any()).Return(&model.OverviewTotals{}, nil)
		mockVisits.EXPECT().DeviceBreakdown(gomock.Any(), model.PeriodDay, gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().BrowserBreakdown(gomock.Any(), model.PeriodDay, gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().TopPages(gomock.Any(), model.PeriodDay, gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().HourlyDistribution(gomock.Any(), model.PeriodDay, gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().DailyTrend(gomock.Any(), model.PeriodDay, gomock.Any()).Return(nil, nil)
		mockRedis.EXPECT().SaveOverviewReport(gomock.Any(), model.PeriodDay, gomock.Any()).Return(errors.New("redis down"))

		svc := NewAnalyticsService(mockVisits, mockRedis)
		_, err := svc.Overview(context.Background(), model.PeriodDay)

		require.NoError(t, err)
	})

	t.Run("nil cache repository is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
		mockVisits.EXPECT().OverviewTotals(gomock.Any(), model.PeriodWeek, gomock.Any()).Return(&model.OverviewTotals{}, nil)
		mockVisits.EXPECT().DeviceBreakdown(gomock.Any(), model.PeriodWeek, gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().BrowserBreakdown(gomock.Any(), model.PeriodWeek, gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().TopPages(gomock.Any(), model.PeriodWeek, gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().HourlyDistribution(gomock.Any(), model.PeriodWeek, gomock.Any()).Return(nil, nil)
		mockVisits.EXPECT().DailyTrend(gomock.Any(), model.PeriodWeek, gomock.Any()).Return(nil, nil)

		svc := NewAnalyticsService(mockVisits, nil)
		_, err := svc.Overview(context.Background(), model.PeriodWeek)

		require.NoError(t, err)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
		mockVisits.EXPECT().OverviewTotals(gomock.Any(), model.PeriodWeek, gomock.Any()).Return(nil, errors.New("query failed"))

		svc := NewAnalyticsService(mockVisits, nil)
		_, err := svc.Overview(context.Background(), model.PeriodWeek)

		assert.EqualError(t, err, "query failed")
	})
}

func TestAnalyticsService_RealTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
	mockVisits.EXPECT().CurrentHourStats(gomock.Any(), gomock.Any()).Return(&model.CurrentHourStats{
		VisitsLastHour:         5,
		UniqueSessionsLastHour: 3,
		UniqueVisitorsLastHour: 2,
	}, nil)
	mockVisits.EXPECT().ActiveSessions(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, since time.Time) (int64, error) {
			assert.WithinDuration(t, time.Now().UTC().Add(-30*time.Minute), since, 2*time.Second)
			return 4, nil
		})

	svc := NewAnalyticsService(mockVisits, nil)
	report, err := svc.RealTime(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(5), report.CurrentHour.VisitsLastHour)
	assert.Equal(t, int64(4), report.ActiveSessions)
	assert.NotEmpty(t, report.LastUpdated)
}

func TestAnalyticsService_Export(t *testing.T) {
	visits := []model.Visit{
		{
			ID:        1,
			PageURL:   "https://kayanfactory.com/products",
			PageTitle: `منتجات, "كيان"`,
			SessionID: "sess-1",
			CreatedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:            2,
			PageURL:       "https://kayanfactory.com/",
			SessionID:     "sess-2",
			VisitDuration: 30,
			CreatedAt:     time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
		},
	}

	t.Run("json is the default format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
		mockVisits.EXPECT().VisitsForExport(gomock.Any(), "", "").Return(visits, nil)

		svc := NewAnalyticsService(mockVisits, nil)
		result, err := svc.Export(context.Background(), &model.ExportQuery{Format: "xml"})

		require.NoError(t, err)
		assert.Equal(t, model.ExportFormatJSON, result.Format)
		assert.Nil(t, result.CSV)
		assert.Len(t, result.Visits, 2)
		assert.NotEmpty(t, result.ExportedAt)
	})

	t.Run("csv survives a round trip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
		mockVisits.EXPECT().VisitsForExport(gomock.Any(), "2026-03-01", "2026-03-31").Return(visits, nil)

		svc := NewAnalyticsService(mockVisits, nil)
		result, err := svc.Export(context.Background(), &model.ExportQuery{
			Format:   model.ExportFormatCSV,
			DateFrom: "2026-03-01",
			DateTo:   "2026-03-31",
		})

		require.NoError(t, err)
		assert.Equal(t, model.ExportFormatCSV, result.Format)

		records, err := csv.NewReader(bytes.NewReader(result.CSV)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "id", records[0][0])
		assert.Equal(t, "created_at", records[0][15])
		assert.Equal(t, `منتجات, "كيان"`, records[1][2])
		assert.Equal(t, "30", records[2][14])
		assert.Equal(t, "2026-03-10T09:00:00Z", records[1][15])
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockVisits := mocks.NewMockVisitRepositoryInterface(ctrl)
		mockVisits.EXPECT().VisitsForExport(gomock.Any(), "", "").Return(nil, errors.New("query failed"))

		svc := NewAnalyticsService(mockVisits, nil)
		_, err := svc.Export(context.Background(), &model.ExportQuery{})

		assert.EqualError(t, err, "query failed")
	})
}

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPages int
	}{
		{"empty", 1, 20, 0, 0},
		{"exact fit", 1, 20, 40, 2},
		{"partial last page", 2, 20, 41, 3},
		{"single row", 1, 10, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := buildPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantPages, p.Pages)
		})
	}
}
