package model

// Overview periods accepted by GET /api/analytics/stats/overview. Anything
// else means no date filter (all-time).
const (
	PeriodDay     = "1d"
	PeriodWeek    = "7d"
	PeriodMonth   = "30d"
	PeriodQuarter = "90d"
)

// OverviewTotals is the headline row of the overview report
type OverviewTotals struct {
	TotalVisits    int64 `json:"total_visits"`
	UniqueSessions int64 `json:"unique_sessions"`
	UniqueVisitors int64 `json:"unique_visitors"`
	AvgDuration    int64 `json:"avg_duration"`
	UniquePages    int64 `json:"unique_pages"`
}

// DeviceStat is one slice of the device breakdown
type DeviceStat struct {
	DeviceType string `json:"device_type"`
	Count      int64  `json:"count"`
}

// BrowserStat is one slice of the browser breakdown
type BrowserStat struct {
	Browser string `json:"browser"`
	Count   int64  `json:"count"`
}

// PageStat is one entry of the most-visited pages list
type PageStat struct {
	PageURL   string `json:"page_url"`
	PageTitle string `json:"page_title"`
	Visits    int64  `json:"visits"`
}

// HourStat is the visit count for one hour of day (zero-padded "00".."23").
// Hours with no visits are absent from the distribution.
type HourStat struct {
	Hour   string `json:"hour"`
	Visits int64  `json:"visits"`
}

// DayStat is the visit count for one calendar date
type DayStat struct {
	Date   string `json:"date"`
	Visits int64  `json:"visits"`
}

// OverviewReport is the six-part answer of GET /api/analytics/stats/overview
type OverviewReport struct {
	Overview           OverviewTotals `json:"overview"`
	DeviceBreakdown    []DeviceStat   `json:"device_breakdown"`
	BrowserBreakdown   []BrowserStat  `json:"browser_breakdown"`
	TopPages           []PageStat     `json:"top_pages"`
	HourlyDistribution []HourStat     `json:"hourly_distribution"`
	DailyTrend         []DayStat      `json:"daily_trend"`
}

// CurrentHourStats counts visits whose created_at falls inside the current
// calendar hour. This is hour-of-day plus date equality against "now", not a
// trailing sixty minutes.
type CurrentHourStats struct {
	VisitsLastHour         int64 `json:"visits_last_hour"`
	UniqueSessionsLastHour int64 `json:"unique_sessions_last_hour"`
	UniqueVisitorsLastHour int64 `json:"unique_visitors_last_hour"`
}

// RealTimeReport is the answer of GET /api/analytics/stats/real-time
type RealTimeReport struct {
	CurrentHour    CurrentHourStats `json:"current_hour"`
	ActiveSessions int64            `json:"active_sessions"`
	LastUpdated    string           `json:"last_updated"`
}
