package handler

import (
	"net/http"
	"strconv"

	"kayan/internal/model"
	"kayan/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler handles visit tracking and reporting endpoints
type AnalyticsHandler struct {
	service service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(service service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Track handles POST /api/analytics/visit
// @Summary Record a page visit
// @Description Stores one page view, deriving device, browser and OS from the User-Agent when absent
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body model.TrackVisitRequest true "Visit details"
// @Success 201 {object} Response{data=model.TrackVisitResponse}
// @Router /api/analytics/visit [post]
func (h *AnalyticsHandler) Track(c *gin.Context) {
	var req model.TrackVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "بيانات غير صحيحة")
		return
	}

	resp, err := h.service.TrackVisit(c.Request.Context(), &req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondError(c, err, "", "حدث خطأ في تسجيل الزيارة")
		return
	}

	respondOK(c, http.StatusCreated, "تم تسجيل الزيارة بنجاح", resp)
}

// UpdateDuration handles PUT /api/analytics/visit/:id/duration
// @Summary Update visit duration
// @Description Sets the dwell time of a previously recorded visit
// @Tags analytics
// @Accept json
// @Produce json
// @Param id path int true "Visit ID"
// @Param request body model.UpdateDurationRequest true "Duration in seconds"
// @Success 200 {object} Response
// @Router /api/analytics/visit/{id}/duration [put]
func (h *AnalyticsHandler) UpdateDuration(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, service.ErrNotFound, "الزيارة غير موجودة", "")
		return
	}

	var req model.UpdateDurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "بيانات غير صحيحة")
		return
	}

	if err := h.service.UpdateDuration(c.Request.Context(), id, &req); err != nil {
		respondError(c, err, "الزيارة غير موجودة", "حدث خطأ في تحديث مدة الزيارة")
		return
	}

	respondOK(c, http.StatusOK, "تم تحديث مدة الزيارة بنجاح", nil)
}

// ListVisits handles GET /api/analytics/visits
// @Summary List recorded visits
// @Description Returns one page of visits under the given filters, newest first
// @Tags analytics
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(50)
// @Param date_from query string false "Start date (YYYY-MM-DD)"
// @Param date_to query string false "End date (YYYY-MM-DD)"
// @Param device_type query string false "Device type filter"
// @Param page_url query string false "Page URL substring filter"
// @Success 200 {object} Response{data=model.VisitList}
// @Router /api/analytics/visits [get]
func (h *AnalyticsHandler) ListVisits(c *gin.Context) {
	q := &model.VisitListQuery{
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
		DateFrom:   c.Query("date_from"),
		DateTo:     c.Query("date_to"),
		DeviceType: c.Query("device_type"),
		PageURL:    c.Query("page_url"),
	}

	list, err := h.service.ListVisits(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "", "حدث خطأ في جلب بيانات الزيارات")
		return
	}

	respondOK(c, http.StatusOK, "", list)
}

// Overview handles GET /api/analytics/stats/overview
// @Summary Site statistics overview
// @Description Returns totals, device/browser breakdowns, top pages and time distributions for the period
// @Tags analytics
// @Produce json
// @Param period query string false "Period: 1d, 7d, 30d or 90d; anything else means all-time"
// @Success 200 {object} Response{data=model.OverviewReport}
// @Router /api/analytics/stats/overview [get]
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	report, err := h.service.Overview(c.Request.Context(), c.Query("period"))
	if err != nil {
		respondError(c, err, "", "حدث خطأ في جلب إحصائيات الموقع")
		return
	}

	respondOK(c, http.StatusOK, "", report)
}

// RealTime handles GET /api/analytics/stats/real-time
// @Summary Real-time statistics
// @Description Returns the current hour's counters and the active session count
// @Tags analytics
// @Produce json
// @Success 200 {object} Response{data=model.RealTimeReport}
// @Router /api/analytics/stats/real-time [get]
func (h *AnalyticsHandler) RealTime(c *gin.Context) {
	report, err := h.service.RealTime(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "حدث خطأ في جلب الإحصائيات المباشرة")
		return
	}

	respondOK(c, http.StatusOK, "", report)
}

// exportResponse wraps a JSON export with its metadata
type exportResponse struct {
	Success      bool          `json:"success"`
	Data         []model.Visit `json:"data"`
	ExportedAt   string        `json:"exported_at"`
	TotalRecords int           `json:"total_records"`
}

// Export handles GET /api/analytics/export
// @Summary Export visit data
// @Description Dumps the filtered visits as a CSV attachment or a JSON document
// @Tags analytics
// @Produce json
// @Param format query string false "Export format: json or csv" default(json)
// @Param date_from query string false "Start date (YYYY-MM-DD)"
// @Param date_to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} Response
// @Router /api/analytics/export [get]
func (h *AnalyticsHandler) Export(c *gin.Context) {
	q := &model.ExportQuery{
		Format:   c.Query("format"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}

	result, err := h.service.Export(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "", "حدث خطأ في تصدير البيانات")
		return
	}

	if result.Format == model.ExportFormatCSV {
		c.Header("Content-Disposition", "attachment; filename=analytics.csv")
		c.Data(http.StatusOK, "text/csv", result.CSV)
		return
	}

	c.JSON(http.StatusOK, exportResponse{
		Success:      true,
		Data:         result.Visits,
		ExportedAt:   result.ExportedAt,
		TotalRecords: len(result.Visits),
	})
}

// queryInt parses a numeric query parameter, zero when absent or malformed
func queryInt(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return n
}
