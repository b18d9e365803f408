package handler

import (
	"net/http"
	"strconv"

	"kayan/internal/model"
	"kayan/internal/service"

	"github.com/gin-gonic/gin"
)

// TestimonialHandler handles customer review endpoints
type TestimonialHandler struct {
	service service.TestimonialServiceInterface
}

// NewTestimonialHandler creates a new TestimonialHandler
func NewTestimonialHandler(service service.TestimonialServiceInterface) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

// Submit handles POST /api/testimonials
// @Summary Submit a customer review
// @Description Stores an unapproved review, limited to one per address per day
// @Tags testimonials
// @Accept json
// @Produce json
// @Param request body model.TestimonialRequest true "Review fields"
// @Success 201 {object} Response{data=model.CreatedResponse}
// @Router /api/testimonials [post]
func (h *TestimonialHandler) Submit(c *gin.Context) {
	var req model.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "بيانات غير صحيحة")
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), &req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondError(c, err, "", "حدث خطأ في إرسال التقييم. يرجى المحاولة مرة أخرى.")
		return
	}

	respondOK(c, http.StatusCreated, "شكراً لك! تم إرسال تقييمك بنجاح. سيتم مراجعته ونشره قريباً.", resp)
}

// List handles GET /api/testimonials
// @Summary List reviews for moderation
// @Description Returns one page of reviews with the approved-average attached
// @Tags testimonials
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param status query string false "Status filter: approved, pending or all" default(approved)
// @Param service query string false "Service code filter"
// @Param rating query string false "Rating filter 1-5"
// @Param sort query string false "Sort: newest, oldest, rating_high or rating_low"
// @Success 200 {object} Response{data=model.TestimonialList}
// @Router /api/testimonials [get]
func (h *TestimonialHandler) List(c *gin.Context) {
	q := &model.TestimonialListQuery{
		Page:    queryInt(c, "page"),
		Limit:   queryInt(c, "limit"),
		Status:  c.Query("status"),
		Service: c.Query("service"),
		Rating:  c.Query("rating"),
		Sort:    c.Query("sort"),
	}

	list, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "", "حدث خطأ في جلب التقييمات")
		return
	}

	respondOK(c, http.StatusOK, "", list)
}

// ListPublic handles GET /api/testimonials/public
// @Summary List approved reviews for the public site
// @Tags testimonials
// @Produce json
// @Param limit query int false "Maximum rows" default(20)
// @Param service query string false "Service code filter" default(all)
// @Success 200 {object} Response{data=[]model.PublicTestimonial}
// @Router /api/testimonials/public [get]
func (h *TestimonialHandler) ListPublic(c *gin.Context) {
	testimonials, err := h.service.ListPublic(c.Request.Context(), c.Query("service"), queryInt(c, "limit"))
	if err != nil {
		respondError(c, err, "", "حدث خطأ في جلب التقييمات")
		return
	}

	respondOK(c, http.StatusOK, "", testimonials)
}

// Approve handles PUT /api/testimonials/:id/approve
// @Summary Approve or reject a review
// @Tags testimonials
// @Accept json
// @Produce json
// @Param id path int true "Testimonial ID"
// @Param request body model.ApproveTestimonialRequest true "Approval flag and optional notes"
// @Success 200 {object} Response
// @Router /api/testimonials/{id}/approve [put]
func (h *TestimonialHandler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, service.ErrNotFound, "التقييم غير موجود", "")
		return
	}

	var req model.ApproveTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "بيانات غير صحيحة")
		return
	}

	approved, err := h.service.Approve(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "التقييم غير موجود", "حدث خطأ في تحديث التقييم")
		return
	}

	message := "تم رفض التقييم"
	if approved {
		message = "تم الموافقة على التقييم"
	}
	respondOK(c, http.StatusOK, message, nil)
}

// Delete handles DELETE /api/testimonials/:id
// @Summary Delete a review
// @Tags testimonials
// @Produce json
// @Param id path int true "Testimonial ID"
// @Success 200 {object} Response
// @Router /api/testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, service.ErrNotFound, "التقييم غير موجود", "")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "التقييم غير موجود", "حدث خطأ في حذف التقييم")
		return
	}

	respondOK(c, http.StatusOK, "تم حذف التقييم بنجاح", nil)
}

// Stats handles GET /api/testimonials/stats/summary
// @Summary Review moderation statistics
// @Tags testimonials
// @Produce json
// @Success 200 {object} Response{data=model.TestimonialStats}
// @Router /api/testimonials/stats/summary [get]
func (h *TestimonialHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "حدث خطأ في جلب إحصائيات التقييمات")
		return
	}

	respondOK(c, http.StatusOK, "", stats)
}
