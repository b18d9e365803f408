package handler

import (
	"net/http"
	"strconv"

	"kayan/internal/model"
	"kayan/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact form endpoints
type ContactHandler struct {
	service service.ContactServiceInterface
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(service service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/contact
// @Summary Submit a contact form message
// @Description Validates and stores a contact form submission
// @Tags contact
// @Accept json
// @Produce json
// @Param request body model.ContactRequest true "Contact form fields"
// @Success 201 {object} Response{data=model.CreatedResponse}
// @Router /api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "بيانات غير صحيحة")
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), &req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondError(c, err, "", "حدث خطأ في إرسال الرسالة. يرجى المحاولة مرة أخرى.")
		return
	}

	respondOK(c, http.StatusCreated, "تم إرسال رسالتك بنجاح! سنتواصل معك قريباً.", resp)
}

// List handles GET /api/contact
// @Summary List contact messages
// @Description Returns one page of the contact inbox, newest first
// @Tags contact
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param status query string false "Status filter: new, read, replied, closed or all"
// @Success 200 {object} Response{data=model.ContactList}
// @Router /api/contact [get]
func (h *ContactHandler) List(c *gin.Context) {
	q := &model.ContactListQuery{
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
		Status: c.Query("status"),
	}

	list, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "", "حدث خطأ في جلب الرسائل")
		return
	}

	respondOK(c, http.StatusOK, "", list)
}

// Get handles GET /api/contact/:id
// @Summary Get one contact message
// @Tags contact
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} Response{data=model.ContactMessage}
// @Router /api/contact/{id} [get]
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, service.ErrNotFound, "الرسالة غير موجودة", "")
		return
	}

	m, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "الرسالة غير موجودة", "حدث خطأ في جلب الرسالة")
		return
	}

	respondOK(c, http.StatusOK, "", m)
}

// UpdateStatus handles PUT /api/contact/:id/status
// @Summary Update a message's moderation status
// @Tags contact
// @Accept json
// @Produce json
// @Param id path int true "Message ID"
// @Param request body model.ContactStatusRequest true "New status and optional response"
// @Success 200 {object} Response
// @Router /api/contact/{id}/status [put]
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, service.ErrNotFound, "الرسالة غير موجودة", "")
		return
	}

	var req model.ContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "بيانات غير صحيحة")
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, &req); err != nil {
		respondError(c, err, "الرسالة غير موجودة", "حدث خطأ في تحديث حالة الرسالة")
		return
	}

	respondOK(c, http.StatusOK, "تم تحديث حالة الرسالة بنجاح", nil)
}

// Delete handles DELETE /api/contact/:id
// @Summary Delete a contact message
// @Tags contact
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} Response
// @Router /api/contact/{id} [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, service.ErrNotFound, "الرسالة غير موجودة", "")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "الرسالة غير موجودة", "حدث خطأ في حذف الرسالة")
		return
	}

	respondOK(c, http.StatusOK, "تم حذف الرسالة بنجاح", nil)
}

// Stats handles GET /api/contact/stats/summary
// @Summary Contact inbox statistics
// @Tags contact
// @Produce json
// @Success 200 {object} Response{data=model.ContactStats}
// @Router /api/contact/stats/summary [get]
func (h *ContactHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "", "حدث خطأ في جلب إحصائيات الرسائل")
		return
	}

	respondOK(c, http.StatusOK, "", stats)
}
