package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kayan/internal/mocks"
	"kayan/internal/model"
	"kayan/internal/service"
)

func newContactRouter(h *ContactHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.POST("/api/contact", h.Submit)
	router.GET("/api/contact", h.List)
	router.GET("/api/contact/stats/summary", h.Stats)
	router.GET("/api/contact/:id", h.Get)
	router.PUT("/api/contact/:id/status", h.UpdateStatus)
	router.DELETE("/api/contact/:id", h.Delete)
	return router
}

func TestContactHandler_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockContactServiceInterface(ctrl)
	router := newContactRouter(NewContactHandler(mockService))

	t.Run("stored message answers 201", func(t *testing.T) {
		mockService.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&model.CreatedResponse{ID: 5, Timestamp: "2026-03-10T14:00:00Z"}, nil)

		body := `{"name":"أحمد","email":"a@b.com","message":"أرغب في عرض سعر لمطبخ"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/contact", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "تم إرسال رسالتك بنجاح! سنتواصل معك قريباً.", resp.Message)
	})

	t.Run("validation failure answers 400 with field errors", func(t *testing.T) {
		mockService.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, service.ValidationErrors{
				{Field: "email", Message: "البريد الإلكتروني غير صحيح"},
				{Field: "message", Message: "الرسالة يجب أن تكون بين 10 و 2000 حرف"},
			})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/contact", bytes.NewBufferString(`{"name":"أحمد"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Errors, 2)
	})

	t.Run("service failure answers 500", func(t *testing.T) {
		mockService.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("disk full"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/contact", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "حدث خطأ في إرسال الرسالة. يرجى المحاولة مرة أخرى.", resp.Message)
	})
}

func TestContactHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockContactServiceInterface(ctrl)
	router := newContactRouter(NewContactHandler(mockService))

	mockService.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, q *model.ContactListQuery) (*model.ContactList, error) {
			assert.Equal(t, "new", q.Status)
			return &model.ContactList{Messages: []model.ContactMessage{{ID: 1}}}, nil
		})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/contact?status=new", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContactHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockContactServiceInterface(ctrl)
	router := newContactRouter(NewContactHandler(mockService))

	t.Run("found", func(t *testing.T) {
		mockService.EXPECT().Get(gomock.Any(), int64(3)).Return(&model.ContactMessage{ID: 3, Name: "أحمد"}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/contact/3", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "أحمد")
	})

	t.Run("missing answers 404", func(t *testing.T) {
		mockService.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, service.ErrNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/contact/99", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "الرسالة غير موجودة", resp.Message)
	})

	t.Run("non-numeric id answers 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/contact/abc", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestContactHandler_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockContactServiceInterface(ctrl)
	router := newContactRouter(NewContactHandler(mockService))

	t.Run("updated status answers 200", func(t *testing.T) {
		mockService.EXPECT().UpdateStatus(gomock.Any(), int64(5), gomock.Any()).DoAndReturn(
			func(_ interface{}, _ int64, r *model.ContactStatusRequest) error {
				assert.Equal(t, "replied", r.Status)
				assert.Equal(t, "تم التواصل", r.Response)
				return nil
			})

		body := `{"status":"replied","response":"تم التواصل"}`
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/contact/5/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "تم تحديث حالة الرسالة بنجاح", resp.Message)
	})

	t.Run("unknown status answers 400", func(t *testing.T) {
		mockService.EXPECT().UpdateStatus(gomock.Any(), int64(5), gomock.Any()).
			Return(service.ValidationErrors{{Field: "status", Message: "حالة غير صحيحة"}})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/contact/5/status", bytes.NewBufferString(`{"status":"archived"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestContactHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockContactServiceInterface(ctrl)
	router := newContactRouter(NewContactHandler(mockService))

	t.Run("deleted message answers 200", func(t *testing.T) {
		mockService.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/contact/4", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "تم حذف الرسالة بنجاح", resp.Message)
	})

	t.Run("missing answers 404", func(t *testing.T) {
		mockService.EXPECT().Delete(gomock.Any(), int64(4)).Return(service.ErrNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/contact/4", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestContactHandler_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockContactServiceInterface(ctrl)
	router := newContactRouter(NewContactHandler(mockService))

	mockService.EXPECT().Stats(gomock.Any()).Return(&model.ContactStats{Total: 9}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/contact/stats/summary", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":9`)
}
