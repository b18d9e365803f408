package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveInternalError(t *testing.T) Response {
	t.Helper()

	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		respondError(c, errors.New("sqlite: disk I/O error"), "", "حدث خطأ في الخادم")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/boom", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRespondError_InternalDetail(t *testing.T) {
	t.Run("raw error attached outside release mode", func(t *testing.T) {
		resp := serveInternalError(t)
		assert.False(t, resp.Success)
		assert.Equal(t, "حدث خطأ في الخادم", resp.Message)
		assert.Equal(t, "sqlite: disk I/O error", resp.Error)
	})

	t.Run("release mode hides the detail", func(t *testing.T) {
		gin.SetMode(gin.ReleaseMode)
		defer gin.SetMode(gin.TestMode)

		resp := serveInternalError(t)
		assert.False(t, resp.Success)
		assert.Equal(t, "حدث خطأ في الخادم", resp.Message)
		assert.Empty(t, resp.Error)
	})
}
