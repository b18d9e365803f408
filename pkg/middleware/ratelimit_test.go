package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	newRouter := func(limit int64) *gin.Engine {
		router := gin.New()
		router.Use(RateLimit(time.Minute, limit))
		router.POST("/api/contact", func(c *gin.Context) {
			c.JSON(http.StatusCreated, gin.H{"success": true})
		})
		return router
	}

	do := func(router *gin.Engine, ip string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/contact", nil)
		req.RemoteAddr = ip + ":12345"
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("requests under the limit pass", func(t *testing.T) {
		router := newRouter(3)
		for i := 0; i < 3; i++ {
			assert.Equal(t, http.StatusCreated, do(router, "203.0.113.9").Code)
		}
	})

	t.Run("request over the limit answers 429", func(t *testing.T) {
		router := newRouter(2)
		do(router, "203.0.113.9")
		do(router, "203.0.113.9")

		w := do(router, "203.0.113.9")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "عدد كبير من المحاولات")
	})

	t.Run("addresses are counted independently", func(t *testing.T) {
		router := newRouter(1)
		assert.Equal(t, http.StatusCreated, do(router, "203.0.113.9").Code)
		assert.Equal(t, http.StatusCreated, do(router, "203.0.113.10").Code)
	})
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS)
	router.GET("/api/testimonials/public", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("headers set on normal requests", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/testimonials/public", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight answers 204", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("OPTIONS", "/api/testimonials/public", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
