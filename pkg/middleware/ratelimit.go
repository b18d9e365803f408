package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit returns a per-IP rate limit middleware for the public
// form-submission endpoints. The counters live in process memory; a restart
// resets them, which is acceptable for a single-instance deployment.
func RateLimit(period time.Duration, limit int64) gin.HandlerFunc {
	instance := limiter.New(memory.NewStore(), limiter.Rate{
		Period: period,
		Limit:  limit,
	})

	return mgin.NewMiddleware(instance, mgin.WithLimitReachedHandler(func(c *gin.Context) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success": false,
			"message": "عدد كبير من المحاولات. يرجى المحاولة لاحقاً.",
		})
		c.Abort()
	}))
}
