package handler

import (
	"errors"
	"net/http"

	"kayan/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Response is the standard API envelope. Every endpoint answers with it,
// success and failure alike.
type Response struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Data    interface{}          `json:"data,omitempty"`
	Errors  []service.FieldError `json:"errors,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// respondOK writes a success envelope
func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError maps service errors onto the envelope. Validation failures
// carry the itemized field errors; 404 and 500 carry the endpoint-specific
// message. Internal errors are logged here; their raw text is attached to
// the response outside release mode only.
func respondError(c *gin.Context, err error, notFoundMsg, internalMsg string) {
	var verrs service.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: "بيانات غير صحيحة",
			Errors:  verrs,
		})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Message: notFoundMsg,
		})
	case errors.Is(err, service.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, Response{
			Success: false,
			Message: "يمكنك إرسال تقييم واحد فقط كل 24 ساعة",
		})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		resp := Response{
			Success: false,
			Message: internalMsg,
		}
		if gin.Mode() != gin.ReleaseMode {
			resp.Error = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}

// respondBadRequest rejects an unparseable body or parameter
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: message,
	})
}
