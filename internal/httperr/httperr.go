package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Envelope is the failure body shared by every route.
type Envelope struct {
	Message  string `json:"message"`
	Response string `json:"response"`
	Success  bool   `json:"success"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Message:  message,
		Response: message,
		Success:  false,
	})
}

func Abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{
		Message:  message,
		Response: message,
		Success:  false,
	})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}

func Unavailable(c *gin.Context, message string) {
	Write(c, http.StatusServiceUnavailable, message)
}

// FromError answers with the business error's own status and message. Any
// other error is logged and answered 400 with fallback, never with the raw error.
func FromError(c *gin.Context, err error, fallback string) {
	var be BusinessError
	if errors.As(err, &be) {
		Write(c, be.HTTPStatus(), be.Message)
		return
	}

	log.Error().
		Err(err).
		Str("route", c.FullPath()).
		Str("method", c.Request.Method).
		Msg("request failed")
	BadRequest(c, fallback)
}
