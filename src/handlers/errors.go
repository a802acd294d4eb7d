package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/khabaroff/thesis-management/src/logging"
	"github.com/khabaroff/thesis-management/src/middleware"
	"github.com/khabaroff/thesis-management/src/services"
)

// statusFor maps error kinds to HTTP statuses
var statusFor = map[services.Kind]int{
	services.KindValidation:     http.StatusBadRequest,
	services.KindAuthentication: http.StatusUnauthorized,
	services.KindNotFound:       http.StatusNotFound,
	services.KindConflict:       http.StatusConflict,
	services.KindInternal:       http.StatusInternalServerError,
}

// responder writes service errors as JSON. Internal details are only
// exposed in development.
type responder struct {
	development bool
}

func (r responder) respondError(c *gin.Context, err error) {
	kind := services.KindOf(err)
	status := statusFor[kind]

	if kind != services.KindInternal {
		var e *services.Error
		errors.As(err, &e)
		c.JSON(status, gin.H{"error": e.Message})
		return
	}

	logger := logging.ComponentLogger("handlers", middleware.GetRequestID(c))
	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	_ = c.Error(err)

	body := gin.H{"error": "Internal Server Error"}
	if r.development {
		body["detail"] = err.Error()
	}
	c.JSON(status, body)
}

// bindJSON decodes the request body, answering 400 on malformed input
func (r responder) bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return false
	}
	return true
}

// paramID parses a positive integer path parameter, answering 400 otherwise
func (r responder) paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}
