package middleware

import (
	"log/slog"
	"net/http"

	"slotbook/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler answers for handlers that recorded an error but wrote nothing.
// Public errors carry their response in Meta; any other error is answered by
// its category. Server failures are logged with the request id either way.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !c.Writer.Written() {
			respond(c)
		}

		if last := c.Errors.Last(); last != nil && c.Writer.Status() >= http.StatusInternalServerError {
			slog.Error("request failed",
				"request_id", GetRequestID(c),
				"route", c.FullPath(),
				"business", c.Param("slug"),
				"error", last.Err)
		}
	}
}

func respond(c *gin.Context) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
			c.JSON(resp.Status, resp)
			return
		}
	}
	if last := c.Errors.Last(); last != nil {
		httperr.Abort(c, last.Err, "Request failed")
		return
	}
	if status := c.Writer.Status(); status != http.StatusOK {
		c.Writer.WriteHeaderNow()
		return
	}
	// a handler returned without answering
	httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			slog.Error("recovered from panic",
				"error", rec,
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path)

			if c.Writer.Written() {
				c.Abort()
				return
			}
			resp := httperr.Response{Status: http.StatusInternalServerError}
			resp.Error.Message = "Internal server error"
			c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
		}()
		c.Next()
	}
}
