package middleware

import (
	"log/slog"
	"net/http"

	"hostel-booking/internal/handler/httperr"
	"hostel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders any httperr.Response attached to the context that a
// handler queued but did not write itself. Most handlers write through
// httperr.AbortWithError directly; this is the fallback path.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Newest error wins.
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"code": httperr.CodeInternal, "message": "Internal server error"},
		})
	}
}

// CustomRecovery turns panics into a generic 500 without leaking internals
// to the client. The stack goes to the log, truncated.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				var stack []string
				if err, ok := r.(error); ok {
					stack = errs.ExtractStackLines(errs.Wrap(err, "panic"), 20)
				}
				slog.Error("recovered from panic",
					"error", r,
					"path", c.Request.URL.Path,
					"stack", stack,
				)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Code = httperr.CodeInternal
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
