package middleware

import (
	"log/slog"
	"net/http"

	"lending-core/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders an error a handler attached with c.Error but did not
// write. Public errors carry their response; anything else is mapped by kind.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		last := c.Errors.Last()
		if resp, ok := last.Meta.(httperr.Response); ok {
			c.JSON(resp.Status, resp)
			return
		}
		httperr.Abort(c, last.Err)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"panic", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
