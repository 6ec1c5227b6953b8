package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mycontacts/internal/apperr"
)

// ErrorHandler is the single error-to-HTTP translator. Handlers and
// middleware report failures with c.Error and write nothing themselves;
// after the chain runs, the last recorded error is rendered as a
// {"message": ...} body with the status its kind maps to. Causes of
// internal errors are logged, never echoed to clients.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var ae *apperr.Error
		if errors.As(err, &ae) {
			if ae.Kind == apperr.KindInternal {
				log.Error("request failed",
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Error(err))
			}
			c.JSON(ae.Status(), gin.H{"message": ae.Message})
			return
		}

		log.Error("unhandled request error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
