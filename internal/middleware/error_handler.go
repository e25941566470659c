package middleware

import (
	"realestate-backoffice/internal/errors"
	"realestate-backoffice/internal/utils"
	"realestate-backoffice/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached to the context as
// {"error": {"message", "code", "fieldErrors"}}.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := errors.MapError(c.Errors.Last().Err)
		if utils.IsExpected(appErr) {
			logger.GlobalLogger.Warnf("Request rejected: path=%s, method=%s, code=%s, error=%s",
				c.Request.URL.Path, c.Request.Method, appErr.Code, appErr.TechnicalMessage)
		} else {
			logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, error=%s",
				c.Request.URL.Path, c.Request.Method, c.ClientIP(), appErr.Error())
		}

		if utils.IsRetryableError(appErr) {
			c.Header("Retry-After", "5")
		}

		body := gin.H{
			"message": appErr.UserMessage,
			"code":    appErr.Code,
		}
		if len(appErr.FieldErrors) > 0 {
			body["fieldErrors"] = appErr.FieldErrors
		}
		c.JSON(appErr.HTTPStatus, gin.H{"error": body})
	}
}
