package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			// Only internal-class failures are system errors worth logging
			// with detail. Spam and validation rejections are expected
			// traffic; their field contents stay out of the logs.
			if appErr.Kind == apperror.KindInternal {
				logger.Log.Error("request failed",
					"kind", appErr.Kind,
					"path", c.Request.URL.Path,
					"error", errors.Unwrap(appErr),
				)
			}
			response.Error(c, appErr.Code, appErr.Kind, appErr.Message, appErr.Fields)
			return
		}

		// Never expose internal error details to clients. Log the actual
		// error server-side and send a generic message.
		logger.Log.Error("unhandled error", "path", c.Request.URL.Path, "error", err)
		response.Error(c, http.StatusInternalServerError, apperror.KindInternal,
			"An unexpected error occurred. Please try again later.", nil)
	}
}
