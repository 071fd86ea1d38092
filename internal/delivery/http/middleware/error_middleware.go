package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RitikJ22/hirewise/internal/delivery/http/response"
	"github.com/RitikJ22/hirewise/pkg/apperror"
	"github.com/RitikJ22/hirewise/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("request failed", "path", c.Request.URL.Path, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message)
				return
			}
			// Never expose internal error details to clients. Log the
			// actual error server-side and send a generic message.
			logger.Log.Error("unhandled error", "path", c.Request.URL.Path, "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
		}
	}
}
