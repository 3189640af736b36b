package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autoscribe/internal/api/errors"
)

// ErrorHandler recovers from panics and answers with a structured error
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := c.GetString(RequestIDKey)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		}
		if err, ok := recovered.(error); ok {
			fields = append(fields, zap.Error(err))
		} else {
			fields = append(fields, zap.Any("recovered", recovered))
		}
		logger.Error("panic recovered", fields...)

		apiErr := errors.NewInternalError("Internal server error")
		apiErr.RequestID = requestID
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError writes err as the response. Classified application errors keep
// their message; anything else is logged and reported as internal.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := errors.FromError(err)
	apiErr.RequestID = c.GetString(RequestIDKey)
	if apiErr.Kind == errors.KindInternal || apiErr.HTTPStatus() >= 500 {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
