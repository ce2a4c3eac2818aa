package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// RequestIDMiddleware generates a unique ID for each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)

		// Mirror into the request context so logger.WithContext can
		// pick it up outside of gin.
		ctx := context.WithValue(c.Request.Context(), RequestIDKey, id) //nolint:staticcheck // string key shared with pkg/logger
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Request-ID", id)
		c.Next()
	}
}
