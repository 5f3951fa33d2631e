package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/idanaslund/final-project-backend/internal/observability"
)

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observability.ObserveHTTP(routeLabel(c), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
