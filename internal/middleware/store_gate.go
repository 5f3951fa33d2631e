package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/idanaslund/final-project-backend/internal/observability"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreGate answers 503 before any route logic when the store does not answer a ping within budget.
func StoreGate(store Pinger, budget time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), budget)
		err := store.Ping(ctx)
		cancel()

		if err != nil {
			observability.StoreUnavailable.Inc()
			log.Warn().Err(err).Msg("store unavailable")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
			return
		}
		c.Next()
	}
}
