package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/idanaslund/final-project-backend/internal/domain/account"
	"github.com/idanaslund/final-project-backend/internal/httperr"
	"github.com/idanaslund/final-project-backend/internal/models"
)

const ContextUser = "user"

// TokenLookup resolves a bearer token to its user; account.ErrUserNotFound means no match.
type TokenLookup interface {
	GetUserByToken(ctx context.Context, token string) (*models.User, error)
}

// Authenticate matches the raw Authorization header, byte for byte, against stored tokens.
func Authenticate(users TokenLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, "Please, log in")
			return
		}

		user, err := users.GetUserByToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, account.ErrUserNotFound) {
				httperr.Abort(c, http.StatusUnauthorized, "Please, log in")
				return
			}
			log.Error().Err(err).Msg("token lookup failed")
			httperr.Abort(c, http.StatusBadRequest, "Error, could not authenticate user")
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}

// CurrentUser returns the user attached by Authenticate.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(ContextUser)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
