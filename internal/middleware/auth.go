package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/operator"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const ContextActor = "actor"

// AuthMiddleware verifies the bearer token and stores the operator as a
// domain.Actor in the gin context. Expiry is judged against clock, the
// same clock tokens are issued with.
func AuthMiddleware(secret string, clock timezone.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a Bearer token.")
			c.Abort()
			return
		}

		claims, err := operator.ParseToken(secret, strings.TrimSpace(parts[1]), clock)
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			c.Abort()
			return
		}

		c.Set(ContextActor, domain.Actor{
			OperatorID: claims.OperatorID,
			Role:       claims.Role,
		})

		c.Next()
	}
}

// ActorFrom returns the actor set by AuthMiddleware. Only call it on
// routes behind the middleware.
func ActorFrom(c *gin.Context) domain.Actor {
	return c.MustGet(ContextActor).(domain.Actor)
}
