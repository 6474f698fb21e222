package middleware

import (
	"net/http"
	"strings"

	"pawmart/utils"

	"github.com/gin-gonic/gin"
)

// Context keys the auth middleware fills in. Downstream handlers read the
// acting identity from here; nothing reads ambient user state.
const (
	ContextConsumerID = "consumerID"
	ContextProviderID = "providerID"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return token, token != ""
}

// JWTAuthConsumerMiddleware requires a consumer bearer token and puts the
// consumer id into the request context.
func JWTAuthConsumerMiddleware() gin.HandlerFunc {
	return requireRole("consumer", ContextConsumerID)
}

// JWTAuthProviderMiddleware requires a provider bearer token and puts the
// provider id into the request context.
func JWTAuthProviderMiddleware() gin.HandlerFunc {
	return requireRole("provider", ContextProviderID)
}

func requireRole(role, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		subject, tokenRole, err := utils.ExtractSubjectFromToken(token)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if tokenRole != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Wrong credential kind for this endpoint"})
			return
		}

		c.Set(contextKey, subject)
		c.Next()
	}
}
