package devserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/titaska/bitukai-client/pkg/utils"
)

// AuthMiddleware validates the bearer token when one is presented and puts
// the claims on the context. Requests without a token pass through: the dev
// server stays usable without a login round-trip, but a token that is sent
// must be valid.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format. Use Bearer <token>"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			c.Abort()
			return
		}

		c.Set("staffID", claims.StaffID)
		c.Set("staffRole", claims.Role)
		c.Set("registrationNumber", claims.RegistrationNumber)

		c.Next()
	}
}
