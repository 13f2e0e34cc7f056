package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/stitts-dev/caddie/pkg/utils"
)

// Claims identifies the player a token was issued to through its subject
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

const playerIDKey = "player_id"

func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.SendUnauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.SendUnauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || !token.Valid || claims.Subject == "" {
			utils.SendUnauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(playerIDKey, claims.Subject)
		c.Next()
	}
}

// RequirePlayer rejects requests whose token subject differs from the :param path value
func RequirePlayer(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if AuthenticatedPlayer(c) != c.Param(param) {
			utils.SendForbidden(c, "Token does not grant access to this player")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthenticatedPlayer returns the player id set by AuthRequired
func AuthenticatedPlayer(c *gin.Context) string {
	return c.GetString(playerIDKey)
}
