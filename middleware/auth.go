package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"github.com/joaquinperez028/landingPageNahuel-sub003/config"
)

// IdentityKey is the gin context key carrying the authenticated owner
// identity.
const IdentityKey = "ownerIdentity"

// RoleKey is the gin context key carrying the token's role claim.
const RoleKey = "role"

// JWTAuthMiddleware validates the Bearer token and stores the subject as the
// owner identity on the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseBearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set(IdentityKey, sub)
		if role, ok := claims["role"].(string); ok {
			c.Set(RoleKey, role)
		}
		c.Next()
	}
}

// JWTAuthAdminMiddleware additionally requires the admin role claim.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseBearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		if role, _ := claims["role"].(string); role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized admin access"})
			return
		}

		if sub, ok := claims["sub"].(string); ok {
			c.Set(IdentityKey, sub)
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}

func parseBearerToken(c *gin.Context) (jwt.MapClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fmt.Errorf("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}
