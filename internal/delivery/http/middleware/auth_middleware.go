package middleware

import (
	"fmt"
	"strings"

	"pondpatrol-web/internal/delivery/http/response"
	"pondpatrol-web/internal/domain"
	"pondpatrol-web/pkg/apperror"
	"pondpatrol-web/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AdminRole is the role claim required on admin tokens
const AdminRole = "admin"

// AdminAuth guards the admin API with an HS256 bearer token signed with secret.
// The token must carry sub and role=admin claims.
func AdminAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			unauthorized(c, "missing_token", "Authorization header required")
			return
		}

		token, err := parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if len(key) == 0 {
				return nil, fmt.Errorf("admin secret not configured")
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			unauthorized(c, "invalid_token", "Invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c, "invalid_claims", "Invalid claims")
			return
		}

		sub, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if sub == "" || role != AdminRole {
			unauthorized(c, "not_admin", "Admin access required")
			return
		}

		c.Set(string(domain.KeyAdminSub), sub)
		c.Next()
	}
}

func unauthorized(c *gin.Context, reason, message string) {
	security.DefaultLogger().LogUnauthorized(
		c.Request.Context(),
		c.ClientIP(),
		c.GetHeader("User-Agent"),
		response.RequestID(c),
		reason,
	)
	abortWith(c, apperror.Unauthorized(message))
}
