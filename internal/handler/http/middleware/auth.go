package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kartavyango/sahaaya/internal/domain/entity"
	"github.com/kartavyango/sahaaya/internal/usecase"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

// AuthMiddleWare validates the Bearer token and loads the authenticated
// user into the context under "userID" and "user".
func AuthMiddleWare(jwtService usecase.JWTService, userUsecase usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			return
		}

		user, err := userUsecase.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("user", user)
		c.Next()
	}
}

// RequireRoles rejects authenticated users whose role is not in the
// allowed set. Must run after AuthMiddleWare.
func RequireRoles(roles ...entity.UserRole) gin.HandlerFunc {
	allowed := make(map[entity.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		val, exists := c.Get("user")
		user, ok := val.(*entity.User)
		if !exists || !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}
		if _, ok := allowed[user.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// IsAdmin allows only admins through. Must run after AuthMiddleWare.
func IsAdmin() gin.HandlerFunc {
	return RequireRoles(entity.UserRoleAdmin)
}
