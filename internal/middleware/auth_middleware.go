package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/quiz-api/pkg/auth"
)

// Ключи контекста запроса, заполняемые после успешной аутентификации
const (
	ContextUsername = "username"
	ContextRole     = "role"
)

// AuthorizationPolicy решает, может ли субъект изменять данные
type AuthorizationPolicy interface {
	CanMutate(username, role string) bool
}

// SingleAdminPolicy — политика единственного администратора: изменять
// данные может только субъект с ролью admin
type SingleAdminPolicy struct{}

// CanMutate разрешает мутации только администратору
func (SingleAdminPolicy) CanMutate(username, role string) bool {
	return role == "admin"
}

// AuthMiddleware обеспечивает аутентификацию для защищенных маршрутов
type AuthMiddleware struct {
	jwtService *auth.JWTService
	policy     AuthorizationPolicy
}

// NewAuthMiddleware создает новый middleware аутентификации
func NewAuthMiddleware(jwtService *auth.JWTService, policy AuthorizationPolicy) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService, policy: policy}
}

// RequireAuth проверяет Bearer-токен и кладет субъекта в контекст запроса
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			c.Abort()
			return
		}

		// Формат заголовка: Bearer {token}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ParseToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// AdminOnly пропускает только субъектов, которым политика разрешает мутации.
// Должен стоять после RequireAuth.
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString(ContextUsername)
		role := c.GetString(ContextRole)
		if !m.policy.CanMutate(username, role) {
			c.JSON(http.StatusForbidden, gin.H{"msg": "Unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
