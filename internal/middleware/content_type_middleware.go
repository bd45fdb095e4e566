package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireJSON создает middleware, проверяющий тело мутирующих запросов:
// Content-Type должен быть application/json (иначе 415), тело — присутствовать
// (иначе 400). GET и DELETE пропускаются без проверок.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		if c.ContentType() != "application/json" {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"msg": "Unsupported media type, expected application/json"})
			c.Abort()
			return
		}
		if c.Request.ContentLength == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Missing JSON in request"})
			c.Abort()
			return
		}
		c.Next()
	}
}
