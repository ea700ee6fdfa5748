package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// BearerAuth returns a Gin middleware that enforces Authorization: Bearer
// validation. If token is empty, the middleware is a no-op (auth disabled).
func BearerAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "No autorizado",
				"message": "falta el header Authorization",
			})
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "No autorizado",
				"message": "falta el esquema Bearer",
			})
			return
		}
		provided := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if provided != token {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Prohibido",
				"message": "token inválido",
			})
			return
		}
		c.Next()
	}
}
