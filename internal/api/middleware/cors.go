package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows every origin. Websocket upgrades bypass it.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length", "Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowWebSockets: true,
		MaxAge:          12 * time.Hour,
	}

	corsHandler := cors.New(config)
	return func(c *gin.Context) {
		if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
