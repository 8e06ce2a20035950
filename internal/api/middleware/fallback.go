package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/pkg/response"
)

func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Route not found"})
	}
}

func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, response.ErrorResponse{Error: "Method not allowed"})
	}
}

// Recovery converts panics into a JSON 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Internal server error"})
	})
}
