package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"society-billing-svc/pkg/logger"
	"society-billing-svc/pkg/utils"
)

// CORS configures cross-origin access for the admin frontend.
func CORS(allowedOrigins string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:     strings.Split(allowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	return cors.New(cfg)
}

// LoggerMiddleware logs each request with method, path, status and latency.
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.WithFields(map[string]interface{}{
			"method":  c.Request.Method,
			"path":    path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"client":  c.ClientIP(),
		}).Info("Request handled")
	}
}

// ErrorHandler recovers from panics and answers with a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				utils.InternalServerErrorResponse(c, "Internal server error", nil)
				c.Abort()
			}
		}()
		c.Next()
	}
}

// NoRouteHandler answers unknown paths with a JSON 404.
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.NotFoundResponse(c, "Route not found")
	}
}

// NoMethodHandler answers unsupported methods with a JSON 404.
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.NotFoundResponse(c, "Method not allowed")
	}
}
