package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"growbit/internal/service"
	"growbit/internal/token"

	"github.com/gin-gonic/gin"
)

func LogRequests() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("[%s] %s %s %d %s %s\n",
			param.TimeStamp.Format("2006/01/02 15:04:05"),
			param.Method,
			param.Path,
			param.StatusCode,
			param.Latency,
			param.ClientIP,
		)
	})
}

func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		c.Next()
	}
}

func CORS(allowedOrigins string) gin.HandlerFunc {
	origins := strings.Split(allowedOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowed := false
		for _, allowedOrigin := range origins {
			if origin == allowedOrigin {
				allowed = true
				break
			}
		}

		if allowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func AddServiceContext(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("service", svc)
		c.Next()
	}
}

// TokenAuth verifies a bearer token when one is presented and stores the
// authenticated user id in the context. Requests without an Authorization
// header pass through untouched; a token that is expired or fails signature
// verification is rejected.
func TokenAuth(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		userID, err := token.Verify(raw, svc.TokenSecret())
		if err != nil {
			status := "invalid token"
			if err == token.ErrExpired {
				status = "token expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": status})
			c.Abort()
			return
		}

		c.Set("auth_user_id", userID)
		c.Next()
	}
}
