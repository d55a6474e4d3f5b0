package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blog-server/internal/auth"
	"blog-server/internal/domain"
)

// Authenticator resolves a raw session token into the identity it carries.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Identity, error)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		if identity, ok := auth.IdentityFrom(c.Request.Context()); ok {
			entry = entry.WithField("user_id", identity.UserID)
		}
		entry.Info("request")
	}
}

// BindIdentity authenticates the Authorization header, if any, and binds the
// resulting identity to the request context. Requests without a usable token
// continue unauthenticated.
func BindIdentity(tokens Authenticator, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		identity, err := tokens.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.WithField("path", c.Request.URL.Path).WithError(err).Debug("token rejected")
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), identity, token))
		c.Next()
	}
}

// RequireIdentity rejects requests that BindIdentity left unauthenticated.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auth.IdentityFrom(c.Request.Context()); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Result{Code: 1, Message: messageUnauthenticated})
			return
		}
		c.Next()
	}
}

// bearerToken accepts both "Bearer <token>" and a bare token.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

// identity returns the identity bound by BindIdentity. Routes using it are
// registered behind RequireIdentity.
func identity(c *gin.Context) domain.Identity {
	id, _ := auth.IdentityFrom(c.Request.Context())
	return id
}
