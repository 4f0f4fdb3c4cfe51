package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/restaurant-api/internal/authorization"
	"github.com/oksasatya/restaurant-api/pkg/helpers"
	"github.com/oksasatya/restaurant-api/pkg/response"
)

const principalKey = "principal"

// Auth requires a valid bearer token and stores the caller's principal in
// the Gin context.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abort(c, http.StatusUnauthorized, "missing bearer token")
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid bearer token")
			return
		}
		setPrincipal(c, claims)
		c.Next()
	}
}

// OptionalAuth resolves a principal when a valid token is sent and falls back
// to anonymous otherwise. Used on routes open to everyone.
func OptionalAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := jwt.ParseToken(token); err == nil {
				setPrincipal(c, claims)
			}
		}
		c.Next()
	}
}

// PrincipalFrom returns the principal resolved for this request, or anonymous.
func PrincipalFrom(c *gin.Context) authorization.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(authorization.Principal); ok {
			return p
		}
	}
	return authorization.Anonymous()
}

// RequireRole lets the request through only when the principal has one of roles.
// Must run after Auth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !PrincipalFrom(c).HasRole(roles...) {
			abort(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Next()
	}
}

// RequirePolicy evaluates a named policy for the principal.
func RequirePolicy(policies *authorization.Policies, name authorization.Policy, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := policies.Check(c.Request.Context(), name, PrincipalFrom(c))
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, authorization.ErrForbidden):
			abort(c, http.StatusForbidden, "forbidden")
		default:
			helpers.RequestEntry(logger, c).WithError(err).WithField("policy", name).Error("policy evaluation failed")
			abort(c, http.StatusInternalServerError, "something went wrong")
		}
	}
}

func setPrincipal(c *gin.Context, claims *helpers.Claims) {
	c.Set(principalKey, authorization.Principal{ID: claims.UserID, Role: claims.Role})
	c.Set("userID", claims.Subject)
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

func abort(c *gin.Context, status int, message string) {
	resp := response.Error[any](c, status, message, nil)
	c.AbortWithStatusJSON(resp.Status, resp)
}
