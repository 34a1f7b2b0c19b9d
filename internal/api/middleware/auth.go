package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"replane.io/replane/internal/domain"
	"replane.io/replane/internal/sdkauth"
	"replane.io/replane/internal/token"
)

const ctxKeyIdentity contextKey = "identity"

// BearerVerifier resolves raw admin/SDK bearer tokens. Implemented by
// sdkauth.Verifier.
type BearerVerifier interface {
	Verify(ctx context.Context, raw string) (sdkauth.Result, error)
}

// Authenticate resolves the caller to a domain identity: an `rpa_`
// bearer token becomes an APIKey, any other bearer value is treated as
// a user session JWT. Requests without an Authorization header pass
// through anonymously; RequireIdentity draws the line per route group.
func Authenticate(session SessionConfig, verifier BearerVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		var identity domain.Identity
		if strings.HasPrefix(raw, token.AdminPrefix+"_") {
			res, err := verifier.Verify(c.Request.Context(), raw)
			if err != nil || res.Identity == nil {
				abortUnauthorized(c, "invalid or unknown key")
				return
			}
			identity = res.Identity
		} else {
			user, err := ParseSessionToken(session, raw)
			if err != nil {
				abortUnauthorized(c, "invalid session token")
				return
			}
			identity = user
		}

		c.Set(string(ctxKeyIdentity), identity)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), ctxKeyIdentity, identity),
		)
		c.Next()
	}
}

// RequireIdentity rejects anonymous requests on management routes.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := Identity(c); !ok {
			abortUnauthorized(c, "authentication required")
			return
		}
		c.Next()
	}
}

// Identity returns the resolved caller identity, if any.
func Identity(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(string(ctxKeyIdentity))
	if !ok {
		return nil, false
	}
	id, ok := v.(domain.Identity)
	return id, ok
}

// IdentityFromContext is the non-gin variant for code below the
// handler layer.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(domain.Identity)
	return id, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    "UNAUTHORIZED",
		"message": msg,
	})
}
