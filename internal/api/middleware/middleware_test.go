package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replane.io/replane/internal/domain"
	apperrors "replane.io/replane/internal/pkg/errors"
	"replane.io/replane/internal/pkg/logger"
	"replane.io/replane/internal/sdkauth"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

var testSession = SessionConfig{
	SigningKey: []byte("0123456789abcdef0123456789abcdef"),
	Issuer:     "replane-test",
	ExpiresIn:  time.Hour,
}

type stubVerifier struct {
	res sdkauth.Result
	err error
}

func (s stubVerifier) Verify(ctx context.Context, raw string) (sdkauth.Result, error) {
	return s.res, s.err
}

func identityRouter(v BearerVerifier) *gin.Engine {
	r := gin.New()
	r.Use(Authenticate(testSession, v))
	r.GET("/whoami", RequireIdentity(), func(c *gin.Context) {
		id, _ := Identity(c)
		c.JSON(http.StatusOK, gin.H{"actor": domain.ActorID(id)})
	})
	return r
}

func TestSessionTokenRoundTrip(t *testing.T) {
	raw, expires, err := GenerateSessionToken(testSession, domain.User{Email: "Alice@Acme.Test", Name: "Alice"})
	require.NoError(t, err)
	assert.True(t, expires.After(time.Now()))

	user, err := ParseSessionToken(testSession, raw)
	require.NoError(t, err)
	assert.Equal(t, "alice@acme.test", user.Email)
	assert.Equal(t, "Alice", user.Name)

	_, err = ParseSessionToken(SessionConfig{SigningKey: []byte("wrong-key-wrong-key-wrong-key-00")}, raw)
	require.Error(t, err)
}

func TestAuthenticateSession(t *testing.T) {
	r := identityRouter(stubVerifier{})
	raw, _, err := GenerateSessionToken(testSession, domain.User{Email: "alice@acme.test"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@acme.test")
}

func TestAuthenticateAdminKey(t *testing.T) {
	r := identityRouter(stubVerifier{res: sdkauth.Result{
		Identity: domain.APIKey{KeyID: "key-1", WorkspaceID: "ws-1"},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer rpa_deadbeef")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "key-1")
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	r := identityRouter(stubVerifier{err: apperrors.ErrInvalidToken()})

	for name, header := range map[string]string{
		"no header":     "",
		"not bearer":    "Basic abc",
		"bad admin key": "Bearer rpa_deadbeef",
		"garbage token": "Bearer not-a-jwt",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}

func TestErrorHandlerRendersAppError(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler())
	r.GET("/conflict", func(c *gin.Context) {
		c.Error(apperrors.ErrConfigVersionMismatch(5, 3))
	})
	r.GET("/boom", func(c *gin.Context) {
		c.Error(assert.AnError)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/conflict", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.CodeConfigVersionMismatch)
	assert.Contains(t, w.Body.String(), "currentVersion")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.CodeInternal)
}
