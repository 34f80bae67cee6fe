package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vallabh/collegehub/internal/app/models"
	"github.com/vallabh/collegehub/internal/pkg/auth"
)

type capturedIdentity struct {
	userID int64
	email  string
	role   string
	ok     bool
}

func newTestJWTService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "collegehub.test",
	})
}

func issueToken(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{
		ID:       7,
		Email:    "asha@iitb.ac.in",
		RoleType: role,
	})
	require.NoError(t, err)
	return token
}

func newAuthTestRouter(jwtService *auth.JWTService) (*gin.Engine, *capturedIdentity) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	m := NewAuthMiddleware(jwtService)

	captured := &capturedIdentity{}
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		captured.userID, captured.ok = CurrentUserID(c)
		captured.email, _ = CurrentEmail(c)
		if role, exists := c.Get("roleType"); exists {
			captured.role, _ = role.(string)
		}
		c.Status(http.StatusOK)
	})
	return router, captured
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, _ := newAuthTestRouter(newTestJWTService(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthBearerToken(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router, captured := newAuthTestRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleStudent))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, captured.ok)
	assert.Equal(t, int64(7), captured.userID)
	assert.Equal(t, "asha@iitb.ac.in", captured.email)
	assert.Equal(t, string(models.RoleStudent), captured.role)
}

func TestJWTAuthLegacyHeader(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	router, captured := newAuthTestRouter(jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(LegacyTokenHeader, issueToken(t, jwtService, models.RoleInstitute))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, captured.ok)
	assert.Equal(t, int64(7), captured.userID)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	expired := newTestJWTService(-time.Minute)
	router, _ := newAuthTestRouter(expired)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, expired, models.RoleStudent))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthGarbageToken(t *testing.T) {
	router, _ := newAuthTestRouter(newTestJWTService(time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := newTestJWTService(time.Hour)
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/institute", m.JWTAuth(), m.RoleRequired(models.RoleInstitute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/institute", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleInstitute))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/institute", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, models.RoleStudent))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoleRequiredWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(newTestJWTService(time.Hour))

	// RoleRequired without a preceding JWTAuth finds no role in context
	router := gin.New()
	router.GET("/institute", m.RoleRequired(models.RoleInstitute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/institute", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
