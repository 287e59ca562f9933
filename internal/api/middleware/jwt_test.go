package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunspire/solar-crm/internal/config"
	"github.com/sunspire/solar-crm/pkg/types"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.JwtSecret = "test-secret"
	Init()
	m.Run()
}

func protectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/whoami", JWTAuthMiddleware(), func(c *gin.Context) {
		claims, err := GetClaims(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": ResolveUserID(claims)})
	})
	return r
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "asha@example.com", "customer", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, uint(42), ResolveUserID(claims))
}

func TestResolveUserIDSubjectFallback(t *testing.T) {
	claims := &types.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
	}
	assert.Equal(t, uint(42), ResolveUserID(claims))

	assert.Equal(t, uint(0), ResolveUserID(&types.Claims{}))
	assert.Equal(t, uint(0), ResolveUserID(&types.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-number"},
	}))
}

func TestJWTAuthMiddleware(t *testing.T) {
	r := protectedRouter()

	t.Run("bearer header is accepted", func(t *testing.T) {
		token, err := GenerateToken(42, "asha@example.com", "customer", time.Hour)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "42")
	})

	t.Run("token cookie is accepted", func(t *testing.T) {
		token, err := GenerateToken(42, "asha@example.com", "customer", time.Hour)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Token abc")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := GenerateToken(42, "asha@example.com", "customer", -time.Minute)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, &types.Claims{UserID: 42})
		signed, err := foreign.SignedString([]byte("other-secret"))
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
