package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestlistapp/guestlist-api/internal/pkg/jwthelper"
)

const testSigningKey = "middleware-test-key"

func setupRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers = append(handlers, func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"userID":  ctx.GetUint(CtxKeyUserID),
			"isAdmin": ctx.GetBool(CtxKeyIsAdmin),
		})
	})
	router.GET("/protected", handlers...)

	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestVerifyJWT(t *testing.T) {
	auth := NewAuthenticator(testSigningKey)

	validToken, err := jwthelper.GenerateToken([]byte(testSigningKey), 7, false)
	require.NoError(t, err)

	foreignToken, err := jwthelper.GenerateToken([]byte("some-other-key"), 7, false)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + validToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer header", "Basic abc123", http.StatusUnauthorized},
		{"bearer without token", "Bearer", http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"token signed with another key", "Bearer " + foreignToken, http.StatusUnauthorized},
	}

	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(setupRouter(auth.VerifyJWT()), tt.header)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				bodies = append(bodies, w.Body.String())
			}
		})
	}

	// Every rejection renders the identical body; callers cannot tell a
	// missing header from a bad token.
	for _, body := range bodies {
		assert.JSONEq(t, `{"error":"invalid or missing token"}`, body)
	}
}

func TestVerifyJWT_SetsContext(t *testing.T) {
	auth := NewAuthenticator(testSigningKey)

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), 42, true)
	require.NoError(t, err)

	w := doRequest(setupRouter(auth.VerifyJWT()), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":42,"isAdmin":true}`, w.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	auth := NewAuthenticator(testSigningKey)

	adminToken, err := jwthelper.GenerateToken([]byte(testSigningKey), 1, true)
	require.NoError(t, err)

	userToken, err := jwthelper.GenerateToken([]byte(testSigningKey), 2, false)
	require.NoError(t, err)

	router := setupRouter(auth.VerifyJWT(), RequireAdmin())

	t.Run("admin passes", func(t *testing.T) {
		w := doRequest(router, "Bearer "+adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		w := doRequest(router, "Bearer "+userToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("anonymous is unauthenticated before the role check", func(t *testing.T) {
		w := doRequest(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
