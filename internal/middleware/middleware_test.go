package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/operator"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(secret string) *gin.Engine {
	return protectedRouterAt(secret, time.Now)
}

func protectedRouterAt(secret string, clock timezone.Clock) *gin.Engine {
	r := gin.New()
	r.GET("/secure", AuthMiddleware(secret, clock), func(c *gin.Context) {
		actor := ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"operator_id": actor.OperatorID, "role": actor.Role})
	})
	return r
}

func TestAuthMiddleware_SetsActor(t *testing.T) {
	token, err := operator.IssueToken("secret", &models.Operator{ID: 4, Role: "admin"}, time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	protectedRouter("secret").ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"operator_id":4,"role":"admin"}`, w.Body.String())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	token, err := operator.IssueToken("other", &models.Operator{ID: 4, Role: "admin"}, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"no header", "", "missing_authorization_header"},
		{"wrong scheme", "Basic abc", "invalid_authorization_header"},
		{"bad signature", "Bearer " + token, "invalid_token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			protectedRouter("secret").ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}
}

func TestAuthMiddleware_UsesInjectedClock(t *testing.T) {
	issued := time.Date(2025, 3, 10, 16, 30, 0, 0, time.UTC)
	token, err := operator.IssueToken("secret", &models.Operator{ID: 4, Role: "admin"}, issued)
	require.NoError(t, err)

	call := func(clock timezone.Clock) int {
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		protectedRouterAt("secret", clock).ServeHTTP(w, req)
		return w.Code
	}

	// long expired by the wall clock, still fresh by the pinned one
	assert.Equal(t, http.StatusOK, call(timezone.Fixed(issued)))
	assert.Equal(t, http.StatusOK, call(timezone.Fixed(issued.Add(operator.TokenTTL-time.Minute))))
	assert.Equal(t, http.StatusUnauthorized, call(timezone.Fixed(issued.Add(operator.TokenTTL+time.Minute))))
}

func TestActorFrom(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(ContextActor, domain.Actor{OperatorID: 9, Role: "admin"})
	assert.Equal(t, uint(9), ActorFrom(c).OperatorID)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://shop.test"}))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://shop.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://shop.test", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/ping", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Equal(t, "/boom", entries[1].ContextMap()["path"])
}
