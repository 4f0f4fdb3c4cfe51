package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/restaurant-api/internal/authorization"
	"github.com/oksasatya/restaurant-api/internal/domain/entity"
	"github.com/oksasatya/restaurant-api/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

type counter map[int64]int

func (c counter) CountByCreator(_ context.Context, id int64) (int, error) { return c[id], nil }

func newJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("test-secret", "restaurant-api-test", time.Hour)
}

func token(t *testing.T, jwt *helpers.JWTManager, id int64, role string) string {
	t.Helper()
	tok, _, err := jwt.GenerateToken(&entity.User{ID: id, RoleName: role, FirstName: "T"})
	require.NoError(t, err)
	return tok
}

func principalEcho(c *gin.Context) {
	p := PrincipalFrom(c)
	c.JSON(http.StatusOK, gin.H{"id": p.ID, "role": p.Role})
}

func do(r http.Handler, method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	jwt := newJWT()
	r := gin.New()
	r.GET("/me", Auth(jwt), principalEcho)

	w := do(r, http.MethodGet, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/me", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	other := helpers.NewJWTManager("other-secret", "restaurant-api-test", time.Hour)
	w = do(r, http.MethodGet, "/me", token(t, other, 1, entity.RoleAdmin))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/me", token(t, jwt, 7, entity.RoleManager))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7,"role":"Manager"}`, w.Body.String())
}

func TestOptionalAuth_FallsBackToAnonymous(t *testing.T) {
	jwt := newJWT()
	r := gin.New()
	r.GET("/me", OptionalAuth(jwt), principalEcho)

	w := do(r, http.MethodGet, "/me", "garbage")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":0,"role":""}`, w.Body.String())

	w = do(r, http.MethodGet, "/me", token(t, jwt, 3, entity.RoleUser))
	assert.JSONEq(t, `{"id":3,"role":"User"}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	jwt := newJWT()
	r := gin.New()
	r.POST("/restaurant", Auth(jwt), RequireRole(entity.RoleAdmin, entity.RoleManager), principalEcho)

	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPost, "/restaurant", token(t, jwt, 1, entity.RoleUser)).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/restaurant", token(t, jwt, 1, entity.RoleManager)).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/restaurant", token(t, jwt, 1, entity.RoleAdmin)).Code)
}

func TestRequirePolicy(t *testing.T) {
	jwt := newJWT()
	policies := authorization.NewPolicies(counter{1: 1, 2: 2})
	r := gin.New()
	r.GET("/restaurant", Auth(jwt),
		RequirePolicy(policies, authorization.PolicyCreatedAtLeastTwoRestaurants, helpers.NewNopLogger()),
		principalEcho)

	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/restaurant", token(t, jwt, 1, entity.RoleUser)).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/restaurant", token(t, jwt, 2, entity.RoleUser)).Code)

	r2 := gin.New()
	r2.GET("/x", RequirePolicy(policies, "Unknown", helpers.NewNopLogger()), principalEcho)
	assert.Equal(t, http.StatusInternalServerError, do(r2, http.MethodGet, "/x", "").Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := do(r, http.MethodGet, "/", "")
	generated := w.Header().Get(requestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "6f1c1bb0-8a47-4b3c-9d3c-3d2f1e0f2a11")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "6f1c1bb0-8a47-4b3c-9d3c-3d2f1e0f2a11", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "<script>")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Body.String())
}

func TestSlowRequest(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	r := gin.New()
	r.Use(SlowRequest(logger, 10*time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		time.Sleep(30 * time.Millisecond)
		c.Status(http.StatusOK)
	})
	r.GET("/fast", func(c *gin.Context) { c.Status(http.StatusOK) })

	do(r, http.MethodGet, "/fast", "")
	assert.Empty(t, hook.AllEntries())

	do(r, http.MethodGet, "/slow", "")
	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Contains(t, entry.Message, "/slow")
	assert.GreaterOrEqual(t, entry.Data["elapsed_ms"], int64(30))
}

func TestRateLimit_DisabledWithoutRedis(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimit(nil, nil, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/", "").Code)
	}
}

func TestKeyFuncs(t *testing.T) {
	jwt := newJWT()
	var keys []string
	r := gin.New()
	require.NoError(t, ConfigureClientIP(r, []string{"192.0.2.0/24", "10.0.0.0/8"}, ""))
	r.Use(RealIP())
	r.GET("/restaurant/:id", OptionalAuth(jwt), func(c *gin.Context) {
		keys = []string{KeyByIP()(c), KeyByIPAndPath()(c), KeyByPrincipal()(c)}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/restaurant/5", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, []string{
		"rl:ip:203.0.113.9",
		"rl:path:/restaurant/:id:ip:203.0.113.9",
		"rl:user:anon:ip:203.0.113.9",
	}, keys)

	req = httptest.NewRequest(http.MethodGet, "/restaurant/5", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, jwt, 42, entity.RoleUser))
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "rl:user:42", keys[2])
}

func clientIPEngine(t *testing.T, proxies []string, platform string) (*gin.Engine, *string, *bool) {
	t.Helper()
	var key string
	var bypass bool
	allow := AllowPrivateIP()
	r := gin.New()
	require.NoError(t, ConfigureClientIP(r, proxies, platform))
	r.Use(RealIP())
	r.GET("/", func(c *gin.Context) {
		key = KeyByIP()(c)
		bypass = allow(c)
	})
	return r, &key, &bypass
}

func requestFrom(remote string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remote
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestAllowPrivateIP(t *testing.T) {
	r, _, bypass := clientIPEngine(t, nil, "")

	r.ServeHTTP(httptest.NewRecorder(), requestFrom("192.168.1.20:5555", nil))
	assert.True(t, *bypass)

	r.ServeHTTP(httptest.NewRecorder(), requestFrom("8.8.8.8:5555", nil))
	assert.False(t, *bypass)
}

func TestClientIP_IgnoresForwardingHeadersFromUntrustedPeers(t *testing.T) {
	r, key, bypass := clientIPEngine(t, nil, "")

	r.ServeHTTP(httptest.NewRecorder(), requestFrom("203.0.113.9:5555", map[string]string{
		"X-Real-IP":        "127.0.0.1",
		"X-Forwarded-For":  "10.1.1.1",
		"CF-Connecting-IP": "192.168.0.1",
	}))
	assert.Equal(t, "rl:ip:203.0.113.9", *key)
	assert.False(t, *bypass)
}

func TestClientIP_TrustedProxyAndPlatform(t *testing.T) {
	r, key, _ := clientIPEngine(t, []string{"10.0.0.0/8"}, "")
	r.ServeHTTP(httptest.NewRecorder(), requestFrom("10.0.0.5:5555", map[string]string{"X-Forwarded-For": "198.51.100.7"}))
	assert.Equal(t, "rl:ip:198.51.100.7", *key)

	r, key, _ = clientIPEngine(t, nil, gin.PlatformCloudflare)
	r.ServeHTTP(httptest.NewRecorder(), requestFrom("203.0.113.9:5555", map[string]string{"CF-Connecting-IP": "198.51.100.8"}))
	assert.Equal(t, "rl:ip:198.51.100.8", *key)
}

func TestMetrics(t *testing.T) {
	m := NewMetrics("restaurant-api")
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/restaurant/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	do(r, http.MethodGet, "/restaurant/1", "")
	do(r, http.MethodGet, "/restaurant/2", "")

	w := do(r, http.MethodGet, "/metrics", "")
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body),
		`restaurant_api_http_requests_total{method="GET",route="/restaurant/:id",status="404"} 2`))
}
