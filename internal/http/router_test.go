package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/http/handlers"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/http/middleware"
	"github.com/vorobeiDev/goit-pythonweb-hw-12/internal/mocks"
)

func buildTestRouter(t *testing.T, corsOrigins []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	modelText := `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && regexMatch(r.act, p.act)
`
	m, err := model.NewModelFromString(modelText)
	require.NoError(t, err)
	enforcer, err := casbin.NewEnforcer(m)
	require.NoError(t, err)

	return BuildRouter(
		handlers.NewAuthHandlers(mocks.NewMockAuthService(), "http://localhost:8000"),
		handlers.NewContactHandlers(mocks.NewMockContactService()),
		handlers.NewUserHandlers(mocks.NewMockUserService()),
		handlers.NewHealthHandlers(db),
		middleware.NewAuthMW(mocks.NewMockTokenService(), mocks.NewMockSessionCache(), mocks.NewMockUserRepository()),
		middleware.NewCasbinMW(enforcer),
		middleware.NewRateLimitMW(client, 5, time.Minute),
		corsOrigins,
	)
}

func TestBuildRouter_CORSPreflight(t *testing.T) {
	router := buildTestRouter(t, []string{"http://localhost:4000", "http://127.0.0.1:4000"})

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:4000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:4000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestBuildRouter_CORSRejectsUnknownOrigin(t *testing.T) {
	router := buildTestRouter(t, []string{"http://localhost:4000"})

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestBuildRouter_CORSHeadersOnActualRequest(t *testing.T) {
	router := buildTestRouter(t, []string{"http://localhost:4000"})

	req := httptest.NewRequest(http.MethodGet, "/api/healthchecker", nil)
	req.Header.Set("Origin", "http://localhost:4000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:4000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestBuildRouter_NoCORSWhenUnconfigured(t *testing.T) {
	router := buildTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/healthchecker", nil)
	req.Header.Set("Origin", "http://localhost:4000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
