package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	identityapp "github.com/ZaidAbuSamraa/alaml/internal/application/identity"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/identity"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/auth"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/config"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/persistence"
	"github.com/ZaidAbuSamraa/alaml/internal/interfaces/http/middleware"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&identity.User{}, &identity.Employee{}))

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-test-secret-test-secret!",
		TokenExpiration: time.Hour,
		Issuer:          "alaml-test",
	})
	authService := identityapp.NewAuthService(
		persistence.NewGormUserRepository(db),
		persistence.NewGormEmployeeRepository(db),
		jwtService,
		zap.NewNop(),
	)

	engine := gin.New()
	engine.Use(middleware.JWTAuth(jwtService))
	api := engine.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(api)
	return engine, db
}

func newAuthedRequest(t *testing.T, method, path, token string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req, httptest.NewRecorder()
}

func TestAuthHandler_LoginFlow(t *testing.T) {
	engine, db := setupAuthRouter(t)

	admin, err := identity.NewUser("admin", "secret123")
	require.NoError(t, err)
	require.NoError(t, db.Create(admin).Error)

	employee, err := identity.NewEmployee("Samir", "samir", "secret456", decimal.NewFromInt(20), "barista")
	require.NoError(t, err)
	require.NoError(t, db.Create(employee).Error)

	login := func(body string) *json.RawMessage {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp struct {
			Data json.RawMessage `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return &resp.Data
	}

	t.Run("admin login", func(t *testing.T) {
		data := login(`{"username":"admin","password":"secret123"}`)
		var payload struct {
			Token   string `json:"token"`
			Account struct {
				AccountType string `json:"account_type"`
				Role        string `json:"role"`
			} `json:"account"`
		}
		require.NoError(t, json.Unmarshal(*data, &payload))
		assert.NotEmpty(t, payload.Token)
		assert.Equal(t, "admin", payload.Account.AccountType)
	})

	t.Run("employee login", func(t *testing.T) {
		data := login(`{"username":"samir","password":"secret456"}`)
		var payload struct {
			Token   string `json:"token"`
			Account struct {
				AccountType string `json:"account_type"`
				Name        string `json:"name"`
			} `json:"account"`
		}
		require.NoError(t, json.Unmarshal(*data, &payload))
		assert.Equal(t, "employee", payload.Account.AccountType)
		assert.Equal(t, "Samir", payload.Account.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login",
			`{"username":"admin","password":"wrong-pass"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown username", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login",
			`{"username":"ghost","password":"whatever"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me requires a token", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/auth/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me returns the token's account", func(t *testing.T) {
		data := login(`{"username":"admin","password":"secret123"}`)
		var payload struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(*data, &payload))

		req, w := newAuthedRequest(t, http.MethodGet, "/api/v1/auth/me", payload.Token)
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"admin"`)
	})
}
