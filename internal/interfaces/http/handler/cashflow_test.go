package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	cashflowapp "github.com/ZaidAbuSamraa/alaml/internal/application/cashflow"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/cashflow"
	"github.com/ZaidAbuSamraa/alaml/internal/domain/partner"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/config"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/notify"
	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/persistence"
)

func setupCashflowRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&cashflow.Settings{},
		&cashflow.BaseCash{},
		&cashflow.DayRecord{},
		&cashflow.Payment{},
		&partner.Supplier{},
		&partner.CashflowNote{},
	))

	service := cashflowapp.NewService(
		persistence.NewGormCashflowSettingsRepository(db),
		persistence.NewGormBaseCashRepository(db),
		persistence.NewGormDayRecordRepository(db),
		persistence.NewGormCashflowPaymentRepository(db),
		persistence.NewGormSupplierRepository(db),
		persistence.NewGormCashflowNoteRepository(db),
		notify.NewWhatsAppNotifier(config.WhatsAppConfig{}, zap.NewNop()),
		zap.NewNop(),
	)

	engine := gin.New()
	api := engine.Group("/api/v1")
	NewCashflowHandler(service).RegisterRoutes(api)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCashflowHandler_GetMonth(t *testing.T) {
	engine := setupCashflowRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/cashflow/month/2026-03", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			Date   string `json:"date"`
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 31)
	assert.Equal(t, "2026-03-01", resp.Data[0].Date)
}

func TestCashflowHandler_GetMonth_BadToken(t *testing.T) {
	engine := setupCashflowRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/cashflow/month/march", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCashflowHandler_Mutations(t *testing.T) {
	engine := setupCashflowRouter(t)

	t.Run("set opening cash", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/cashflow/opening-cash",
			`{"date":"2026-03-01","amount":"5000"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_opening_cash_manual":true`)
	})

	t.Run("add payment", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/cashflow/payment",
			`{"date":"2026-03-02","amount":"750","recipient_name":"Vendor"}`)
		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("payment with missing recipient is rejected", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/cashflow/payment",
			`{"date":"2026-03-02","amount":"750"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update day policy", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPut, "/api/v1/cashflow/day/2026-03-05",
			`{"deduct_same_day":false}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deduct_same_day":false`)
	})

	t.Run("delete unknown payment returns 404", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodDelete,
			"/api/v1/cashflow/payment/9f4e31a2-58b8-4f28-9f0f-0a4cbb6a3a10", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("reset month", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodDelete, "/api/v1/cashflow/reset/2026-03", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestCashflowHandler_Settings(t *testing.T) {
	engine := setupCashflowRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/cashflow/settings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"default_daily_sales":"6000"`)

	w = doJSON(t, engine, http.MethodPut, "/api/v1/cashflow/settings",
		`{"safety_threshold":"3500"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"safety_threshold":"3500"`)
}

func TestCashflowHandler_Export(t *testing.T) {
	engine := setupCashflowRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/cashflow/export/2026-03", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "cashflow-2026-03.xlsx")
	assert.Greater(t, w.Body.Len(), 0)
}
