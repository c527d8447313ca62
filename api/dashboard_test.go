package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"gigbook/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler_GetKPI(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	sentLongAgo := now.AddDate(0, 0, -40)
	mock.ExpectQuery("SELECT .* FROM `entries`").
		WillReturnRows(sqlmock.NewRows(entryColumns).
			// sent 40 days ago, still unpaid: outstanding and overdue
			AddRow(1, 1, sentLongAgo, 600.0, 0.0, 18.0,
				true, models.InvoiceSent, models.PaymentUnpaid, sentLongAgo,
				nil, "Acme Ltd", nil, nil, "", now, now, nil).
			// finished yesterday, not yet invoiced: ready to invoice
			AddRow(2, 1, now.AddDate(0, 0, -1), 500.0, 0.0, 18.0,
				true, models.InvoiceDraft, models.PaymentUnpaid, nil,
				nil, "Beta Corp", nil, nil, "", now, now, nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/dashboard/kpi", NewDashboardHandler().GetKPI)

	req := httptest.NewRequest("GET", "/dashboard/kpi", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(600), data["outstanding"])
	assert.Equal(t, float64(500), data["ready_to_invoice"])
	assert.Equal(t, float64(1), data["ready_to_invoice_count"])
	assert.Equal(t, float64(1), data["overdue_count"])
	assert.Equal(t, float64(1), data["invoiced_count"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardHandler_GetSeries_Weekly(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	workDate := time.Date(2026, 3, 3, 0, 0, 0, 0, time.Local)
	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `entries`").
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(1, 1, workDate, 100.0, 0.0, 18.0,
				true, models.InvoiceDraft, models.PaymentUnpaid, nil,
				nil, "Acme Ltd", nil, nil, "", now, now, nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/dashboard/series", NewDashboardHandler().GetSeries)

	// 2026-03-01 is a Sunday; a 14-day range yields two week buckets
	req := httptest.NewRequest("GET", "/dashboard/series?start_date=2026-03-01&end_date=2026-03-14", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	buckets := resp["data"].([]interface{})
	require.Len(t, buckets, 2)
	first := buckets[0].(map[string]interface{})
	assert.Equal(t, float64(100), first["total"])
	assert.Equal(t, float64(1), first["count"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardHandler_GetSeries_MissingRange(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/dashboard/series", NewDashboardHandler().GetSeries)

	req := httptest.NewRequest("GET", "/dashboard/series?start_date=2026-03-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestDashboardHandler_GetCategories(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `entries`").
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(1, 1, now, 300.0, 0.0, 18.0,
				true, models.InvoiceDraft, models.PaymentUnpaid, nil,
				nil, "Acme Ltd", nil, 1, "", now, now, nil).
			AddRow(2, 1, now, 200.0, 0.0, 18.0,
				true, models.InvoiceDraft, models.PaymentUnpaid, nil,
				nil, "Beta Corp", nil, nil, "", now, now, nil))
	// category preload
	mock.ExpectQuery("SELECT .* FROM `categories`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "icon", "sort", "is_archived", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "פיתוח", "#10b981", "code", 30, false, now, now, nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/dashboard/categories", NewDashboardHandler().GetCategories)

	req := httptest.NewRequest("GET", "/dashboard/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	buckets := resp["data"].([]interface{})
	require.Len(t, buckets, 2)
	first := buckets[0].(map[string]interface{})
	assert.Equal(t, "פיתוח", first["category"])
	assert.Equal(t, float64(300), first["total"])
	second := buckets[1].(map[string]interface{})
	assert.Equal(t, "uncategorized", second["category"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardHandler_GetAttention(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `entries`").
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(1, 1, now.AddDate(0, 0, -5), 900.0, 0.0, 18.0,
				true, models.InvoiceSent, models.PaymentUnpaid, now.AddDate(0, 0, -4),
				nil, "Acme Ltd", nil, nil, "", now, now, nil).
			AddRow(2, 1, now.AddDate(0, 0, -3), 1500.0, 0.0, 18.0,
				true, models.InvoiceDraft, models.PaymentUnpaid, nil,
				nil, "Beta Corp", nil, nil, "", now, now, nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/dashboard/attention", NewDashboardHandler().GetAttention)

	req := httptest.NewRequest("GET", "/dashboard/attention", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	require.Len(t, items, 2)
	// largest amount first
	first := items[0].(map[string]interface{})
	assert.Equal(t, "no invoice", first["label"])
	require.NoError(t, mock.ExpectationsWereMet())
}
