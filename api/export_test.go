package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gigbook/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHandler_ExportCSV(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	workDate := time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `entries`").
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(1, 1, workDate, 1500.0, 0.0, 18.0,
				true, models.InvoiceDraft, models.PaymentUnpaid, nil,
				nil, "Acme Ltd", nil, nil, "site redesign", now, now, nil))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/export/csv", NewExportHandler().ExportCSV)

	req := httptest.NewRequest("GET", "/export/csv?start_date=2026-02-01&end_date=2026-02-28", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "entries_2026-02-01_2026-02-28.csv")

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"), "CSV should start with a UTF-8 BOM")
	assert.Contains(t, body, "Work date")
	assert.Contains(t, body, "Acme Ltd")
	assert.Contains(t, body, "1500.00")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_ExportCSV_MissingRange(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/export/csv", NewExportHandler().ExportCSV)

	req := httptest.NewRequest("GET", "/export/csv?start_date=2026-02-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestExportHandler_ExportXLSX(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	workDate := time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `entries`").
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow(1, 1, workDate, 1500.0, 0.0, 18.0,
				true, models.InvoiceDraft, models.PaymentUnpaid, nil,
				nil, "Acme Ltd", nil, nil, "", now, now, nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/export/xlsx", NewExportHandler().ExportXLSX)

	req := httptest.NewRequest("GET", "/export/xlsx?start_date=2026-02-01&end_date=2026-02-28", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "entries_2026-02-01_2026-02-28.xlsx")
	// XLSX files are zip archives
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
	require.NoError(t, mock.ExpectationsWereMet())
}
