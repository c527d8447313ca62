package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"gigbook/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarHandler_Classify(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `keyword_rules`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "category", "keyword", "client", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, 1, "work", "meeting", "Acme Ltd", now, now, nil).
			AddRow(2, 1, "personal", "gym", "", now, now, nil))

	cfg := &config.Config{}
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/calendar/classify", NewCalendarHandler(cfg).Classify)

	body := `{"events":[
		{"id":"e1","title":"Meeting with Dana","start":"2026-03-03T10:00:00Z","end":"2026-03-03T11:00:00Z"},
		{"id":"e2","title":"Gym","start":"2026-03-03T18:00:00Z","end":"2026-03-03T19:00:00Z"},
		{"id":"e3","title":"Lunch","start":"2026-03-04T12:00:00Z","end":"2026-03-04T13:00:00Z"}
	]}`
	req := httptest.NewRequest("POST", "/calendar/classify", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	results := resp["data"].([]interface{})
	require.Len(t, results, 3)

	first := results[0].(map[string]interface{})
	assert.Equal(t, true, first["is_work"])
	assert.Equal(t, "meeting", first["matched_keyword"])
	assert.Equal(t, "Acme Ltd", first["suggested_client"])

	second := results[1].(map[string]interface{})
	assert.Equal(t, false, second["is_work"])

	// no rule matches: defaults to work at 0.5, below the import threshold
	third := results[2].(map[string]interface{})
	assert.Equal(t, true, third["is_work"])
	assert.Equal(t, 0.5, third["confidence"])
	assert.Equal(t, false, third["auto_import"])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCalendarHandler_Preview_Disabled(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{} // calendar integration off
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/calendar/preview", NewCalendarHandler(cfg).Preview)

	req := httptest.NewRequest("GET", "/calendar/preview?calendar_id=main", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 502, w.Code)
}

func TestCalendarHandler_Preview_MissingCalendarID(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	cfg := &config.Config{}
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/calendar/preview", NewCalendarHandler(cfg).Preview)

	req := httptest.NewRequest("GET", "/calendar/preview", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
