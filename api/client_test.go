package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clientColumns = []string{
	"id", "user_id", "name", "email", "phone", "default_rate",
	"is_archived", "display_order", "created_at", "updated_at", "deleted_at",
}

func TestClientHandler_Merge(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	// target lookup
	mock.ExpectQuery("SELECT .* FROM `clients`").
		WillReturnRows(sqlmock.NewRows(clientColumns).
			AddRow(1, 1, "Acme Ltd", "", "", 0.0, false, 0, time.Now(), time.Now(), nil))
	// source lookup
	mock.ExpectQuery("SELECT .* FROM `clients`").
		WillReturnRows(sqlmock.NewRows(clientColumns).
			AddRow(2, 1, "acme", "", "", 0.0, false, 0, time.Now(), time.Now(), nil).
			AddRow(3, 1, "ACME LTD", "", "", 0.0, false, 0, time.Now(), time.Now(), nil))
	// re-point entries, then archive sources
	mock.ExpectExec("UPDATE `entries`").
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectExec("UPDATE `clients`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/clients/merge", NewClientHandler().Merge)

	body := `{"target_id":1,"source_ids":[2,3]}`
	req := httptest.NewRequest("POST", "/clients/merge", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["target_id"])
	assert.Equal(t, "Acme Ltd", data["target_name"])
	assert.Equal(t, float64(7), data["entries_updated"])
	assert.Equal(t, float64(2), data["sources_merged"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientHandler_Merge_TargetMissing(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `clients`").
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectRollback()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/clients/merge", NewClientHandler().Merge)

	body := `{"target_id":99,"source_ids":[2]}`
	req := httptest.NewRequest("POST", "/clients/merge", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientHandler_Merge_TargetInSources(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/clients/merge", NewClientHandler().Merge)

	body := `{"target_id":1,"source_ids":[1,2]}`
	req := httptest.NewRequest("POST", "/clients/merge", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestClientHandler_MergeNames(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	// FirstOrCreate finds the existing target client
	mock.ExpectQuery("SELECT .* FROM `clients`").
		WillReturnRows(sqlmock.NewRows(clientColumns).
			AddRow(1, 1, "Acme Ltd", "", "", 0.0, false, 0, time.Now(), time.Now(), nil))
	// the repoint covers both source spellings and the target spelling,
	// so unlinked entries already named "Acme Ltd" pick up the client id
	mock.ExpectExec("UPDATE `entries`").
		WithArgs(1, "Acme Ltd", sqlmock.AnyArg(), 1, "acme", "ACME LTD", "Acme Ltd").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("UPDATE `clients`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/clients/merge-names", NewClientHandler().MergeNames)

	body := `{"target_name":"Acme Ltd","source_names":["acme","ACME LTD","Acme Ltd"]}`
	req := httptest.NewRequest("POST", "/clients/merge-names", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Acme Ltd", data["target_name"])
	assert.Equal(t, float64(4), data["entries_updated"])
	// the target spelling repoints entries but does not count as a source
	assert.Equal(t, float64(2), data["sources_merged"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientHandler_Duplicates(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `entries`").
		WillReturnRows(sqlmock.NewRows([]string{"client_name", "count", "last_used"}).
			AddRow("Acme Ltd", 5, time.Now()).
			AddRow("acme", 3, time.Now()).
			AddRow("Beta Corp", 2, time.Now()))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/clients/duplicates", NewClientHandler().Duplicates)

	req := httptest.NewRequest("GET", "/clients/duplicates", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	groups := resp["data"].([]interface{})
	require.Len(t, groups, 1)
	group := groups[0].(map[string]interface{})
	assert.Equal(t, "acme", group["normalized_name"])
	assert.Equal(t, float64(8), group["total_count"])
	variants := group["variants"].([]interface{})
	require.Len(t, variants, 2)
	first := variants[0].(map[string]interface{})
	assert.Equal(t, "Acme Ltd", first["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}
