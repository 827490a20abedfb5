package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grazy/inventoryapp/internal/contract"
)

func newTestRouter(t *testing.T, dbPath string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterConfig{DatabasePath: dbPath, Version: "test"})
}

func doGet(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", target, nil)
	router.ServeHTTP(w, req)
	return w
}

func createSQLite(t *testing.T, ddl string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(ddl)
	require.NoError(t, err)
	return path
}

func TestContractController_Describe(t *testing.T) {
	router := newTestRouter(t, "")

	w := doGet(router, "/api/contract")
	require.Equal(t, http.StatusOK, w.Code)

	var resp contract.Descriptor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "com.example.grazy.inventoryapp", resp.Authority)
	assert.Equal(t, "content://com.example.grazy.inventoryapp/books", resp.ContentURI)
	assert.Equal(t, contract.ContentListType, resp.ContentListType)
	assert.Equal(t, contract.ContentItemType, resp.ContentItemType)
	assert.Equal(t, "books", resp.Table)
	assert.Len(t, resp.Columns, 6)
}

func TestContractController_Columns(t *testing.T) {
	router := newTestRouter(t, "")

	w := doGet(router, "/api/contract/columns")
	require.Equal(t, http.StatusOK, w.Code)

	var specs []contract.ColumnSpec
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &specs))
	assert.Equal(t, contract.ColumnSpecs(), specs)
}

func TestContractController_Schema(t *testing.T) {
	router := newTestRouter(t, "")

	w := doGet(router, "/api/contract/schema")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contract.CreateTableSQL()+"\n", w.Body.String())
}

func TestContractController_Type(t *testing.T) {
	router := newTestRouter(t, "")

	t.Run("collection", func(t *testing.T) {
		w := doGet(router, "/api/contract/type?uri="+url.QueryEscape(contract.ContentURI))
		require.Equal(t, http.StatusOK, w.Code)

		var resp TypeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "books", resp.Match)
		assert.Equal(t, contract.ContentListType, resp.Type)
		assert.Nil(t, resp.ID)
	})

	t.Run("single book", func(t *testing.T) {
		w := doGet(router, "/api/contract/type?uri="+url.QueryEscape(contract.BookURI(12)))
		require.Equal(t, http.StatusOK, w.Code)

		var resp TypeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "book_id", resp.Match)
		assert.Equal(t, contract.ContentItemType, resp.Type)
		require.NotNil(t, resp.ID)
		assert.Equal(t, int64(12), *resp.ID)
	})

	t.Run("unknown path", func(t *testing.T) {
		w := doGet(router, "/api/contract/type?uri="+url.QueryEscape(contract.BaseContentURI+"/staff"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("foreign authority", func(t *testing.T) {
		w := doGet(router, "/api/contract/type?uri="+url.QueryEscape("content://org.example/books"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing parameter", func(t *testing.T) {
		w := doGet(router, "/api/contract/type")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestContractController_Verify(t *testing.T) {
	t.Run("matching database", func(t *testing.T) {
		router := newTestRouter(t, createSQLite(t, contract.CreateTableSQL()))

		w := doGet(router, "/api/contract/verify")
		require.Equal(t, http.StatusOK, w.Code)

		var resp VerifyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
	})

	t.Run("drifted database", func(t *testing.T) {
		path := createSQLite(t, "CREATE TABLE books (_id INTEGER PRIMARY KEY, product_name TEXT)")
		router := newTestRouter(t, path)

		w := doGet(router, "/api/contract/verify")
		require.Equal(t, http.StatusConflict, w.Code)

		var resp VerifyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "mismatch", resp.Status)
		require.NotNil(t, resp.Mismatch)
		assert.ElementsMatch(t, []string{"quantity", "price", "supplier_name", "supplier_phone_number"}, resp.Mismatch.Missing)
	})

	t.Run("missing constraints", func(t *testing.T) {
		path := createSQLite(t, "CREATE TABLE books (_id INTEGER, product_name TEXT, quantity DOUBLE, price INTEGER, supplier_name TEXT, supplier_phone_number TEXT)")
		router := newTestRouter(t, path)

		w := doGet(router, "/api/contract/verify")
		require.Equal(t, http.StatusConflict, w.Code)

		var resp VerifyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Mismatch)
		assert.Empty(t, resp.Mismatch.Missing)
		assert.Len(t, resp.Mismatch.Constraints, 2)
	})

	t.Run("missing table", func(t *testing.T) {
		router := newTestRouter(t, createSQLite(t, "CREATE TABLE staff (_id INTEGER)"))

		w := doGet(router, "/api/contract/verify")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing database", func(t *testing.T) {
		router := newTestRouter(t, filepath.Join(t.TempDir(), "absent.db"))

		w := doGet(router, "/api/contract/verify")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("path not configured", func(t *testing.T) {
		router := newTestRouter(t, "")

		w := doGet(router, "/api/contract/verify")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("unexpected error", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		controller := NewContractController("x.db")
		controller.verify = func(string) error { return errors.New("disk on fire") }

		router := gin.New()
		router.GET("/verify", controller.Verify)

		w := doGet(router, "/verify")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
