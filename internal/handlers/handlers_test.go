package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shelfd-dev/shelfd/db"
	"github.com/shelfd-dev/shelfd/internal/handlers"
	"github.com/shelfd-dev/shelfd/internal/router"
	"github.com/shelfd-dev/shelfd/internal/store"
	"github.com/shelfd-dev/shelfd/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	s := store.New(conn)

	return router.NewRouter(handlers.NewUserHandler(s), handlers.NewItemHandler(s), []string{"http://localhost:3000"})
}

func performRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestCreateUserEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/users", `{"email":"a@b.com","password":"x"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var user types.UserResponse
	decodeJSON(t, w, &user)

	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "a@b.com", user.Email)
	assert.True(t, user.IsActive)
	assert.NotNil(t, user.Items)
	assert.Empty(t, user.Items)

	// The stored password never appears in any projection.
	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

func TestCreateUserEndpoint_DuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/users", `{"email":"a@b.com","password":"x"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, r, http.MethodPost, "/users", `{"email":"a@b.com","password":"y"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestCreateUserEndpoint_MalformedBody(t *testing.T) {
	r := newTestRouter(t)

	for _, body := range []string{"", "{", `{"email":"a@b.com"}`, `{"password":"x"}`, `{"email":"not-an-email","password":"x"}`} {
		w := performRequest(t, r, http.MethodPost, "/users", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestGetUserEndpoint_NotFound(t *testing.T) {
	r := newTestRouter(t)

	w := performRequest(t, r, http.MethodGet, "/users/42", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestListUsersEndpoint_Pagination(t *testing.T) {
	r := newTestRouter(t)

	for _, email := range []string{"first@b.com", "second@b.com"} {
		w := performRequest(t, r, http.MethodPost, "/users", fmt.Sprintf(`{"email":%q,"password":"x"}`, email))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := performRequest(t, r, http.MethodGet, "/users?skip=0&limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var page []types.UserResponse
	decodeJSON(t, w, &page)
	require.Len(t, page, 1)
	assert.Equal(t, "first@b.com", page[0].Email)

	w = performRequest(t, r, http.MethodGet, "/users?skip=1&limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)

	decodeJSON(t, w, &page)
	require.Len(t, page, 1)
	assert.Equal(t, "second@b.com", page[0].Email)
}

func TestUpdateUserEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/users", `{"email":"a@b.com","password":"x"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, r, http.MethodPut, "/users/1", `{"email":"new@b.com","password":null,"is_active":false}`)
	require.Equal(t, http.StatusOK, w.Code)

	var user types.UserResponse
	decodeJSON(t, w, &user)

	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "new@b.com", user.Email)
	assert.False(t, user.IsActive)
}

func TestUpdateUserEndpoint_NotFound(t *testing.T) {
	r := newTestRouter(t)

	w := performRequest(t, r, http.MethodPut, "/users/42", `{"email":"a@b.com"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestUpdateUserEndpoint_EmailConflict(t *testing.T) {
	r := newTestRouter(t)

	for _, email := range []string{"taken@b.com", "free@b.com"} {
		w := performRequest(t, r, http.MethodPost, "/users", fmt.Sprintf(`{"email":%q,"password":"x"}`, email))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := performRequest(t, r, http.MethodPut, "/users/2", `{"email":"taken@b.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestDeleteUserEndpoint_NotFound(t *testing.T) {
	r := newTestRouter(t)

	w := performRequest(t, r, http.MethodDelete, "/users/42", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestCreateItemEndpoint_MissingOwner(t *testing.T) {
	r := newTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/users/42/items", `{"title":"t"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "owner does not exist")
}

// TestUserItemLifecycle walks the full scenario: create a user, attach an
// item, read it back through the user, delete the user, and observe the
// cascade through the items listing.
func TestUserItemLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := performRequest(t, r, http.MethodPost, "/users", `{"email":"a@b.com","password":"x"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var user types.UserResponse
	decodeJSON(t, w, &user)
	require.Equal(t, uint(1), user.ID)
	assert.True(t, user.IsActive)
	assert.Empty(t, user.Items)

	w = performRequest(t, r, http.MethodPost, "/users/1/items", `{"title":"t"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var item types.ItemResponse
	decodeJSON(t, w, &item)
	assert.Equal(t, uint(1), item.ID)
	assert.Equal(t, "t", item.Title)
	assert.Equal(t, uint(1), item.OwnerID)

	w = performRequest(t, r, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	decodeJSON(t, w, &user)
	require.Len(t, user.Items, 1)
	assert.Equal(t, "t", user.Items[0].Title)

	w = performRequest(t, r, http.MethodDelete, "/users/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var status types.StatusMessage
	decodeJSON(t, w, &status)
	assert.Equal(t, "Delete successful.", status.Message)

	w = performRequest(t, r, http.MethodGet, "/items", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
