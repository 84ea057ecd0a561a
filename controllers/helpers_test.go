package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cppla/minisocial/models"
	"github.com/cppla/minisocial/routes"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("GIN_MODE", "test")
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}))
	return db
}

func setupServer(t *testing.T) (*gorm.DB, http.Handler) {
	t.Helper()
	db := setupTestDB(t)
	return db, routes.SetupRouter(db)
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// authenticate registers or logs in and returns the bearer token.
func authenticate(t *testing.T, h http.Handler, email, password string) string {
	t.Helper()
	w := doJSON(t, h, http.MethodPost, "/api/authenticate", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "authenticate failed: %s", w.Body.String())

	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)
	return resp.Message
}

func loadUserByEmail(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	var user models.User
	require.NoError(t, db.Where("email = ?", email).First(&user).Error)
	return user
}

func followPath(id uint) string   { return fmt.Sprintf("/api/follow/%d", id) }
func unfollowPath(id uint) string { return fmt.Sprintf("/api/unfollow/%d", id) }
func postPath(id uint) string     { return fmt.Sprintf("/api/posts/%d", id) }
func likePath(id uint) string     { return fmt.Sprintf("/api/like/%d", id) }
func unlikePath(id uint) string   { return fmt.Sprintf("/api/unlike/%d", id) }
func commentPath(id uint) string  { return fmt.Sprintf("/api/comment/%d", id) }
