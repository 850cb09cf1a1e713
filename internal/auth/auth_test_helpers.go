package auth

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"QuickShift-backend/internal/database"
	"QuickShift-backend/internal/testutil"
)

// GetAccessToken logs in as the given seeded user and returns a fresh
// access token for use in handler tests.
func GetAccessToken(
	t *testing.T,
	db *database.DBinstanceStruct,
	email string,
	password string,
) (string, error) {
	t.Helper()

	handler := NewLocalAuthHandler(db)
	r := gin.New()
	r.POST("/login", handler.LocalLoginHandler)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"email":    email,
		"password": password,
	}, "", r, "/login", http.MethodPost)

	if rec.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d: %s", rec.Code, rec.Body.String())
	}

	token, ok := resp["access_token"].(string)
	if !ok || token == "" {
		return "", fmt.Errorf("login response missing access token")
	}
	return token, nil
}
