package job

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"QuickShift-backend/internal/auth"
	"QuickShift-backend/internal/database"
	"QuickShift-backend/internal/middleware"
	"QuickShift-backend/internal/model"
	"QuickShift-backend/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

// setupRouter mirrors the server's job routes, public and gated.
func setupRouter(db *database.DBinstanceStruct) *gin.Engine {
	r := gin.New()
	jc := NewJobController(db)

	api := r.Group("/api/v1")
	api.GET("/jobs", jc.GetJobs)
	api.GET("/jobs/:id", jc.GetJobByID)

	needEmployer := api.Group("", middleware.RequireAuth(db), middleware.CheckRole(model.RoleEmployer))
	needEmployer.POST("/jobs", jc.CreateJobHandler)
	needEmployer.PUT("/jobs/:id", jc.EditJobHandler)
	needEmployer.DELETE("/jobs/:id", jc.DeleteJobHandler)
	needEmployer.GET("/employer/jobs", jc.GetMyJobs)
	needEmployer.GET("/jobs/:id/applications", jc.GetJobApplications)

	return r
}

func accessToken(t *testing.T, user model.User) string {
	t.Helper()
	token, err := auth.GetAccessToken(t, testDB, user.Email, database.TestSeedPassword)
	require.NoError(t, err)
	return token
}

func newJobBody() gin.H {
	return gin.H{
		"title":         "Night Shift Picker",
		"company":       "Maple Logistics Inc.",
		"location":      "Toronto, ON",
		"pay":           23.00,
		"job_type":      model.JobTypeWarehouse,
		"description":   "Overnight order picking.",
		"contact_email": "jobs@maplelogistics.example.com",
	}
}

func TestCreateJob_endpoint(t *testing.T) {
	r := setupRouter(testDB)
	token := accessToken(t, database.TestEmployer1)

	rec, resp := testutil.MakeJSONRequest(newJobBody(), token, r, "/api/v1/jobs", http.MethodPost)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Night Shift Picker", resp["title"])
	assert.Equal(t, database.TestEmployer1.ID.String(), resp["owner_id"])
	assert.Equal(t, false, resp["is_published"])
}

func TestCreateJob_requiresToken(t *testing.T) {
	r := setupRouter(testDB)

	rec, _ := testutil.MakeJSONRequest(newJobBody(), "", r, "/api/v1/jobs", http.MethodPost)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = testutil.MakeJSONRequest(newJobBody(), "not-a-real-token", r, "/api/v1/jobs", http.MethodPost)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateJob_workerForbidden(t *testing.T) {
	r := setupRouter(testDB)
	token := accessToken(t, database.TestWorker1)

	rec, _ := testutil.MakeJSONRequest(newJobBody(), token, r, "/api/v1/jobs", http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateJob_invalidBody(t *testing.T) {
	r := setupRouter(testDB)
	token := accessToken(t, database.TestEmployer1)

	body := newJobBody()
	body["pay"] = -4.0
	rec, _ := testutil.MakeJSONRequest(body, token, r, "/api/v1/jobs", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body = newJobBody()
	body["surprise_field"] = "nope"
	rec, _ = testutil.MakeJSONRequest(body, token, r, "/api/v1/jobs", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetJobs_public(t *testing.T) {
	r := setupRouter(testDB)

	rec, resp := testutil.MakeJSONListRequest(nil, "", r, "/api/v1/jobs", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	seen := map[float64]bool{}
	for _, j := range resp {
		assert.Equal(t, true, j["is_published"])
		seen[j["id"].(float64)] = true
	}
	assert.True(t, seen[float64(database.TestJob1.ID)])
	assert.False(t, seen[float64(database.TestJob2.ID)], "drafts must not appear in the public listing")
}

func TestGetJobs_filters(t *testing.T) {
	r := setupRouter(testDB)

	rec, resp := testutil.MakeJSONListRequest(nil, "", r,
		"/api/v1/jobs?location=vancouver&job_type=construction", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, resp)
	for _, j := range resp {
		assert.Equal(t, model.JobTypeConstruction, j["job_type"])
	}
}

func TestGetJobs_malformedQuery(t *testing.T) {
	r := setupRouter(testDB)

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/api/v1/jobs?min_pay=abc", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, "", r, "/api/v1/jobs?limit=-2", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetJobByID_endpoint(t *testing.T) {
	r := setupRouter(testDB)

	rec, resp := testutil.MakeJSONRequest(nil, "", r,
		fmt.Sprintf("/api/v1/jobs/%d", database.TestJob1.ID), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, database.TestJob1.Title, resp["title"])

	// Draft, missing and garbage ids all come back identical
	rec, _ = testutil.MakeJSONRequest(nil, "", r,
		fmt.Sprintf("/api/v1/jobs/%d", database.TestJob2.ID), http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, "", r, "/api/v1/jobs/999999", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, "", r, "/api/v1/jobs/banana", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditJob_endpoint(t *testing.T) {
	r := setupRouter(testDB)
	token := accessToken(t, database.TestEmployer1)

	rec, created := testutil.MakeJSONRequest(newJobBody(), token, r, "/api/v1/jobs", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	endpoint := fmt.Sprintf("/api/v1/jobs/%v", created["id"])

	rec, resp := testutil.MakeJSONRequest(gin.H{"title": "Day Shift Picker"}, token, r, endpoint, http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Day Shift Picker", resp["title"])
	// Untouched fields survive the patch
	assert.Equal(t, created["company"], resp["company"])
	assert.Equal(t, created["pay"], resp["pay"])
}

func TestEditJob_forbiddenAndNotFound(t *testing.T) {
	r := setupRouter(testDB)
	otherToken := accessToken(t, database.TestEmployer2)

	rec, _ := testutil.MakeJSONRequest(gin.H{"title": "Hijacked"}, otherToken, r,
		fmt.Sprintf("/api/v1/jobs/%d", database.TestJob1.ID), http.MethodPut)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = testutil.MakeJSONRequest(gin.H{"title": "Ghost"}, otherToken, r,
		"/api/v1/jobs/999999", http.MethodPut)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteJob_endpoint(t *testing.T) {
	r := setupRouter(testDB)
	token := accessToken(t, database.TestEmployer1)
	otherToken := accessToken(t, database.TestEmployer2)

	rec, created := testutil.MakeJSONRequest(newJobBody(), token, r, "/api/v1/jobs", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	endpoint := fmt.Sprintf("/api/v1/jobs/%v", created["id"])

	rec, _ = testutil.MakeJSONRequest(nil, otherToken, r, endpoint, http.MethodDelete)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, token, r, endpoint, http.MethodDelete)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, "", r, endpoint, http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMyJobs_includesDrafts(t *testing.T) {
	r := setupRouter(testDB)
	token := accessToken(t, database.TestEmployer1)

	rec, resp := testutil.MakeJSONListRequest(nil, token, r, "/api/v1/employer/jobs", http.MethodGet)

	require.Equal(t, http.StatusOK, rec.Code)
	draftSeen := false
	for _, j := range resp {
		assert.Equal(t, database.TestEmployer1.ID.String(), j["owner_id"])
		if j["id"].(float64) == float64(database.TestJob2.ID) {
			draftSeen = true
		}
	}
	assert.True(t, draftSeen)
}

func TestGetMyJobs_workerForbidden(t *testing.T) {
	r := setupRouter(testDB)
	token := accessToken(t, database.TestWorker1)

	rec, _ := testutil.MakeJSONRequest(nil, token, r, "/api/v1/employer/jobs", http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetJobApplications_endpoint(t *testing.T) {
	r := setupRouter(testDB)
	ownerToken := accessToken(t, database.TestEmployer1)
	otherToken := accessToken(t, database.TestEmployer2)
	endpoint := fmt.Sprintf("/api/v1/jobs/%d/applications", database.TestJob1.ID)

	rec, resp := testutil.MakeJSONListRequest(nil, ownerToken, r, endpoint, http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, resp)
	assert.Equal(t, database.TestApplication1.Name, resp[0]["name"])

	// Other employers cannot see applications against this post
	rec, _ = testutil.MakeJSONRequest(nil, otherToken, r, endpoint, http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, ownerToken, r, "/api/v1/jobs/999999/applications", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
