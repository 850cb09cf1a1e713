package application

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
	"QuickShift-backend/internal/controller/job"
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

// setupRouter wires the apply endpoint together with the job routes so
// the full posting-to-hiring flow can run against one engine.
func setupRouter(db *database.DBinstanceStruct) *gin.Engine {
	r := gin.New()
	ac := NewApplicationController(db)
	jc := job.NewJobController(db)

	api := r.Group("/api/v1")
	api.GET("/jobs", jc.GetJobs)
	api.GET("/jobs/:id", jc.GetJobByID)
	api.POST("/jobs/:id/apply", ac.ApplyHandler)

	needEmployer := api.Group("", middleware.RequireAuth(db), middleware.CheckRole(model.RoleEmployer))
	needEmployer.POST("/jobs", jc.CreateJobHandler)
	needEmployer.PUT("/jobs/:id", jc.EditJobHandler)
	needEmployer.GET("/jobs/:id/applications", jc.GetJobApplications)

	return r
}

func applicantBody() gin.H {
	return gin.H{
		"name":  "Mia Novak",
		"email": "mia@example.com",
		"phone": "416-555-0500",
	}
}

func TestApply_endpoint(t *testing.T) {
	r := setupRouter(testDB)
	endpoint := fmt.Sprintf("/api/v1/jobs/%d/apply", database.TestJob1.ID)

	rec, resp := testutil.MakeJSONRequest(applicantBody(), "", r, endpoint, http.MethodPost)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Mia Novak", resp["name"])
	assert.Equal(t, float64(database.TestJob1.ID), resp["job_id"])
	assert.NotEmpty(t, resp["created_at"])
}

func TestApply_duplicateAccepted(t *testing.T) {
	r := setupRouter(testDB)
	endpoint := fmt.Sprintf("/api/v1/jobs/%d/apply", database.TestJob1.ID)

	rec, first := testutil.MakeJSONRequest(applicantBody(), "", r, endpoint, http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, second := testutil.MakeJSONRequest(applicantBody(), "", r, endpoint, http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.NotEqual(t, first["id"], second["id"])
}

func TestApply_draftAndMissingLookIdentical(t *testing.T) {
	r := setupRouter(testDB)

	rec, _ := testutil.MakeJSONRequest(applicantBody(), "", r,
		fmt.Sprintf("/api/v1/jobs/%d/apply", database.TestJob2.ID), http.MethodPost)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = testutil.MakeJSONRequest(applicantBody(), "", r, "/api/v1/jobs/999999/apply", http.MethodPost)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = testutil.MakeJSONRequest(applicantBody(), "", r, "/api/v1/jobs/banana/apply", http.MethodPost)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApply_missingFields(t *testing.T) {
	r := setupRouter(testDB)
	endpoint := fmt.Sprintf("/api/v1/jobs/%d/apply", database.TestJob1.ID)

	for _, body := range []gin.H{
		{"email": "mia@example.com", "phone": "416-555-0500"},
		{"name": "Mia Novak", "phone": "416-555-0500"},
		{"name": "Mia Novak", "email": "mia@example.com"},
	} {
		rec, _ := testutil.MakeJSONRequest(body, "", r, endpoint, http.MethodPost)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

// TestPostingToHiringFlow walks the full employer/worker journey: draft
// a post, confirm it is invisible, publish it, collect an application,
// and check only the owner can read the inbox.
func TestPostingToHiringFlow(t *testing.T) {
	r := setupRouter(testDB)
	ownerToken, err := auth.GetAccessToken(t, testDB, database.TestEmployer1.Email, database.TestSeedPassword)
	require.NoError(t, err)
	otherToken, err := auth.GetAccessToken(t, testDB, database.TestEmployer2.Email, database.TestSeedPassword)
	require.NoError(t, err)

	// Draft a new post
	rec, created := testutil.MakeJSONRequest(gin.H{
		"title":         "Loader",
		"company":       "Maple Logistics Inc.",
		"location":      "Scarborough, ON",
		"pay":           22.50,
		"job_type":      model.JobTypeWarehouse,
		"description":   "Loading dock work, weekends.",
		"contact_email": "jobs@maplelogistics.example.com",
	}, ownerToken, r, "/api/v1/jobs", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	jobEndpoint := fmt.Sprintf("/api/v1/jobs/%v", created["id"])

	// Invisible to the public while unpublished
	rec, _ = testutil.MakeJSONRequest(nil, "", r, jobEndpoint, http.MethodGet)
	require.Equal(t, http.StatusNotFound, rec.Code)
	rec, _ = testutil.MakeJSONRequest(applicantBody(), "", r, jobEndpoint+"/apply", http.MethodPost)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// Publish
	rec, _ = testutil.MakeJSONRequest(gin.H{"is_published": true}, ownerToken, r, jobEndpoint, http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, fetched := testutil.MakeJSONRequest(nil, "", r, jobEndpoint, http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Loader", fetched["title"])

	// A worker applies
	rec, _ = testutil.MakeJSONRequest(applicantBody(), "", r, jobEndpoint+"/apply", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	// The owner reads the inbox; another employer cannot
	rec, inbox := testutil.MakeJSONListRequest(nil, ownerToken, r, jobEndpoint+"/applications", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, inbox, 1)
	assert.Equal(t, "Mia Novak", inbox[0]["name"])

	rec, _ = testutil.MakeJSONRequest(nil, otherToken, r, jobEndpoint+"/applications", http.MethodGet)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
