// Package job provides HTTP handlers for job post related operations.
package job

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"QuickShift-backend/internal/database"
	"QuickShift-backend/internal/model"
	"QuickShift-backend/internal/policy"
	"QuickShift-backend/internal/store"
	"QuickShift-backend/internal/utilities"
)

// JobController handles job post related endpoints
type JobController struct {
	Jobs         *store.JobStore
	Applications *store.ApplicationStore
}

// NewJobController creates a new instance of JobController
func NewJobController(db *database.DBinstanceStruct) *JobController {
	return &JobController{
		Jobs:         store.NewJobStore(db),
		Applications: store.NewApplicationStore(db),
	}
}

// CreateJobHandler handles the creation of a new job post by an employer.
// The owner is always the authenticated caller, never a body field.
// @Summary Create job post based on given json structure
// @Description Only employers have access to this endpoint
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Job body model.EditableJobInfo true "Input job information"
// @Success 201 {object} model.Job "Successfully create job post"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job post struct"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [post]
func (jc *JobController) CreateJobHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	if !policy.CanPostJob(policy.FromUser(user)) {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Only employers can create job posts",
		})
		return
	}

	// construct job post from request
	info := model.EditableJobInfo{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	created, err := jc.Jobs.Create(user.ID, info)
	if err != nil {
		respondStoreError(c, err, "create job post")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetJobs fetches published job posts matching the query filters.
// This endpoint is public; drafts are never part of the result.
// @Summary Get published job posts based on query
// @Description Every query is optional; options combine as a logical AND
// @Tags Job
// @Produce json
// @Param location query string false "Substring match on location, case insensitive"
// @Param job_type query string false "Exact match against the job type enumeration"
// @Param min_pay query number false "Inclusive lower bound on hourly pay"
// @Param max_pay query number false "Inclusive upper bound on hourly pay"
// @Param limit query integer false "Cap on the number of results; absent means no cap"
// @Success 200 {array} model.Job "Return published job post(s), newest first"
// @Failure 400 {object} utilities.ErrorResponse "Malformed numeric query param"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [get]
func (jc *JobController) GetJobs(c *gin.Context) {
	filter := model.JobFilter{
		Location: c.Query("location"),
		JobType:  c.Query("job_type"),
	}

	if raw := c.Query("min_pay"); raw != "" {
		minPay, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "min_pay must be a number"})
			return
		}
		filter.MinPay = &minPay
	}

	if raw := c.Query("max_pay"); raw != "" {
		maxPay, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "max_pay must be a number"})
			return
		}
		filter.MaxPay = &maxPay
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "limit must be a non-negative integer"})
			return
		}
		filter.Limit = limit
	}

	jobs, err := jc.Jobs.ListPublished(filter)
	if err != nil {
		respondStoreError(c, err, "fetch job posts")
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJobByID fetches a published job post by its ID. Absent and
// unpublished jobs are both a 404 so drafts stay invisible.
// @Summary Get published job post by ID
// @Tags Job
// @Produce json
// @Param id path integer true "ID of desired job post"
// @Success 200 {object} model.Job "Return the job post with the specified ID"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [get]
func (jc *JobController) GetJobByID(c *gin.Context) {
	id, err := parseJobID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job post not found"})
		return
	}

	job, err := jc.Jobs.GetPublishedByID(id)
	if err != nil {
		respondStoreError(c, err, "retrieve job post")
		return
	}

	c.JSON(http.StatusOK, job)
}

// EditJobHandler allows an employer to update a job post they own.
// Unspecified fields keep their prior values; is_published may be
// toggled both ways.
// @Summary Edit job post based on given json structure
// @Description Only the employer that owns the post has access to this endpoint
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired job post"
// @Param Job body model.JobPatch true "Fields to update"
// @Success 200 {object} model.Job "Successfully update job post"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job patch struct"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not have permission to edit"
// @Failure 404 {object} utilities.ErrorResponse "Post not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [put]
func (jc *JobController) EditJobHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := parseJobID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job post not found"})
		return
	}

	patch := model.JobPatch{}
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&patch); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse request body: %s", err.Error()),
		})
		return
	}

	updated, err := jc.Jobs.Update(id, user.ID, patch)
	if err != nil {
		respondStoreError(c, err, "update job post")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteJobHandler allows an employer to delete a job post they own.
// Applications against the post are retained as historical records.
// @Summary Delete given job post ID
// @Description Only the employer that owns the post has access to this endpoint
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired job post"
// @Success 204 "Successfully delete job post"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not have permission to delete this post"
// @Failure 404 {object} utilities.ErrorResponse "Post not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [delete]
func (jc *JobController) DeleteJobHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := parseJobID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job post not found"})
		return
	}

	if err := jc.Jobs.Delete(id, user.ID); err != nil {
		respondStoreError(c, err, "delete job post")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMyJobs fetches every job post owned by the calling employer
// regardless of publication state.
// @Summary Get the caller's own job posts
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Job "All job posts owned by the caller"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /employer/jobs [get]
func (jc *JobController) GetMyJobs(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	jobs, err := jc.Jobs.ListByOwner(user.ID)
	if err != nil {
		respondStoreError(c, err, "fetch job posts")
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJobApplications lists the applications against a job post,
// newest first. Visibility is strictly owner-scoped.
// @Summary Get applications for an owned job post
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired job post"
// @Success 200 {array} model.Application "Applications for the post, newest first"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not the owner of this post"
// @Failure 404 {object} utilities.ErrorResponse "Post not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/applications [get]
func (jc *JobController) GetJobApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := parseJobID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "Invalid job ID"})
		return
	}

	job, err := jc.Jobs.GetByID(id)
	if err != nil {
		respondStoreError(c, err, "retrieve job post")
		return
	}

	if !policy.CanViewApplications(policy.FromUser(user), job) {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to view applications for this job post",
		})
		return
	}

	applications, err := jc.Applications.ListByJob(id)
	if err != nil {
		respondStoreError(c, err, "fetch applications")
		return
	}

	c.JSON(http.StatusOK, applications)
}

func parseJobID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// respondStoreError maps the store error taxonomy 1:1 to status codes.
func respondStoreError(c *gin.Context, err error, action string) {
	var vErr *store.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: vErr.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job post not found"})
	case errors.Is(err, store.ErrForbidden):
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "You are not allowed to manage this job post"})
	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to %s: %s", action, err.Error()),
		})
	}
}
