// Package application provides HTTP handlers for job application operations.
package application

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"QuickShift-backend/internal/database"
	"QuickShift-backend/internal/policy"
	"QuickShift-backend/internal/store"
	"QuickShift-backend/internal/utilities"
)

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	Jobs         *store.JobStore
	Applications *store.ApplicationStore
}

// NewApplicationController creates a new instance of ApplicationController with the provided database connection.
func NewApplicationController(db *database.DBinstanceStruct) *ApplicationController {
	return &ApplicationController{
		Jobs:         store.NewJobStore(db),
		Applications: store.NewApplicationStore(db),
	}
}

// ApplyHandler handles the creation of a new application against a
// published job. No authentication is required. Whether the job id is
// unknown or the job is an unpublished draft, the answer is the same
// 404. Applying twice with the same details is accepted.
// @Summary Apply to a published job post
// @Tags Application
// @Accept json
// @Produce json
// @Param id path integer true "ID of the job post to apply to"
// @Param application body object true "Applicant name, email and phone"
// @Success 201 {object} model.Application "Successfully applied to job post"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found or not published"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/apply [post]
func (ac *ApplicationController) ApplyHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job post not found"})
		return
	}
	jobID := uint(id)

	var form struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	job, err := ac.Jobs.GetPublishedByID(jobID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Anonymous callers may apply as long as the job is published
	if !policy.CanApply(nil, job) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job post not found"})
		return
	}

	// The store re-checks publication inside its transaction, so a
	// concurrent unpublish between the read above and the insert still
	// resolves to a clean 404.
	application, err := ac.Applications.Create(jobID, form.Name, form.Email, form.Phone)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func respondError(c *gin.Context, err error) {
	var vErr *store.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: vErr.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job post not found"})
	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create application: %s", err.Error()),
		})
	}
}
