package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"QuickShift-backend/internal/model"
)

func employerPrincipal(id uuid.UUID) Principal {
	return Principal{UserID: id, Role: model.RoleEmployer}
}

func TestCanPostJob(t *testing.T) {
	assert.True(t, CanPostJob(employerPrincipal(uuid.New())))
	assert.False(t, CanPostJob(Principal{UserID: uuid.New(), Role: model.RoleWorker}))
}

func TestCanManageJob_ownerOnly(t *testing.T) {
	owner := uuid.New()
	job := model.Job{OwnerID: owner}

	assert.True(t, CanManageJob(employerPrincipal(owner), job))
	assert.False(t, CanManageJob(employerPrincipal(uuid.New()), job))
}

func TestCanManageJob_requiresEmployerRole(t *testing.T) {
	owner := uuid.New()
	job := model.Job{OwnerID: owner}

	// Matching id but wrong role must not grant management rights
	assert.False(t, CanManageJob(Principal{UserID: owner, Role: model.RoleWorker}, job))
}

func TestCanViewApplications_matchesManageJob(t *testing.T) {
	owner := uuid.New()
	job := model.Job{OwnerID: owner}

	assert.True(t, CanViewApplications(employerPrincipal(owner), job))
	assert.False(t, CanViewApplications(employerPrincipal(uuid.New()), job))
	assert.False(t, CanViewApplications(Principal{UserID: owner, Role: model.RoleWorker}, job))
}

func TestCanApply(t *testing.T) {
	published := model.Job{OwnerID: uuid.New()}
	published.IsPublished = true
	draft := model.Job{OwnerID: published.OwnerID}

	// Anonymous callers may apply to published jobs
	assert.True(t, CanApply(nil, published))
	assert.False(t, CanApply(nil, draft))

	// Even the owner cannot apply to an unpublished draft
	owner := employerPrincipal(draft.OwnerID)
	assert.False(t, CanApply(&owner, draft))
}
