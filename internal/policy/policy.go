// Package policy holds the pure authorization decisions of the job
// board. Every function takes an explicit principal instead of reading
// ambient request state, so callers compose policy + store and each
// side stays independently testable. No I/O happens here.
package policy

import (
	"github.com/google/uuid"

	"QuickShift-backend/internal/model"
)

// Principal is the authenticated identity attempting an operation.
// Anonymous callers are represented by a nil *Principal.
type Principal struct {
	UserID uuid.UUID
	Role   string
}

// FromUser builds the principal for an authenticated user.
func FromUser(u model.User) Principal {
	return Principal{UserID: u.ID, Role: u.Role}
}

// CanPostJob reports whether p may create job posts. Any authenticated
// employer may post; there is no approval workflow.
func CanPostJob(p Principal) bool {
	return p.Role == model.RoleEmployer
}

// CanManageJob reports whether p may edit or delete job. Only the
// owning employer may, never other employers.
func CanManageJob(p Principal, job model.Job) bool {
	return p.Role == model.RoleEmployer && p.UserID == job.OwnerID
}

// CanViewApplications reports whether p may list the applications of
// job. Visibility is strictly owner-scoped: not other employers, not
// the applicants themselves.
func CanViewApplications(p Principal, job model.Job) bool {
	return CanManageJob(p, job)
}

// CanApply reports whether p (possibly anonymous) may apply to job.
// Applying needs no authentication, only a published job.
func CanApply(_ *Principal, job model.Job) bool {
	return job.IsPublished
}
