// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// RoleWorker is the role tag for users browsing and applying to jobs
	RoleWorker = "worker"
	// RoleEmployer is the role tag for users posting and managing jobs
	RoleEmployer = "employer"
)

// User is gorm model for a registered account. Role is assigned at
// registration and never changes afterwards.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Email       string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:text" json:"-"`
	Role        string    `gorm:"type:text;not null;<-:create" json:"role"`
	Name        *string   `gorm:"type:text" json:"name"`
	Phone       *string   `gorm:"type:text" json:"phone"`
	CompanyName *string   `gorm:"type:text" json:"company_name"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}

// ValidRole reports whether role is one of the registerable roles.
func ValidRole(role string) bool {
	return role == RoleWorker || role == RoleEmployer
}
