package model

import "time"

// Application represents a job application record. Applications are
// immutable once created and are retained even if the job is
// unpublished or deleted later, so JobID carries no foreign key
// constraint and no association is declared.
type Application struct {
	ID    uint `gorm:"primaryKey;autoIncrement;->" json:"id"`
	JobID uint `gorm:"not null;index" json:"job_id"`

	Name      string    `gorm:"type:text" json:"name"`
	Email     string    `gorm:"type:text" json:"email"`
	Phone     string    `gorm:"type:text" json:"phone"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}
