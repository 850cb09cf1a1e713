package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// JobTypeGeneralLabour tags general labour postings
	JobTypeGeneralLabour = "general_labour"
	// JobTypeConstruction tags construction postings
	JobTypeConstruction = "construction"
	// JobTypeWarehouse tags warehouse postings
	JobTypeWarehouse = "warehouse"
	// JobTypeLogistics tags logistics postings
	JobTypeLogistics = "logistics"
	// JobTypeOther tags postings outside the named categories
	JobTypeOther = "other"
)

// JobTypes lists every accepted job_type value.
var JobTypes = []string{
	JobTypeGeneralLabour,
	JobTypeConstruction,
	JobTypeWarehouse,
	JobTypeLogistics,
	JobTypeOther,
}

// ValidJobType reports whether t is one of the enumerated job types.
func ValidJobType(t string) bool {
	for _, v := range JobTypes {
		if v == t {
			return true
		}
	}
	return false
}

// EditableJobInfo is part of job post that the owner can set or edit.
// Pay is an hourly CAD magnitude.
type EditableJobInfo struct {
	Title        string  `gorm:"type:text" json:"title"`
	Company      string  `gorm:"type:text" json:"company"`
	Location     string  `gorm:"type:text" json:"location"`
	Pay          float64 `gorm:"type:numeric(10,2)" json:"pay"`
	JobType      string  `gorm:"type:text" json:"job_type"`
	Description  string  `gorm:"type:text" json:"description"`
	ContactEmail string  `gorm:"type:text" json:"contact_email"`
	IsPublished  bool    `gorm:"type:boolean;default:false" json:"is_published"`
}

// Job is gorm model for store job post data in DB
type Job struct {
	ID      uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"owner_id"`
	Owner   User      `gorm:"foreignKey:OwnerID;references:ID" json:"-"`
	EditableJobInfo
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}

// JobPatch carries a partial update for a job. Nil fields keep their
// prior values, so toggling is_published off stays expressible.
type JobPatch struct {
	Title        *string  `json:"title"`
	Company      *string  `json:"company"`
	Location     *string  `json:"location"`
	Pay          *float64 `json:"pay"`
	JobType      *string  `json:"job_type"`
	Description  *string  `json:"description"`
	ContactEmail *string  `json:"contact_email"`
	IsPublished  *bool    `json:"is_published"`
}

// Changes returns the set columns of the patch keyed by column name,
// ready for a gorm Updates call. Nil fields are left out.
func (p JobPatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Company != nil {
		changes["company"] = *p.Company
	}
	if p.Location != nil {
		changes["location"] = *p.Location
	}
	if p.Pay != nil {
		changes["pay"] = *p.Pay
	}
	if p.JobType != nil {
		changes["job_type"] = *p.JobType
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.ContactEmail != nil {
		changes["contact_email"] = *p.ContactEmail
	}
	if p.IsPublished != nil {
		changes["is_published"] = *p.IsPublished
	}
	return changes
}

// JobFilter holds the recognized discovery query options. All options
// are optional and combine as a logical AND.
type JobFilter struct {
	Location string
	JobType  string
	MinPay   *float64
	MaxPay   *float64
	// Limit caps the result set when positive. Zero means no cap.
	Limit int
}
