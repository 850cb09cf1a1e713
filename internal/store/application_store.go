package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"QuickShift-backend/internal/database"
	"QuickShift-backend/internal/model"
)

// ApplicationStore owns persisted application records.
type ApplicationStore struct {
	DB *database.DBinstanceStruct
}

// NewApplicationStore creates a new instance of ApplicationStore
func NewApplicationStore(db *database.DBinstanceStruct) *ApplicationStore {
	return &ApplicationStore{DB: db}
}

// Create validates and persists an application against a published
// job. The publication check and the insert run in one transaction
// with the job row locked, so a concurrent unpublish or delete either
// happens before (NotFound) or after (application recorded) — never
// halfway. Absent and unpublished jobs produce the same ErrNotFound.
// Email and phone are deliberately only checked for non-emptiness,
// and repeat applications by the same email are accepted.
func (s *ApplicationStore) Create(jobID uint, name, email, phone string) (model.Application, error) {
	if strings.TrimSpace(name) == "" {
		return model.Application{}, invalid("name", "must not be empty")
	}
	if strings.TrimSpace(email) == "" {
		return model.Application{}, invalid("email", "must not be empty")
	}
	if strings.TrimSpace(phone) == "" {
		return model.Application{}, invalid("phone", "must not be empty")
	}

	var application model.Application
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var job model.Job
		if err := tx.Clauses(clause.Locking{Strength: "SHARE"}).
			First(&job, "id = ? AND is_published = ?", jobID, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return storageErr(err)
		}

		application = model.Application{
			JobID: jobID,
			Name:  name,
			Email: email,
			Phone: phone,
		}
		if err := tx.Create(&application).Error; err != nil {
			return storageErr(err)
		}

		// Reload so DB-assigned created_at comes back populated
		return tx.First(&application, "id = ?", application.ID).Error
	})
	if err != nil {
		return model.Application{}, err
	}
	return application, nil
}

// ListByJob fetches every application against jobID, newest first.
// Ownership of the job is the caller's responsibility to check before
// calling; the applications themselves survive later unpublish or
// delete of the job.
func (s *ApplicationStore) ListByJob(jobID uint) ([]model.Application, error) {
	applications := []model.Application{}
	err := s.DB.Where("job_id = ?", jobID).
		Order(clause.OrderByColumn{
			Column: clause.Column{Name: "created_at"},
			Desc:   true,
		}).Find(&applications).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return applications, nil
}
