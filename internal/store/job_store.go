package store

import (
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"QuickShift-backend/internal/database"
	"QuickShift-backend/internal/model"
)

// JobStore owns persisted job records.
type JobStore struct {
	DB *database.DBinstanceStruct
}

// NewJobStore creates a new instance of JobStore
func NewJobStore(db *database.DBinstanceStruct) *JobStore {
	return &JobStore{DB: db}
}

// Create validates info and inserts a new job owned by ownerID.
// created_at is assigned by the database, never by the caller.
func (s *JobStore) Create(ownerID uuid.UUID, info model.EditableJobInfo) (model.Job, error) {
	if err := validateJobInfo(info); err != nil {
		return model.Job{}, err
	}

	job := model.Job{OwnerID: ownerID, EditableJobInfo: info}
	if err := s.DB.Create(&job).Error; err != nil {
		return model.Job{}, storageErr(err)
	}

	// Reload so DB-assigned columns come back populated
	if err := s.DB.First(&job, "id = ?", job.ID).Error; err != nil {
		return model.Job{}, storageErr(err)
	}
	return job, nil
}

// GetByID fetches a job regardless of publication state.
func (s *JobStore) GetByID(id uint) (model.Job, error) {
	var job model.Job
	if err := s.DB.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Job{}, ErrNotFound
		}
		return model.Job{}, storageErr(err)
	}
	return job, nil
}

// GetPublishedByID fetches a job only if it is published. Public read
// paths must use this accessor so drafts never leave the store, and
// "absent" and "unpublished" are indistinguishable to the caller.
func (s *JobStore) GetPublishedByID(id uint) (model.Job, error) {
	var job model.Job
	if err := s.DB.First(&job, "id = ? AND is_published = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Job{}, ErrNotFound
		}
		return model.Job{}, storageErr(err)
	}
	return job, nil
}

// ListPublished fetches published jobs matching filter, newest first.
// The ordering is a fixed contract, not a caller option.
func (s *JobStore) ListPublished(filter model.JobFilter) ([]model.Job, error) {
	result := s.DB.Where("is_published = ?", true)

	if filter.Location != "" {
		result = result.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.JobType != "" {
		result = result.Where("job_type = ?", filter.JobType)
	}
	if filter.MinPay != nil {
		result = result.Where("pay >= ?", *filter.MinPay)
	}
	if filter.MaxPay != nil {
		result = result.Where("pay <= ?", *filter.MaxPay)
	}
	if filter.Limit > 0 {
		result = result.Limit(filter.Limit)
	}

	jobs := []model.Job{}
	err := result.Order(clause.OrderByColumn{
		Column: clause.Column{Name: "created_at"},
		Desc:   true,
	}).Find(&jobs).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return jobs, nil
}

// ListByOwner fetches every job owned by ownerID regardless of
// publication state. Route wiring keeps this self-scoped.
func (s *JobStore) ListByOwner(ownerID uuid.UUID) ([]model.Job, error) {
	jobs := []model.Job{}
	err := s.DB.Where("owner_id = ?", ownerID).
		Order(clause.OrderByColumn{
			Column: clause.Column{Name: "created_at"},
			Desc:   true,
		}).Find(&jobs).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return jobs, nil
}

// Update merges patch into the job with the given id after checking
// that requesterID owns it. The lookup, ownership check and write run
// in one transaction under a row lock so concurrent publish toggles
// never interleave.
func (s *JobStore) Update(id uint, requesterID uuid.UUID, patch model.JobPatch) (model.Job, error) {
	if err := validateJobPatch(patch); err != nil {
		return model.Job{}, err
	}

	var job model.Job
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&job, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return storageErr(err)
		}

		if job.OwnerID != requesterID {
			return ErrForbidden
		}

		changes := patch.Changes()
		if len(changes) == 0 {
			return nil
		}
		if err := tx.Model(&job).Updates(changes).Error; err != nil {
			return storageErr(err)
		}

		// Reload to return the merged record
		return tx.First(&job, "id = ?", id).Error
	})
	if err != nil {
		return model.Job{}, err
	}
	return job, nil
}

// Delete removes the job with the given id after checking ownership.
// Applications against the job are kept on purpose: they stay
// queryable by the former owner as historical records.
func (s *JobStore) Delete(id uint, requesterID uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var job model.Job
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&job, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return storageErr(err)
		}

		if job.OwnerID != requesterID {
			return ErrForbidden
		}

		if err := tx.Delete(&job).Error; err != nil {
			return storageErr(err)
		}
		return nil
	})
}

func validateJobInfo(info model.EditableJobInfo) error {
	if strings.TrimSpace(info.Title) == "" {
		return invalid("title", "must not be empty")
	}
	if strings.TrimSpace(info.Company) == "" {
		return invalid("company", "must not be empty")
	}
	if strings.TrimSpace(info.Location) == "" {
		return invalid("location", "must not be empty")
	}
	if strings.TrimSpace(info.Description) == "" {
		return invalid("description", "must not be empty")
	}
	if strings.TrimSpace(info.ContactEmail) == "" {
		return invalid("contact_email", "must not be empty")
	}
	if err := validatePay(info.Pay); err != nil {
		return err
	}
	if !model.ValidJobType(info.JobType) {
		return invalid("job_type", "must be one of: "+strings.Join(model.JobTypes, ", "))
	}
	return nil
}

func validateJobPatch(patch model.JobPatch) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return invalid("title", "must not be empty")
	}
	if patch.Company != nil && strings.TrimSpace(*patch.Company) == "" {
		return invalid("company", "must not be empty")
	}
	if patch.Location != nil && strings.TrimSpace(*patch.Location) == "" {
		return invalid("location", "must not be empty")
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		return invalid("description", "must not be empty")
	}
	if patch.ContactEmail != nil && strings.TrimSpace(*patch.ContactEmail) == "" {
		return invalid("contact_email", "must not be empty")
	}
	if patch.Pay != nil {
		if err := validatePay(*patch.Pay); err != nil {
			return err
		}
	}
	if patch.JobType != nil && !model.ValidJobType(*patch.JobType) {
		return invalid("job_type", "must be one of: "+strings.Join(model.JobTypes, ", "))
	}
	return nil
}

func validatePay(pay float64) error {
	if math.IsNaN(pay) || math.IsInf(pay, 0) || pay <= 0 {
		return invalid("pay", "must be a finite number greater than zero")
	}
	return nil
}
