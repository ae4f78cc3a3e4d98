package repository

import (
	"errors"

	"gorm.io/gorm"

	"society-billing-svc/internal/models"
	"society-billing-svc/pkg/apperrors"
)

// ResidentRepository defines the interface for resident data operations
type ResidentRepository interface {
	Create(resident *models.Resident) error
	GetByID(id string) (*models.Resident, error)
	GetByFlatNumber(flatNumber, excludeID string) (*models.Resident, error)
	List() ([]*models.Resident, error)
	Update(resident *models.Resident) error
	Delete(id string) error
	DeleteWithBills(id string) (int64, error)
}

// residentRepository implements ResidentRepository
type residentRepository struct {
	db *gorm.DB
}

// NewResidentRepository creates a new instance of ResidentRepository
func NewResidentRepository(db *gorm.DB) ResidentRepository {
	return &residentRepository{
		db: db,
	}
}

// Create inserts a new resident. A duplicate flat number surfaces as
// gorm.ErrDuplicatedKey via the store's unique index, so two concurrent
// creates for the same flat cannot both win.
func (r *residentRepository) Create(resident *models.Resident) error {
	return r.db.Create(resident).Error
}

// GetByID retrieves a resident by its generated identifier
func (r *residentRepository) GetByID(id string) (*models.Resident, error) {
	var resident models.Resident

	err := r.db.Where("id = ?", id).First(&resident).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &resident, nil
}

// GetByFlatNumber retrieves the resident holding a flat number, excluding
// the given resident ID when non-empty. Returns apperrors.ErrNotFound when
// the flat number is free.
func (r *residentRepository) GetByFlatNumber(flatNumber, excludeID string) (*models.Resident, error) {
	var resident models.Resident

	query := r.db.Where("flat_number = ?", flatNumber)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	err := query.First(&resident).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &resident, nil
}

// List retrieves all residents ordered by flat number ascending
func (r *residentRepository) List() ([]*models.Resident, error) {
	var residents []*models.Resident

	err := r.db.Order("flat_number ASC").Find(&residents).Error
	if err != nil {
		return nil, err
	}

	return residents, nil
}

// Update saves all mutable fields of a resident
func (r *residentRepository) Update(resident *models.Resident) error {
	result := r.db.Model(&models.Resident{}).
		Where("id = ?", resident.ID).
		Updates(map[string]interface{}{
			"name":        resident.Name,
			"flat_number": resident.FlatNumber,
			"email":       resident.Email,
			"phone":       resident.Phone,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes a resident by identifier
func (r *residentRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Resident{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteWithBills deletes the resident's bills and then the resident, in a
// single transaction. Returns the number of cascade-deleted bills.
func (r *residentRepository) DeleteWithBills(id string) (int64, error) {
	var billsDeleted int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("resident_id = ?", id).Delete(&models.Bill{})
		if result.Error != nil {
			return result.Error
		}
		billsDeleted = result.RowsAffected

		result = tx.Where("id = ?", id).Delete(&models.Resident{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return billsDeleted, nil
}
