package repository

import (
	"errors"

	"gorm.io/gorm"

	"society-billing-svc/internal/models"
	"society-billing-svc/pkg/apperrors"
)

// BillRepository defines the interface for bill data operations
type BillRepository interface {
	Create(bill *models.Bill) error
	CreateBulk(bills []*models.Bill) error
	GetByID(id string) (*models.Bill, error)
	List(filter models.BillFilter) ([]*models.Bill, error)
	UpdateStatus(id, status string) (*models.Bill, error)
	Delete(id string) error
	CountByResidentID(residentID string) (int64, error)
}

// billRepository implements BillRepository
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new instance of BillRepository
func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{
		db: db,
	}
}

// Create inserts a single bill
func (r *billRepository) Create(bill *models.Bill) error {
	return r.db.Create(bill).Error
}

// CreateBulk inserts all bills in one batch; from the caller's view the
// whole batch either lands or fails.
func (r *billRepository) CreateBulk(bills []*models.Bill) error {
	return r.db.CreateInBatches(bills, 100).Error
}

// GetByID retrieves a bill by its generated identifier
func (r *billRepository) GetByID(id string) (*models.Bill, error) {
	var bill models.Bill

	err := r.db.Where("id = ?", id).First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &bill, nil
}

// List retrieves bills matching the filter, newest issuance first
func (r *billRepository) List(filter models.BillFilter) ([]*models.Bill, error) {
	var bills []*models.Bill

	query := r.db.Model(&models.Bill{})
	if filter.Month != "" {
		query = query.Where("month = ?", filter.Month)
	}
	if filter.Year != "" {
		query = query.Where("year = ?", filter.Year)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ResidentID != "" {
		query = query.Where("resident_id = ?", filter.ResidentID)
	}

	err := query.Order("created_at DESC").Find(&bills).Error
	if err != nil {
		return nil, err
	}

	return bills, nil
}

// UpdateStatus updates only the status of a bill and returns the updated
// record. Calling it twice with the same status is idempotent.
func (r *billRepository) UpdateStatus(id, status string) (*models.Bill, error) {
	result := r.db.Model(&models.Bill{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}

	return r.GetByID(id)
}

// Delete removes a bill by identifier
func (r *billRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Bill{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountByResidentID counts bills referencing a resident
func (r *billRepository) CountByResidentID(residentID string) (int64, error) {
	var count int64

	err := r.db.Model(&models.Bill{}).
		Where("resident_id = ?", residentID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
