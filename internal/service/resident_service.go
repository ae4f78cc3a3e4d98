package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"society-billing-svc/internal/models"
	"society-billing-svc/internal/repository"
	"society-billing-svc/pkg/apperrors"
	"society-billing-svc/pkg/logger"
)

// ResidentDeleteResult reports the outcome of a resident deletion.
type ResidentDeleteResult struct {
	ID           string `json:"id"`
	BillsDeleted int64  `json:"billsDeleted"`
}

// ResidentService defines the interface for resident business operations
type ResidentService interface {
	CreateResident(input *models.ResidentInput) (*models.Resident, error)
	GetResident(id string) (*models.Resident, error)
	ListResidents() ([]*models.Resident, error)
	UpdateResident(id string, input *models.ResidentInput) (*models.Resident, error)
	DeleteResident(id string, force bool) (*ResidentDeleteResult, error)
}

// residentService implements ResidentService
type residentService struct {
	residentRepo repository.ResidentRepository
	billRepo     repository.BillRepository
	logger       *logger.Logger
}

// NewResidentService creates a new instance of ResidentService
func NewResidentService(residentRepo repository.ResidentRepository, billRepo repository.BillRepository, logger *logger.Logger) ResidentService {
	return &residentService{
		residentRepo: residentRepo,
		billRepo:     billRepo,
		logger:       logger,
	}
}

// CreateResident validates the input and inserts a new resident. The flat
// number pre-check gives a friendly conflict message; the store's unique
// index is what actually guarantees uniqueness under concurrency.
func (s *residentService) CreateResident(input *models.ResidentInput) (*models.Resident, error) {
	if fields := input.Validate(); fields != nil {
		return nil, apperrors.NewFieldValidationError("Missing required fields", fields)
	}

	if err := s.checkFlatNumber(input.FlatNumber, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	resident := &models.Resident{
		ID:         uuid.New().String(),
		Name:       input.Name,
		FlatNumber: input.FlatNumber,
		Email:      input.Email,
		Phone:      input.Phone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.residentRepo.Create(resident); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflictError("Flat number already exists")
		}
		return nil, fmt.Errorf("failed to create resident: %w", err)
	}

	return resident, nil
}

// GetResident retrieves a resident by identifier
func (s *residentService) GetResident(id string) (*models.Resident, error) {
	return s.residentRepo.GetByID(id)
}

// ListResidents retrieves all residents ordered by flat number
func (s *residentService) ListResidents() ([]*models.Resident, error) {
	return s.residentRepo.List()
}

// UpdateResident validates the input and updates a resident in place,
// re-checking flat number uniqueness excluding the resident itself.
func (s *residentService) UpdateResident(id string, input *models.ResidentInput) (*models.Resident, error) {
	if fields := input.Validate(); fields != nil {
		return nil, apperrors.NewFieldValidationError("Missing required fields", fields)
	}

	resident, err := s.residentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.checkFlatNumber(input.FlatNumber, id); err != nil {
		return nil, err
	}

	resident.Name = input.Name
	resident.FlatNumber = input.FlatNumber
	resident.Email = input.Email
	resident.Phone = input.Phone

	if err := s.residentRepo.Update(resident); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflictError("Flat number already exists")
		}
		return nil, err
	}

	return s.residentRepo.GetByID(id)
}

// DeleteResident deletes a resident. When referencing bills exist the call
// fails with a conflict carrying the bill count, unless force is set, in
// which case the bills are cascade-deleted first.
func (s *residentService) DeleteResident(id string, force bool) (*ResidentDeleteResult, error) {
	billCount, err := s.billRepo.CountByResidentID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count resident bills: %w", err)
	}

	if billCount > 0 && !force {
		return nil, &apperrors.ConflictError{
			Message:   "Cannot delete resident with associated bills. This resident has bills in the system.",
			BillCount: billCount,
		}
	}

	if force && billCount > 0 {
		billsDeleted, err := s.residentRepo.DeleteWithBills(id)
		if err != nil {
			return nil, err
		}
		s.logger.WithFields(map[string]interface{}{
			"resident_id":   id,
			"bills_deleted": billsDeleted,
		}).Info("Resident force-deleted with bills")
		return &ResidentDeleteResult{ID: id, BillsDeleted: billsDeleted}, nil
	}

	if err := s.residentRepo.Delete(id); err != nil {
		return nil, err
	}

	return &ResidentDeleteResult{ID: id, BillsDeleted: 0}, nil
}

func (s *residentService) checkFlatNumber(flatNumber, excludeID string) error {
	_, err := s.residentRepo.GetByFlatNumber(flatNumber, excludeID)
	if err == nil {
		return apperrors.NewConflictError("Flat number already exists")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check flat number: %w", err)
	}
	return nil
}
