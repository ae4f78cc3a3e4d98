package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"society-billing-svc/internal/mailer"
	"society-billing-svc/internal/models"
	"society-billing-svc/internal/repository"
	"society-billing-svc/pkg/apperrors"
	"society-billing-svc/pkg/logger"
)

// EmailDetail is the per-recipient outcome of a notification attempt.
type EmailDetail struct {
	ResidentID string `json:"residentId"`
	Email      string `json:"email"`
	Success    bool   `json:"success"`
	Reason     string `json:"reason,omitempty"`
	Error      string `json:"error,omitempty"`
}

// EmailReport aggregates notification outcomes for a bulk issuance.
type EmailReport struct {
	Total      int            `json:"total"`
	Successful int            `json:"successful"`
	Failed     int            `json:"failed"`
	Details    []*EmailDetail `json:"details"`
}

// BulkIssueResult is the response for a bulk bill issuance.
type BulkIssueResult struct {
	Count        int            `json:"count"`
	Bills        []*models.Bill `json:"bills"`
	EmailResults *EmailReport   `json:"emailResults"`
}

// BillingService defines the interface for billing business operations
type BillingService interface {
	CreateBill(input *models.BillInput) (*models.Bill, *mailer.SendResult, error)
	CreateBulkBills(inputs []*models.BillInput) (*BulkIssueResult, error)
	GetBill(id string) (*models.Bill, error)
	ListBills(filter models.BillFilter) ([]*models.Bill, error)
	UpdateBillStatus(id, status string) (*models.Bill, error)
	DeleteBill(id string) error
}

// billingService implements BillingService
type billingService struct {
	billRepo     repository.BillRepository
	residentRepo repository.ResidentRepository
	mailer       mailer.Mailer
	logger       *logger.Logger
}

// NewBillingService creates a new instance of BillingService
func NewBillingService(billRepo repository.BillRepository, residentRepo repository.ResidentRepository, mailer mailer.Mailer, logger *logger.Logger) BillingService {
	return &billingService{
		billRepo:     billRepo,
		residentRepo: residentRepo,
		mailer:       mailer,
		logger:       logger,
	}
}

// CreateBill issues a single bill. The resident must exist; the bill is
// persisted first and the notification attempted afterwards, so a failed
// send never loses the bill.
func (s *billingService) CreateBill(input *models.BillInput) (*models.Bill, *mailer.SendResult, error) {
	if err := validateBillInput(input); err != nil {
		return nil, nil, err
	}

	resident, err := s.residentRepo.GetByID(input.ResidentID)
	if err != nil {
		return nil, nil, err
	}

	bill := buildBill(input, time.Now())
	denormalizeResident(bill, resident)

	if err := s.billRepo.Create(bill); err != nil {
		return nil, nil, fmt.Errorf("failed to create bill: %w", err)
	}

	result := s.mailer.SendBill(resident, bill)

	return bill, result, nil
}

// CreateBulkBills issues a batch of bills in list order. Items missing a
// required field are dropped from the batch without appearing in the
// response; each drop is logged. Bills are accumulated regardless of
// notification outcome and persisted in one batch after the loop, so a
// failed send never loses a bill, and a store failure after sends is a
// hard error (the sent notices cannot be recalled).
func (s *billingService) CreateBulkBills(inputs []*models.BillInput) (*BulkIssueResult, error) {
	if len(inputs) == 0 {
		return nil, apperrors.NewValidationError("No bills provided")
	}

	now := time.Now()
	bills := make([]*models.Bill, 0, len(inputs))
	details := make([]*EmailDetail, 0, len(inputs))

	for _, input := range inputs {
		if !input.HasRequiredFields() {
			s.logger.WithFields(map[string]interface{}{
				"resident_id": input.ResidentID,
				"month":       input.Month,
				"year":        input.Year,
			}).Warn("Skipping bill with missing required fields")
			continue
		}

		bill := buildBill(input, now)

		resident, err := s.residentRepo.GetByID(input.ResidentID)
		switch {
		case err == nil:
			denormalizeResident(bill, resident)
			result := s.mailer.SendBill(resident, bill)
			detail := &EmailDetail{
				ResidentID: resident.ID,
				Email:      resident.Email,
				Success:    result.Success,
			}
			if !result.Success {
				detail.Reason = result.Reason
				detail.Error = result.Message
			}
			details = append(details, detail)
		case errors.Is(err, apperrors.ErrNotFound):
			s.logger.WithField("resident_id", input.ResidentID).
				Error("Resident not found for bill notification")
			details = append(details, &EmailDetail{
				ResidentID: input.ResidentID,
				Email:      "unknown",
				Success:    false,
				Error:      "Resident not found",
			})
		default:
			return nil, fmt.Errorf("failed to look up resident %s: %w", input.ResidentID, err)
		}

		bills = append(bills, bill)
	}

	if len(bills) == 0 {
		return nil, apperrors.NewValidationError("No valid bills to create")
	}

	if err := s.billRepo.CreateBulk(bills); err != nil {
		// Notifications already went out; they are not rolled back.
		return nil, fmt.Errorf("failed to persist bills after sending notifications: %w", err)
	}

	report := &EmailReport{
		Total:   len(details),
		Details: details,
	}
	for _, d := range details {
		if d.Success {
			report.Successful++
		} else {
			report.Failed++
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"count":      len(bills),
		"successful": report.Successful,
		"failed":     report.Failed,
	}).Info("Bulk bills created")

	return &BulkIssueResult{
		Count:        len(bills),
		Bills:        bills,
		EmailResults: report,
	}, nil
}

// GetBill retrieves a bill by identifier
func (s *billingService) GetBill(id string) (*models.Bill, error) {
	return s.billRepo.GetByID(id)
}

// ListBills retrieves bills matching the filter, newest first
func (s *billingService) ListBills(filter models.BillFilter) ([]*models.Bill, error) {
	filter.Month = strings.ToLower(filter.Month)
	return s.billRepo.List(filter)
}

// UpdateBillStatus updates the status of a bill. Status is the only field
// mutable after issuance.
func (s *billingService) UpdateBillStatus(id, status string) (*models.Bill, error) {
	if status == "" {
		return nil, apperrors.NewValidationError("Status is required")
	}
	if status != models.BillStatusPaid && status != models.BillStatusPending {
		return nil, apperrors.NewValidationError("Status must be Paid or Pending")
	}
	return s.billRepo.UpdateStatus(id, status)
}

// DeleteBill removes a bill by identifier
func (s *billingService) DeleteBill(id string) error {
	return s.billRepo.Delete(id)
}

// validateBillInput checks the single-issue payload: all required fields
// present and the amount a non-negative number.
func validateBillInput(input *models.BillInput) error {
	fields := make(map[string]string)
	if input.ResidentID == "" {
		fields["residentId"] = "Resident is required"
	}
	if input.Month == "" {
		fields["month"] = "Month is required"
	}
	if input.Year == "" {
		fields["year"] = "Year is required"
	}
	if input.Amount == "" {
		fields["amount"] = "Amount is required"
	} else if amount, err := strconv.ParseFloat(input.Amount, 64); err != nil || amount < 0 {
		fields["amount"] = "Amount must be a non-negative number"
	}
	if len(fields) > 0 {
		return apperrors.NewFieldValidationError("Missing required fields", fields)
	}
	return nil
}

// buildBill constructs a bill record from an issuance request: generated
// identifier, today's issuance date in DD/MM/YYYY, lowercase month, status
// defaulting to Paid.
func buildBill(input *models.BillInput, now time.Time) *models.Bill {
	status := input.Status
	if status == "" {
		status = models.BillStatusPaid
	}

	return &models.Bill{
		ID:           uuid.New().String(),
		ResidentID:   input.ResidentID,
		ResidentName: input.ResidentName,
		FlatNumber:   input.FlatNumber,
		Email:        input.Email,
		Amount:       input.Amount,
		Status:       status,
		SentDate:     now.Format("02/01/2006"),
		Month:        strings.ToLower(input.Month),
		Year:         input.Year,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// denormalizeResident copies the resident's display fields onto the bill at
// issuance time, so billing history stays stable if the resident changes.
func denormalizeResident(bill *models.Bill, resident *models.Resident) {
	bill.ResidentName = resident.Name
	bill.FlatNumber = resident.FlatNumber
	bill.Email = resident.Email
}
