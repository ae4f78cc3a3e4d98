package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"society-billing-svc/internal/mailer"
	"society-billing-svc/internal/models"
	"society-billing-svc/pkg/apperrors"
)

func testResident(id, flat string) *models.Resident {
	now := time.Now()
	return &models.Resident{
		ID:         id,
		Name:       "Resident " + flat,
		FlatNumber: flat,
		Email:      flat + "@example.com",
		Phone:      "1234567890",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestCreateBulkBills_EmptyBatch(t *testing.T) {
	svc := NewBillingService(newFakeBillRepo(), newFakeResidentRepo(), mailer.NewRecorder(), testLogger())

	_, err := svc.CreateBulkBills(nil)

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "No bills provided", vErr.Message)
}

func TestCreateBulkBills_SkipsItemsWithMissingFields(t *testing.T) {
	r1 := testResident("r1", "A-101")
	billRepo := newFakeBillRepo()
	rec := mailer.NewRecorder()
	svc := NewBillingService(billRepo, newFakeResidentRepo(r1), rec, testLogger())

	result, err := svc.CreateBulkBills([]*models.BillInput{
		{ResidentID: "r1", Month: "june", Year: "2025", Amount: "400"},
		{ResidentID: "r2"}, // missing month, year, amount
	})
	require.NoError(t, err)

	// The incomplete item is dropped from the batch, not reported.
	assert.Equal(t, 1, result.Count)
	require.Len(t, result.Bills, 1)
	assert.Equal(t, "r1", result.Bills[0].ResidentID)
	assert.Equal(t, 1, result.EmailResults.Total)
	assert.Equal(t, 1, result.EmailResults.Successful)
	assert.Equal(t, 0, result.EmailResults.Failed)
	require.Len(t, result.EmailResults.Details, 1)
	assert.Equal(t, "r1", result.EmailResults.Details[0].ResidentID)

	assert.Len(t, billRepo.inserted, 1)
	assert.Len(t, rec.Sent, 1)
}

func TestCreateBulkBills_AllItemsInvalid(t *testing.T) {
	billRepo := newFakeBillRepo()
	svc := NewBillingService(billRepo, newFakeResidentRepo(), mailer.NewRecorder(), testLogger())

	_, err := svc.CreateBulkBills([]*models.BillInput{
		{ResidentID: "r1"},
		{Month: "june", Year: "2025"},
	})

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "No valid bills to create", vErr.Message)
	assert.Empty(t, billRepo.inserted, "no writes when every item is skipped")
}

func TestCreateBulkBills_ResidentNotFound(t *testing.T) {
	billRepo := newFakeBillRepo()
	rec := mailer.NewRecorder()
	svc := NewBillingService(billRepo, newFakeResidentRepo(), rec, testLogger())

	result, err := svc.CreateBulkBills([]*models.BillInput{
		{ResidentID: "ghost-1", Month: "june", Year: "2025", Amount: "400"},
		{ResidentID: "ghost-2", Month: "june", Year: "2025", Amount: "450"},
	})
	require.NoError(t, err)

	// Bills do not require a live resident; only the notification fails.
	assert.Equal(t, 2, result.Count)
	assert.Len(t, billRepo.inserted, 2)
	assert.Equal(t, 0, result.EmailResults.Successful)
	assert.Equal(t, 2, result.EmailResults.Failed)
	for _, detail := range result.EmailResults.Details {
		assert.False(t, detail.Success)
		assert.Equal(t, "Resident not found", detail.Error)
		assert.Equal(t, "unknown", detail.Email)
	}
	assert.Empty(t, rec.Sent, "notifier is not invoked for unknown residents")
}

func TestCreateBulkBills_PersistsDespiteSendFailure(t *testing.T) {
	r1 := testResident("r1", "A-101")
	billRepo := newFakeBillRepo()
	rec := mailer.NewRecorder()
	rec.Result = &mailer.SendResult{
		Success: false,
		Reason:  mailer.ReasonConnection,
		Message: "Connection error",
	}
	svc := NewBillingService(billRepo, newFakeResidentRepo(r1), rec, testLogger())

	result, err := svc.CreateBulkBills([]*models.BillInput{
		{ResidentID: "r1", Month: "june", Year: "2025", Amount: "400"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Count)
	assert.Len(t, billRepo.inserted, 1, "bill is saved even when its email fails")
	assert.Equal(t, 1, result.EmailResults.Failed)
	assert.Equal(t, mailer.ReasonConnection, result.EmailResults.Details[0].Reason)
}

func TestCreateBulkBills_StoreFailureIsHardError(t *testing.T) {
	r1 := testResident("r1", "A-101")
	billRepo := newFakeBillRepo()
	billRepo.insertErr = errors.New("connection reset")
	rec := mailer.NewRecorder()
	svc := NewBillingService(billRepo, newFakeResidentRepo(r1), rec, testLogger())

	_, err := svc.CreateBulkBills([]*models.BillInput{
		{ResidentID: "r1", Month: "june", Year: "2025", Amount: "400"},
	})

	require.Error(t, err)
	assert.Len(t, rec.Sent, 1, "notifications already went out and are not rolled back")
}

func TestCreateBulkBills_DenormalizesFromStoreAndDefaults(t *testing.T) {
	r1 := testResident("r1", "B-204")
	svc := NewBillingService(newFakeBillRepo(), newFakeResidentRepo(r1), mailer.NewRecorder(), testLogger())

	result, err := svc.CreateBulkBills([]*models.BillInput{
		{ResidentID: "r1", Month: "June", Year: "2025", Amount: "400", ResidentName: "stale name"},
	})
	require.NoError(t, err)

	bill := result.Bills[0]
	assert.Equal(t, r1.Name, bill.ResidentName)
	assert.Equal(t, r1.FlatNumber, bill.FlatNumber)
	assert.Equal(t, r1.Email, bill.Email)
	assert.Equal(t, models.BillStatusPaid, bill.Status, "status defaults to Paid")
	assert.Equal(t, "june", bill.Month, "month is stored lower-cased")
	assert.NotEmpty(t, bill.ID)
	assert.Equal(t, time.Now().Format("02/01/2006"), bill.SentDate)
}

func TestCreateBill_ResidentMustExist(t *testing.T) {
	svc := NewBillingService(newFakeBillRepo(), newFakeResidentRepo(), mailer.NewRecorder(), testLogger())

	_, _, err := svc.CreateBill(&models.BillInput{
		ResidentID: "ghost", Month: "june", Year: "2025", Amount: "400",
	})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateBill_ValidatesAmount(t *testing.T) {
	r1 := testResident("r1", "A-101")
	svc := NewBillingService(newFakeBillRepo(), newFakeResidentRepo(r1), mailer.NewRecorder(), testLogger())

	_, _, err := svc.CreateBill(&models.BillInput{
		ResidentID: "r1", Month: "june", Year: "2025", Amount: "-10",
	})

	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "amount")
}

func TestCreateBill_KeptWhenSendFails(t *testing.T) {
	r1 := testResident("r1", "A-101")
	billRepo := newFakeBillRepo()
	rec := mailer.NewRecorder()
	rec.Result = &mailer.SendResult{Success: false, Reason: mailer.ReasonTimeout, Message: "timed out"}
	svc := NewBillingService(billRepo, newFakeResidentRepo(r1), rec, testLogger())

	bill, result, err := svc.CreateBill(&models.BillInput{
		ResidentID: "r1", Month: "june", Year: "2025", Amount: "400",
	})
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Len(t, billRepo.inserted, 1)
	assert.Equal(t, "r1", bill.ResidentID)
}

func TestUpdateBillStatus(t *testing.T) {
	r1 := testResident("r1", "A-101")
	billRepo := newFakeBillRepo()
	svc := NewBillingService(billRepo, newFakeResidentRepo(r1), mailer.NewRecorder(), testLogger())

	created, _, err := svc.CreateBill(&models.BillInput{
		ResidentID: "r1", Month: "june", Year: "2025", Amount: "400",
	})
	require.NoError(t, err)

	t.Run("requires a status", func(t *testing.T) {
		_, err := svc.UpdateBillStatus(created.ID, "")
		var vErr *apperrors.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		_, err := svc.UpdateBillStatus(created.ID, "Overdue")
		var vErr *apperrors.ValidationError
		require.ErrorAs(t, err, &vErr)
	})

	t.Run("not found is distinguishable", func(t *testing.T) {
		_, err := svc.UpdateBillStatus("missing", models.BillStatusPending)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("is idempotent", func(t *testing.T) {
		first, err := svc.UpdateBillStatus(created.ID, models.BillStatusPending)
		require.NoError(t, err)
		second, err := svc.UpdateBillStatus(created.ID, models.BillStatusPending)
		require.NoError(t, err)
		assert.Equal(t, first.Status, second.Status)
		assert.Equal(t, first.ID, second.ID)
	})
}

func TestListBills_LowercasesMonthFilter(t *testing.T) {
	r1 := testResident("r1", "A-101")
	billRepo := newFakeBillRepo()
	svc := NewBillingService(billRepo, newFakeResidentRepo(r1), mailer.NewRecorder(), testLogger())

	_, _, err := svc.CreateBill(&models.BillInput{
		ResidentID: "r1", Month: "june", Year: "2025", Amount: "400",
	})
	require.NoError(t, err)

	bills, err := svc.ListBills(models.BillFilter{Month: "June"})
	require.NoError(t, err)
	assert.Len(t, bills, 1)
}
