package handler

import (
	"github.com/gin-gonic/gin"

	"society-billing-svc/internal/models"
	"society-billing-svc/internal/service"
	"society-billing-svc/pkg/logger"
	"society-billing-svc/pkg/utils"
)

// BulkBillRequest is the payload for bulk bill issuance.
type BulkBillRequest struct {
	Bills []*models.BillInput `json:"bills"`
}

// UpdateBillStatusRequest is the payload for the status-only update.
type UpdateBillStatusRequest struct {
	Status string `json:"status"`
}

// SingleBillResponse pairs a created bill with its notification outcome.
type SingleBillResponse struct {
	Bill        *models.Bill       `json:"bill"`
	EmailResult *mailerSendSummary `json:"emailResult"`
}

// mailerSendSummary mirrors mailer.SendResult for the response schema.
type mailerSendSummary struct {
	Success    bool   `json:"success"`
	DeliveryID string `json:"deliveryId,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Message    string `json:"message,omitempty"`
}

// BillHandler handles bill-related HTTP requests
type BillHandler struct {
	billingService service.BillingService
	logger         *logger.Logger
}

// NewBillHandler creates a new BillHandler instance
func NewBillHandler(billingService service.BillingService, logger *logger.Logger) *BillHandler {
	return &BillHandler{
		billingService: billingService,
		logger:         logger,
	}
}

// ListBills returns the sent-bills ledger
// @Summary List bills
// @Description Get bills, newest first. Month, year, status and residentId filters are optional and combined with AND.
// @Tags bills
// @Accept json
// @Produce json
// @Param month query string false "Billing month (lowercase name)"
// @Param year query string false "Billing year"
// @Param status query string false "Bill status (Paid or Pending)"
// @Param residentId query string false "Resident ID"
// @Success 200 {object} utils.APIResponse{data=[]models.Bill} "Bills retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills [get]
func (h *BillHandler) ListBills(c *gin.Context) {
	filter := models.BillFilter{
		Month:      c.Query("month"),
		Year:       c.Query("year"),
		Status:     c.Query("status"),
		ResidentID: c.Query("residentId"),
	}

	bills, err := h.billingService.ListBills(filter)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list bills")
		utils.InternalServerErrorResponse(c, "Failed to fetch bills", err)
		return
	}

	utils.SuccessResponse(c, "Bills retrieved successfully", bills)
}

// CreateBill issues a single bill and sends its notice
// @Summary Create bill
// @Description Issue one bill for an existing resident and attempt the email notice. The bill is kept even if the send fails.
// @Tags bills
// @Accept json
// @Produce json
// @Param request body models.BillInput true "Bill fields"
// @Success 201 {object} utils.APIResponse{data=SingleBillResponse} "Bill created successfully"
// @Failure 400 {object} utils.APIResponse "Missing required fields"
// @Failure 404 {object} utils.APIResponse "Resident not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	var input models.BillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	bill, result, err := h.billingService.CreateBill(&input)
	if err != nil {
		respondServiceError(c, h.logger, err, "resident")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"bill_id":    bill.ID,
		"email_sent": result.Success,
	}).Info("Bill created successfully")

	utils.CreatedResponse(c, "Bill created successfully", SingleBillResponse{
		Bill: bill,
		EmailResult: &mailerSendSummary{
			Success:    result.Success,
			DeliveryID: result.DeliveryID,
			Reason:     result.Reason,
			Message:    result.Message,
		},
	})
}

// CreateBulkBills issues a batch of bills and dispatches their notices
// @Summary Create bills in bulk
// @Description Issue a batch of bills in list order. Items missing required fields are dropped; the rest are persisted in one batch with a per-recipient email report.
// @Tags bills
// @Accept json
// @Produce json
// @Param request body BulkBillRequest true "Batch of bill requests"
// @Success 201 {object} utils.APIResponse{data=service.BulkIssueResult} "Bulk bills created"
// @Failure 400 {object} utils.APIResponse "No bills provided / no valid bills to create"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/bulk [post]
func (h *BillHandler) CreateBulkBills(c *gin.Context) {
	var req BulkBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	result, err := h.billingService.CreateBulkBills(req.Bills)
	if err != nil {
		respondServiceError(c, h.logger, err, "bills")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"count":      result.Count,
		"successful": result.EmailResults.Successful,
		"failed":     result.EmailResults.Failed,
	}).Info("Bulk bills created successfully")

	utils.CreatedResponse(c, "Bulk bills created successfully", result)
}

// GetBill returns a single bill
// @Summary Get bill
// @Description Get a bill by identifier
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} utils.APIResponse{data=models.Bill} "Bill retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Bill not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/{id} [get]
func (h *BillHandler) GetBill(c *gin.Context) {
	bill, err := h.billingService.GetBill(c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err, "bill")
		return
	}

	utils.SuccessResponse(c, "Bill retrieved successfully", bill)
}

// UpdateBillStatus updates only the status of a bill
// @Summary Update bill status
// @Description Update the status of a bill. Status is the only mutable field after issuance.
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param request body UpdateBillStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse{data=models.Bill} "Bill updated successfully"
// @Failure 400 {object} utils.APIResponse "Status is required"
// @Failure 404 {object} utils.APIResponse "Bill not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/{id} [put]
func (h *BillHandler) UpdateBillStatus(c *gin.Context) {
	var req UpdateBillStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	bill, err := h.billingService.UpdateBillStatus(c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, h.logger, err, "bill")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"bill_id": bill.ID,
		"status":  bill.Status,
	}).Info("Bill status updated successfully")

	utils.SuccessResponse(c, "Bill updated successfully", bill)
}

// DeleteBill removes a bill from the ledger
// @Summary Delete bill
// @Description Delete a bill by identifier
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} utils.APIResponse "Bill deleted successfully"
// @Failure 404 {object} utils.APIResponse "Bill not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/bills/{id} [delete]
func (h *BillHandler) DeleteBill(c *gin.Context) {
	id := c.Param("id")
	if err := h.billingService.DeleteBill(id); err != nil {
		respondServiceError(c, h.logger, err, "bill")
		return
	}

	h.logger.WithField("bill_id", id).Info("Bill deleted successfully")

	utils.SuccessResponse(c, "Bill deleted successfully", gin.H{"id": id})
}
