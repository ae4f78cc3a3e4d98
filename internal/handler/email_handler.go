package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"society-billing-svc/internal/mailer"
	"society-billing-svc/internal/models"
	"society-billing-svc/pkg/logger"
	"society-billing-svc/pkg/utils"
)

// TestEmailRequest is the payload for sending a test bill notice.
type TestEmailRequest struct {
	Email string `json:"email"`
}

// EmailHandler handles mail-relay diagnostics requests
type EmailHandler struct {
	mailer mailer.Mailer
	logger *logger.Logger
}

// NewEmailHandler creates a new EmailHandler instance
func NewEmailHandler(m mailer.Mailer, logger *logger.Logger) *EmailHandler {
	return &EmailHandler{
		mailer: m,
		logger: logger,
	}
}

// CheckConfig reports relay configuration problems without sending mail
// @Summary Check mail relay configuration
// @Description Inspect relay settings (host, port, credentials, from address) for presence and plausibility. No mail is sent.
// @Tags email
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=mailer.ConfigCheck} "Configuration check result"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /api/v1/email/config [get]
func (h *EmailHandler) CheckConfig(c *gin.Context) {
	check := h.mailer.CheckConfig()

	message := "Email configuration is valid"
	if check.HasIssues {
		message = "Email configuration has issues"
	}

	utils.SuccessResponse(c, message, check)
}

// SendTestEmail sends a fixture bill notice to a target address
// @Summary Send test email
// @Description Validate the target address, refuse if the relay configuration has issues, then send a fixture bill notice.
// @Tags email
// @Accept json
// @Produce json
// @Param request body TestEmailRequest true "Target address"
// @Success 200 {object} utils.APIResponse{data=mailer.SendResult} "Test email sent"
// @Failure 400 {object} utils.APIResponse "Invalid address or configuration issues"
// @Failure 502 {object} utils.APIResponse "Relay rejected the message"
// @Router /api/v1/email/test [post]
func (h *EmailHandler) SendTestEmail(c *gin.Context) {
	var req TestEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	if req.Email == "" {
		utils.BadRequestResponse(c, "Email address is required", nil)
		return
	}
	if !mailer.IsValidEmail(req.Email) {
		utils.BadRequestResponse(c, "Invalid email address format", nil)
		return
	}

	// Refuse to contact the relay while the configuration is known-bad.
	if check := h.mailer.CheckConfig(); check.HasIssues {
		c.JSON(400, utils.APIResponse{
			Success: false,
			Message: "Email configuration has issues that need to be fixed",
			Data:    check,
		})
		return
	}

	resident, bill := testFixtures(req.Email)
	result := h.mailer.SendBill(resident, bill)
	if !result.Success {
		h.logger.WithFields(map[string]interface{}{
			"to":     req.Email,
			"reason": result.Reason,
		}).Error("Test email failed")
		utils.BadGatewayResponse(c, "Failed to send test email", result)
		return
	}

	h.logger.WithField("to", req.Email).Info("Test email sent successfully")

	utils.SuccessResponse(c, "Test email sent successfully to "+req.Email, result)
}

// testFixtures builds the synthetic resident and bill used for test sends.
func testFixtures(email string) (*models.Resident, *models.Bill) {
	now := time.Now()
	resident := &models.Resident{
		ID:         "test-id",
		Name:       "Test Resident",
		FlatNumber: "A-101",
		Email:      email,
		Phone:      "1234567890",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	bill := &models.Bill{
		ID:           "test-bill-id",
		ResidentID:   resident.ID,
		ResidentName: resident.Name,
		FlatNumber:   resident.FlatNumber,
		Email:        email,
		Amount:       "500",
		Status:       models.BillStatusPaid,
		SentDate:     now.Format("02/01/2006"),
		Month:        "june",
		Year:         "2025",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return resident, bill
}
