package handler

import (
	"github.com/gin-gonic/gin"

	"society-billing-svc/internal/models"
	"society-billing-svc/internal/service"
	"society-billing-svc/pkg/logger"
	"society-billing-svc/pkg/utils"
)

// ResidentHandler handles resident-related HTTP requests
type ResidentHandler struct {
	residentService service.ResidentService
	logger          *logger.Logger
}

// NewResidentHandler creates a new ResidentHandler instance
func NewResidentHandler(residentService service.ResidentService, logger *logger.Logger) *ResidentHandler {
	return &ResidentHandler{
		residentService: residentService,
		logger:          logger,
	}
}

// ListResidents returns the full resident directory
// @Summary List residents
// @Description Get all residents ordered by flat number. Requires auth-token cookie.
// @Tags residents
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]models.Resident} "Residents retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents [get]
func (h *ResidentHandler) ListResidents(c *gin.Context) {
	residents, err := h.residentService.ListResidents()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list residents")
		utils.InternalServerErrorResponse(c, "Failed to fetch residents", err)
		return
	}

	utils.SuccessResponse(c, "Residents retrieved successfully", residents)
}

// CreateResident creates a new resident
// @Summary Create resident
// @Description Create a resident. Name, flat number, email and phone are all required; the flat number must be unused.
// @Tags residents
// @Accept json
// @Produce json
// @Param request body models.ResidentInput true "Resident fields"
// @Success 201 {object} utils.APIResponse{data=models.Resident} "Resident created successfully"
// @Failure 400 {object} utils.APIResponse "Missing required fields"
// @Failure 409 {object} utils.APIResponse "Flat number already exists"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents [post]
func (h *ResidentHandler) CreateResident(c *gin.Context) {
	var input models.ResidentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	resident, err := h.residentService.CreateResident(&input)
	if err != nil {
		respondServiceError(c, h.logger, err, "resident")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"resident_id": resident.ID,
		"flat_number": resident.FlatNumber,
	}).Info("Resident created successfully")

	utils.CreatedResponse(c, "Resident created successfully", resident)
}

// GetResident returns a single resident
// @Summary Get resident
// @Description Get a resident by identifier
// @Tags residents
// @Accept json
// @Produce json
// @Param id path string true "Resident ID"
// @Success 200 {object} utils.APIResponse{data=models.Resident} "Resident retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Resident not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/{id} [get]
func (h *ResidentHandler) GetResident(c *gin.Context) {
	resident, err := h.residentService.GetResident(c.Param("id"))
	if err != nil {
		respondServiceError(c, h.logger, err, "resident")
		return
	}

	utils.SuccessResponse(c, "Resident retrieved successfully", resident)
}

// UpdateResident updates a resident in place
// @Summary Update resident
// @Description Update a resident. Flat number uniqueness is re-checked excluding the resident itself.
// @Tags residents
// @Accept json
// @Produce json
// @Param id path string true "Resident ID"
// @Param request body models.ResidentInput true "Resident fields"
// @Success 200 {object} utils.APIResponse{data=models.Resident} "Resident updated successfully"
// @Failure 400 {object} utils.APIResponse "Missing required fields"
// @Failure 404 {object} utils.APIResponse "Resident not found"
// @Failure 409 {object} utils.APIResponse "Flat number already exists"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/{id} [put]
func (h *ResidentHandler) UpdateResident(c *gin.Context) {
	var input models.ResidentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Request body must be valid JSON", err)
		return
	}

	resident, err := h.residentService.UpdateResident(c.Param("id"), &input)
	if err != nil {
		respondServiceError(c, h.logger, err, "resident")
		return
	}

	h.logger.WithField("resident_id", resident.ID).Info("Resident updated successfully")

	utils.SuccessResponse(c, "Resident updated successfully", resident)
}

// DeleteResident deletes a resident, optionally cascading to its bills
// @Summary Delete resident
// @Description Delete a resident. Blocked with 409 and the referencing bill count unless force=true, in which case the bills are deleted first.
// @Tags residents
// @Accept json
// @Produce json
// @Param id path string true "Resident ID"
// @Param force query bool false "Force delete, cascading to bills"
// @Success 200 {object} utils.APIResponse{data=service.ResidentDeleteResult} "Resident deleted successfully"
// @Failure 404 {object} utils.APIResponse "Resident not found"
// @Failure 409 {object} utils.APIResponse "Resident has bills"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/{id} [delete]
func (h *ResidentHandler) DeleteResident(c *gin.Context) {
	force := c.Query("force") == "true"

	result, err := h.residentService.DeleteResident(c.Param("id"), force)
	if err != nil {
		respondServiceError(c, h.logger, err, "resident")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"resident_id":   result.ID,
		"bills_deleted": result.BillsDeleted,
	}).Info("Resident deleted successfully")

	utils.SuccessResponse(c, "Resident deleted successfully", result)
}
