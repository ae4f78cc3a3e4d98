package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the common response envelope for all endpoints.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// SuccessResponse sends a 200 response with the given payload.
func SuccessResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreatedResponse sends a 201 response with the given payload.
func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// BadRequestResponse sends a 400 response.
func BadRequestResponse(c *gin.Context, message string, err error) {
	resp := APIResponse{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// ValidationErrorResponse sends a 400 response with field-level detail.
func ValidationErrorResponse(c *gin.Context, message string, fields map[string]string) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Message: message,
		Error:   fields,
	})
}

// UnauthorizedResponse sends a 401 response.
func UnauthorizedResponse(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, APIResponse{
		Success: false,
		Message: message,
	})
}

// NotFoundResponse sends a 404 response.
func NotFoundResponse(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, APIResponse{
		Success: false,
		Message: message,
	})
}

// ConflictResponse sends a 409 response, optionally with detail the caller
// can use to decide on a forced retry.
func ConflictResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusConflict, APIResponse{
		Success: false,
		Message: message,
		Data:    data,
	})
}

// InternalServerErrorResponse sends a 500 response.
func InternalServerErrorResponse(c *gin.Context, message string, err error) {
	resp := APIResponse{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// ServiceUnavailableResponse sends a 503 response.
func ServiceUnavailableResponse(c *gin.Context, message string) {
	c.JSON(http.StatusServiceUnavailable, APIResponse{
		Success: false,
		Message: message,
	})
}

// BadGatewayResponse sends a 502 response with the given payload. Used when
// an upstream dependency (the mail relay) rejects an operation.
func BadGatewayResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusBadGateway, APIResponse{
		Success: false,
		Message: message,
		Data:    data,
	})
}
