package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"society-billing-svc/internal/mailer"
	"society-billing-svc/internal/middleware"
	"society-billing-svc/internal/service"
	"society-billing-svc/pkg/logger"
)

// SetupRoutes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	residentService service.ResidentService,
	billingService service.BillingService,
	m mailer.Mailer,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(authService, logger)
	residentHandler := NewResidentHandler(residentService, logger)
	billHandler := NewBillHandler(billingService, logger)
	emailHandler := NewEmailHandler(m, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		// Everything below requires an authenticated admin session.
		protected := v1.Group("")
		protected.Use(middleware.AuthRequired(authService, logger))

		// Resident routes
		residents := protected.Group("/residents")
		{
			residents.GET("", residentHandler.ListResidents)
			residents.POST("", residentHandler.CreateResident)
			residents.GET("/:id", residentHandler.GetResident)
			residents.PUT("/:id", residentHandler.UpdateResident)
			residents.DELETE("/:id", residentHandler.DeleteResident)
		}

		// Bill routes
		bills := protected.Group("/bills")
		{
			bills.GET("", billHandler.ListBills)
			bills.POST("", billHandler.CreateBill)
			bills.POST("/bulk", billHandler.CreateBulkBills)
			bills.GET("/:id", billHandler.GetBill)
			bills.PUT("/:id", billHandler.UpdateBillStatus)
			bills.DELETE("/:id", billHandler.DeleteBill)
		}

		// Mail relay diagnostics
		email := protected.Group("/email")
		{
			email.GET("/config", emailHandler.CheckConfig)
			email.POST("/test", emailHandler.SendTestEmail)
		}
	}
}

// HealthCheck reports service liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Society Billing Service",
	})
}
