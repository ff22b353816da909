package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdeck/admin-be/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "admin-api-service",
		})
	})

	jobHandler := handler.NewJobHandler(deps)
	userHandler := handler.NewUserHandler(deps)
	creditHandler := handler.NewCreditHandler(deps)
	premiumHandler := handler.NewPremiumHandler(deps)
	packageHandler := handler.NewPackageHandler(deps)
	paymentHandler := handler.NewPaymentHandler(deps)
	exportHandler := handler.NewExportHandler(deps)
	shellHandler := handler.NewShellHandler(deps)
	authHandler := handler.NewAuthHandler(deps)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/login", authHandler.Login)

		admin := v1.Group("/admin", RequireAdmin(deps.Auth))
		{
			jobs := admin.Group("/jobs")
			{
				jobs.GET("", jobHandler.ListJobs)
				jobs.GET("/stats", jobHandler.ModerationStats)
				jobs.GET("/badge-stats", jobHandler.BadgeStats)
				jobs.GET("/approval-preview", jobHandler.ApprovalPreview)
				jobs.POST("/bulk-approve", jobHandler.BulkApprove)
				jobs.GET("/:job_id", jobHandler.GetJob)
				jobs.GET("/:job_id/history", jobHandler.ListHistory)
				jobs.POST("/:job_id/approve", jobHandler.ApproveJob)
				jobs.POST("/:job_id/reject", jobHandler.RejectJob)
				jobs.POST("/:job_id/republish", jobHandler.RepublishJob)
				jobs.PUT("/:job_id/badges", jobHandler.UpdateBadges)
			}

			users := admin.Group("/users")
			{
				users.GET("", userHandler.ListUsers)
				users.GET("/:user_id", userHandler.GetUser)
				users.PUT("/:user_id/active", userHandler.SetUserActive)
			}

			services := admin.Group("/services")
			{
				services.GET("", userHandler.ListServiceAccess)
				services.POST("/toggle", userHandler.ToggleService)
				services.POST("/grant", userHandler.GrantServices)
			}

			credits := admin.Group("/credits")
			{
				credits.GET("/summary", creditHandler.CreditsSummary)
				credits.GET("/transactions", creditHandler.ListTransactions)
				credits.POST("/adjust", creditHandler.AdjustCredits)
			}

			premium := admin.Group("/premium")
			{
				premium.GET("", premiumHandler.ListSubscriptions)
				premium.POST("/activate", premiumHandler.ActivateSubscription)
				premium.POST("/:subscription_id/cancel", premiumHandler.CancelSubscription)
			}

			packages := admin.Group("/packages")
			{
				packages.GET("", packageHandler.ListPackages)
				packages.POST("", packageHandler.CreatePackage)
				packages.PUT("/:package_id", packageHandler.UpdatePackage)
				packages.PUT("/:package_id/active", packageHandler.SetPackageActive)
			}

			payments := admin.Group("/payments")
			{
				payments.GET("/pending", paymentHandler.ListPendingPayments)
				payments.GET("/:payment_id", paymentHandler.GetPayment)
				payments.POST("/:payment_id/approve", paymentHandler.ApprovePayment)
				payments.POST("/:payment_id/reject", paymentHandler.RejectPayment)
			}

			export := admin.Group("/export")
			{
				export.GET("/jobs.csv", exportHandler.ExportJobsCSV)
				export.GET("/moderation-stats.txt", exportHandler.ExportModerationStats)
			}

			sh := admin.Group("/shell")
			{
				sh.GET("/menu", shellHandler.GetMenu)
				sh.GET("/breadcrumbs", shellHandler.GetBreadcrumbs)
				sh.GET("/preferences", shellHandler.GetPreferences)
				sh.PUT("/preferences", shellHandler.SavePreferences)
			}
		}
	}

	return r
}
