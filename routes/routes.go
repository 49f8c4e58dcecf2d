package routes

import (
	"github.com/gin-gonic/gin"

	"rex-dinner-api/access"
	"rex-dinner-api/handlers"
	"rex-dinner-api/middleware"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/login", handlers.Login)
		public.POST("/auth/change-password", handlers.ChangePassword)

		// Site content and menu (no auth needed)
		public.GET("/site", handlers.GetSiteContent)
		public.GET("/menu", handlers.GetMenu)

		// Public submission forms
		public.POST("/reservations", handlers.CreateReservation)
		public.POST("/orders", handlers.CreateOrder)
		public.GET("/reviews", handlers.GetReviews)
		public.POST("/reviews", handlers.CreateReview)

		// Workflow info (great for docs/Postman)
		public.GET("/workflow", handlers.GetWorkflowInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Staff panel routes, gated per section ──────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired())
	{
		menu := admin.Group("/menu", middleware.SectionRequired(access.SectionMenu))
		{
			menu.GET("", handlers.ListMenuItems)
			menu.POST("", handlers.AddMenuItem)
			menu.PUT("/:id", handlers.UpdateMenuItem)
			menu.DELETE("/:id", handlers.DeleteMenuItem)
			menu.GET("/export", handlers.ExportMenu)
			menu.POST("/import", handlers.ImportMenu)
			menu.POST("/restore", handlers.RestoreMenu)
		}

		reservations := admin.Group("/reservations", middleware.SectionRequired(access.SectionReservations))
		{
			reservations.GET("", handlers.GetReservations)
			reservations.PUT("/:id/status", handlers.UpdateReservationStatus)
		}

		orders := admin.Group("/orders", middleware.SectionRequired(access.SectionOrders))
		{
			orders.GET("", handlers.GetOrders)
			orders.PUT("/:id/status", handlers.UpdateOrderStatus)
		}

		reviews := admin.Group("/reviews", middleware.SectionRequired(access.SectionReviews))
		{
			reviews.DELETE("/:id", handlers.DeleteReview)
		}

		users := admin.Group("/users", middleware.SectionRequired(access.SectionUsers))
		{
			users.GET("", handlers.ListUsers)
			users.POST("", handlers.CreateUser)
			users.PUT("/:id", handlers.UpdateUser)
			users.DELETE("/:id", handlers.DeleteUser)
			users.POST("/:id/reset-password", handlers.ResetPassword)
		}

		config := admin.Group("/config", middleware.SectionRequired(access.SectionConfig))
		{
			config.GET("", handlers.GetSiteConfig)
			config.PUT("", handlers.UpdateSiteConfig)
		}
	}
}
