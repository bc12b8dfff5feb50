package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mmpl/league-api/controllers"
	"github.com/mmpl/league-api/middleware"
	"github.com/mmpl/league-api/models"
	"github.com/mmpl/league-api/store"
)

func SetupRoutes(r *gin.Engine, contentStore *store.ContentStore) {
	db := contentStore.DB()

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	playerController := controllers.NewPlayerController(db)
	venueController := controllers.NewVenueController(db)
	committeeController := controllers.NewCommitteeController(db)
	pageController := controllers.NewPageController(contentStore)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/login/google", authController.GoogleLogin)
		public.POST("/refresh-token", authController.RefreshToken)

		// The venue pages themselves are the public face of the site.
		public.GET("/pages/venues", pageController.ListVenuePages)
		public.GET("/pages/venues/:slug", pageController.GetVenuePage)
	}

	// Protected routes: the members area
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.GET("/profile", authController.GetProfile)

		SetupPlayerRoutes(protected, playerController)
		SetupVenueRoutes(protected, venueController)
		SetupCommitteeRoutes(protected, committeeController)
		SetupPageRoutes(protected, pageController)
	}
}

// committeeOnly guards record mutations to committee members and admins.
func committeeOnly() gin.HandlerFunc {
	return middleware.RequireRole(models.RoleCommittee)
}
