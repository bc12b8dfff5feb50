package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mmpl/league-api/controllers"
)

func SetupVenueRoutes(protected *gin.RouterGroup, venueController *controllers.VenueController) {
	venues := protected.Group("/venues")
	{
		venues.GET("", venueController.ListVenues)
		venues.GET("/:id", venueController.GetVenue)
		venues.POST("", committeeOnly(), venueController.CreateVenue)
		venues.PUT("/:id", committeeOnly(), venueController.UpdateVenue)
		venues.DELETE("/:id", committeeOnly(), venueController.DeleteVenue)
	}
}
