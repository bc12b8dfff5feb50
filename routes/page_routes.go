package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mmpl/league-api/controllers"
)

// SetupPageRoutes wires the editor side of the venue pages. Public reads live
// in SetupRoutes; everything here mutates content, so it is committee-only.
func SetupPageRoutes(protected *gin.RouterGroup, pageController *controllers.PageController) {
	pages := protected.Group("/pages/venues", committeeOnly())
	{
		pages.POST("", pageController.CreateVenuePage)
		pages.PUT("/:id", pageController.UpdateVenuePage)
		pages.POST("/:id/publish", pageController.PublishVenuePage)
		pages.POST("/:id/unpublish", pageController.UnpublishVenuePage)
		pages.DELETE("/:id", pageController.DeleteVenuePage)
	}
}
