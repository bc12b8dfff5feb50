package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mmpl/league-api/controllers"
)

func SetupPlayerRoutes(protected *gin.RouterGroup, playerController *controllers.PlayerController) {
	players := protected.Group("/players")
	{
		players.GET("", playerController.ListPlayers)
		players.GET("/:id", playerController.GetPlayer)
		players.POST("", committeeOnly(), playerController.CreatePlayer)
		players.PUT("/:id", committeeOnly(), playerController.UpdatePlayer)
		players.DELETE("/:id", committeeOnly(), playerController.DeletePlayer)
		players.PUT("/:id/notifications", playerController.UpdateNotifications)
	}
}
