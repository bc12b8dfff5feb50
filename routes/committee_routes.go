package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mmpl/league-api/controllers"
)

func SetupCommitteeRoutes(protected *gin.RouterGroup, committeeController *controllers.CommitteeController) {
	committees := protected.Group("/committees")
	{
		committees.GET("", committeeController.ListCommittees)
		committees.GET("/current", committeeController.GetCurrentCommittee)
		committees.GET("/:id", committeeController.GetCommittee)
		committees.POST("", committeeOnly(), committeeController.CreateCommittee)
		committees.PUT("/:id", committeeOnly(), committeeController.UpdateCommittee)
		committees.DELETE("/:id", committeeOnly(), committeeController.DeleteCommittee)
	}
}
