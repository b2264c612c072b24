package route

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nishantsaini5786/saini-game-hub-backend/controllers"
	"github.com/nishantsaini5786/saini-game-hub-backend/handlers"
)

// RegisterRoutes initializes all routes.
func RegisterRoutes(router *gin.Engine, authController *controllers.AuthController, uploadController *controllers.UploadController) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Game Hub API is running")
	})

	root := router.Group("")
	{
		handlers.RegisterAuthRoutes(root, authController)
		handlers.RegisterUploadRoutes(root, uploadController)
	}
}
