package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nishantsaini5786/saini-game-hub-backend/controllers"
)

// RegisterAuthRoutes sets up the account routes.
func RegisterAuthRoutes(router *gin.RouterGroup, authController *controllers.AuthController) {
	router.POST("/register", authController.RegisterUser)
	router.POST("/login", authController.LoginUser)
	router.GET("/check", authController.CheckSession)
	router.GET("/logout", authController.LogoutUser)
}
