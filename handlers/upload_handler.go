package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nishantsaini5786/saini-game-hub-backend/controllers"
	"github.com/nishantsaini5786/saini-game-hub-backend/middleware"
)

// RegisterUploadRoutes sets up the profile-image upload route and serves
// the upload tree statically.
func RegisterUploadRoutes(router *gin.RouterGroup, uploadController *controllers.UploadController) {
	router.POST("/upload-profile", middleware.AuthMiddleware(), uploadController.UploadProfileImage)
	router.Static("/uploads", uploadController.UploadDir)
}
