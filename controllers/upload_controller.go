package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nishantsaini5786/saini-game-hub-backend/services"
	"github.com/nishantsaini5786/saini-game-hub-backend/utils"
)

// ProfileImageDir is the per-purpose directory profile images live in,
// below the upload root.
const ProfileImageDir = "profile-images"

type UploadController struct {
	UserService *services.UserService
	UploadDir   string
}

// NewUploadController initializes UploadController with the user service
// and the upload root the files are stored under.
func NewUploadController(userService *services.UserService, uploadDir string) *UploadController {
	return &UploadController{
		UserService: userService,
		UploadDir:   uploadDir,
	}
}

// UploadProfileImage stores the multipart file under the profile-image
// directory and records the stored filename on the caller's record. The
// route sits behind AuthMiddleware, so the user id is already in the
// context; the record is still looked up so a stale cookie cannot write a
// file for a user that no longer exists.
func (ctrl *UploadController) UploadProfileImage(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	if _, err := ctrl.UserService.GetUserByID(c.Request.Context(), userID.(string)); err != nil {
		c.Error(err) // sentinel or driver error, both answer as 500
		return
	}

	file, err := c.FormFile("profileImage")
	if err != nil {
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(ctrl.UploadDir, ProfileImageDir, filename)); err != nil {
		c.Error(err)
		return
	}

	if err := ctrl.UserService.UpdateProfileImage(c.Request.Context(), userID.(string), filename); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"imageUrl": "/uploads/" + ProfileImageDir + "/" + filename,
	})
}
