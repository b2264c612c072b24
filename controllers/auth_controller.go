package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nishantsaini5786/saini-game-hub-backend/services"
	"github.com/nishantsaini5786/saini-game-hub-backend/utils"
)

type AuthController struct {
	AuthService *services.AuthService
}

// NewAuthController initializes AuthController with the given auth service.
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		AuthService: authService,
	}
}

// RegisterRequest represents the registration payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Contact  string `json:"contact" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser creates the account and logs the caller straight in by
// setting the session cookie.
func (ctrl *AuthController) RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := ctrl.AuthService.Register(c.Request.Context(), req.Name, req.Username, req.Contact, req.Email, req.Password)
	if err != nil {
		c.Error(err) // rendered by the error middleware
		return
	}

	if err := utils.SetSessionCookie(c, user); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LoginUser verifies credentials and sets the session cookie. The cookie is
// the only side effect; no record is mutated.
func (ctrl *AuthController) LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := ctrl.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err) // rendered by the error middleware
		return
	}

	if err := utils.SetSessionCookie(c, user); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CheckSession reports whether the caller holds a readable session cookie.
// Parse failures are deliberately not errors: the answer is simply that
// nobody is logged in.
func (ctrl *AuthController) CheckSession(c *gin.Context) {
	session, err := utils.GetSessionUser(c)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"loggedIn": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"loggedIn": true, "user": session})
}

// LogoutUser clears the session cookie. Always succeeds.
func (ctrl *AuthController) LogoutUser(c *gin.Context) {
	utils.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
