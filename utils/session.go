package utils

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nishantsaini5786/saini-game-hub-backend/models"
)

// SessionCookieName is the cookie the logged-in identity travels in.
const SessionCookieName = "user"

const sessionMaxAge = 24 * time.Hour

// SetSessionCookie stores {id, username} for the user as a JSON cookie.
// The payload is not signed; the cookie attributes (HttpOnly, Secure,
// SameSite=None) are the only transport protection.
func SetSessionCookie(c *gin.Context, user *models.User) error {
	payload, err := json.Marshal(models.SessionUser{
		ID:       user.ID.Hex(),
		Username: user.Username,
	})
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookieName, string(payload), int(sessionMaxAge.Seconds()), "/", "", true, true)
	return nil
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", true, true)
}

// GetSessionUser reads and parses the session cookie. A missing cookie or
// an unparseable payload both come back as an error; callers decide whether
// that means 401 or just "not logged in".
func GetSessionUser(c *gin.Context) (*models.SessionUser, error) {
	raw, err := c.Cookie(SessionCookieName)
	if err != nil {
		return nil, err
	}

	var session models.SessionUser
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, err
	}
	return &session, nil
}
