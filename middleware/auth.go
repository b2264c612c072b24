package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nishantsaini5786/saini-game-hub-backend/utils"
)

// AuthMiddleware guards routes that need a logged-in caller. The identity
// comes from the session cookie; a missing or unparseable cookie ends the
// request with 401 before the handler runs. On success the user id and
// username are planted in the context for the handler.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := utils.GetSessionUser(c)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Not logged in")
			c.Abort()
			return
		}

		c.Set("userId", session.ID)
		c.Set("username", session.Username)
		c.Next()
	}
}
