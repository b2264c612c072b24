package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nishantsaini5786/saini-game-hub-backend/utils"
)

// ErrorHandlerMiddleware renders errors pushed onto the context with
// c.Error. A *utils.CustomError answers with its own status and message;
// everything else degrades to a generic 500 so no internal detail leaks.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if customErr, ok := err.(*utils.CustomError); ok {
				utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
				return
			}

			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
