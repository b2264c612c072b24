package utils

import "github.com/gin-gonic/gin"

// ErrorResponse writes the error body shared by every failing endpoint.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}
