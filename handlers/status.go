package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetStatus returns the most recent check results. The cache is
// overwritten on every pass and starts empty.
func GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"data":      monitor.LastResults(),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
