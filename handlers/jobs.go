package handlers

import (
	"net/http"
	"time"

	"cronwatch/models"

	"github.com/gin-gonic/gin"
)

// ListActiveJobs reports jobs the current active-job source considers
// running right now.
func ListActiveJobs(c *gin.Context) {
	src := monitor.Source()

	var jobs []models.ActiveJob
	if src != nil {
		jobs = src.ActiveJobs()
	}
	if jobs == nil {
		jobs = []models.ActiveJob{}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"data":      jobs,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
