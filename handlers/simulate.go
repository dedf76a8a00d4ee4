package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SimulateStart kicks off one simulated run of a registered job.
func SimulateStart(c *gin.Context) {
	name := c.Query("job_name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job_name is required"})
		return
	}

	if err := sims.Start(name); err != nil {
		if strings.Contains(err.Error(), "unknown") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Simulated job started: " + name,
	})
}

// SimulateStop cancels an in-flight simulated run without writing a
// completion line, which makes the job look stuck in its log.
func SimulateStop(c *gin.Context) {
	name := c.Query("job_name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job_name is required"})
		return
	}

	if err := sims.Stop(name); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Simulated job stopped: " + name,
	})
}
