package handlers

import (
	"net/http"
	"time"

	"cronwatch/config"
	"cronwatch/models"

	"github.com/gin-gonic/gin"
)

// Tick runs one monitoring pass for the requesting channel. The check
// itself happens in the background; the response only acknowledges
// acceptance.
func Tick(c *gin.Context) {
	var payload models.TickPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tick payload: channel_id is required"})
		return
	}

	jobs := payload.Settings.CronJobs
	if len(jobs) == 0 {
		jobs = defaultJobs
	}
	for _, j := range jobs {
		if err := config.ValidateJob(j); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job config: " + err.Error()})
			return
		}
	}

	returnURL := payload.ReturnURL
	if returnURL == "" {
		returnURL = cfg.WebhookURL
	}

	simulation := payload.Settings.SimulationMode || cfg.SimulationMode
	if simulation {
		sims.Setup(jobs)
	}

	go runCheck(payload.ChannelID, returnURL, jobs, activeSource(simulation))

	c.JSON(http.StatusOK, gin.H{
		"status":    "accepted",
		"message":   "Monitoring check started",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
