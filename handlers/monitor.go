package handlers

import (
	"net/http"
	"time"

	"cronwatch/config"
	"cronwatch/models"

	"github.com/gin-gonic/gin"
)

// StartMonitor begins periodic checks for a channel, replacing any
// existing loop for it. An empty body falls back to defaults, so the
// endpoint can be poked without a payload.
func StartMonitor(c *gin.Context) {
	var payload models.TickPayload
	// Empty or partial bodies are fine here
	_ = c.ShouldBindJSON(&payload)

	channelID := payload.ChannelID
	if channelID == "" {
		channelID = "default"
	}
	returnURL := payload.ReturnURL
	if returnURL == "" {
		returnURL = cfg.WebhookURL
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

	simulation := payload.Settings.SimulationMode || cfg.SimulationMode
	if simulation {
		sims.Setup(jobs)
	}
	src := activeSource(simulation)

	manager.Start(channelID, cfg.MonitorInterval, func() {
		runCheck(channelID, returnURL, jobs, src)
	})

	c.JSON(http.StatusOK, gin.H{
		"status":    "accepted",
		"message":   "Monitoring started - sending updates every " + cfg.MonitorInterval.String(),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// StopMonitor cancels the periodic loop for a channel.
func StopMonitor(c *gin.Context) {
	var payload models.TickPayload
	_ = c.ShouldBindJSON(&payload)

	channelID := payload.ChannelID
	if channelID == "" {
		channelID = "default"
	}

	manager.Stop(channelID)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Monitoring stopped",
	})
}
