package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetIntegrationJSON serves the integration descriptor consumed by the
// webhook platform when registering this service.
func GetIntegrationJSON(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	baseURL := fmt.Sprintf("%s://%s", scheme, c.Request.Host)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"date": gin.H{
				"created_at": "2025-02-21",
				"updated_at": "2025-02-20",
			},
			"descriptions": gin.H{
				"app_name":         "Cron Monitor",
				"app_description":  "Monitor cron jobs and their execution status",
				"app_logo":         "https://example.com/cron-monitor-logo.png",
				"app_url":          baseURL,
				"background_color": "#fff",
			},
			"is_active":            true,
			"integration_type":     "interval",
			"integration_category": "Monitoring & Logging",
			"key_features": []string{
				"Real-time cron job monitoring",
				"Log-based health inference",
				"Stuck and failed job detection",
				"Simulated jobs for demos",
			},
			"author": "cronwatch",
			"settings": []gin.H{
				{
					"label":    "Check Interval",
					"type":     "dropdown",
					"required": true,
					"default":  "*/1 * * * *",
					"options": []string{
						"*/1 * * * *",
						"*/5 * * * *",
						"*/15 * * * *",
						"0 * * * *",
					},
				},
				{
					"label":    "Simulation Mode",
					"type":     "checkbox",
					"required": false,
					"default":  false,
				},
				{
					"label":    "Cron Jobs",
					"type":     "text",
					"required": false,
					"default":  "[]",
				},
			},
			"target_url": cfg.WebhookURL,
			"tick_url":   baseURL + "/tick",
		},
	})
}
