package handlers

import (
	"fmt"
	"time"

	"cronwatch/config"
	"cronwatch/models"
	"cronwatch/services"
)

var (
	cfg         config.Config
	monitor     *services.Monitor
	sims        *services.SimRegistry
	scanner     services.ProcessScanner
	manager     *services.MonitorManager
	defaultJobs []models.JobConfig
)

// Setup wires the handlers to the shared service instances. Called
// once from main before routes are registered.
func Setup(c config.Config, m *services.Monitor, r *services.SimRegistry, mgr *services.MonitorManager, jobs []models.JobConfig) {
	cfg = c
	monitor = m
	sims = r
	manager = mgr
	defaultJobs = jobs
}

// activeSource picks the provider for a check. Simulation and process
// scanning are alternatives, never combined.
func activeSource(simulation bool) services.ActiveJobSource {
	if simulation {
		return sims
	}
	return scanner
}

// RunScheduledCheck is the entry point for the auto-monitor loop in
// main; ticks and /monitor go through runCheck directly.
func RunScheduledCheck(channelID, returnURL string, jobs []models.JobConfig, src services.ActiveJobSource) {
	runCheck(channelID, returnURL, jobs, src)
}

// runCheck performs one full monitoring pass and delivers the report.
// Runs in the background of a tick or on the periodic loop.
func runCheck(channelID, returnURL string, jobs []models.JobConfig, src services.ActiveJobSource) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Check panic for channel %s: %v\n", channelID, r)
		}
	}()

	results := monitor.Check(jobs, src)

	payload := models.WebhookPayload{
		Username:  "Cron Monitor",
		EventName: "Cron Check",
		Status:    services.OverallStatus(results),
		Message:   services.FormatReport(results, time.Now()),
	}
	services.DeliverReport(returnURL, payload)

	services.RecordCheck(channelID, results)

	for _, r := range results {
		if r.Status == models.StatusError {
			go services.SendErrorEmail(r)
		}
	}
}
