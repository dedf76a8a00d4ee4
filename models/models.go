package models

import (
	"time"
)

// Verdict statuses, in order of severity.
const (
	StatusOK      = "ok"
	StatusWarning = "warning"
	StatusError   = "error"
	StatusRunning = "running"
)

type JobConfig struct {
	Name           string `json:"name" yaml:"name"`
	Pattern        string `json:"pattern" yaml:"pattern"`
	MaxDuration    int    `json:"max_duration" yaml:"max_duration"` // minutes
	LogFile        string `json:"log_file" yaml:"log_file"`
	ExpectedOutput string `json:"expected_output,omitempty" yaml:"expected_output,omitempty"`
}

// Verdict is the health classification of a single job, recomputed
// from its log tail on every check.
type Verdict struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// JobResult is one row of a monitoring pass. Running is determined
// independently of Status: a job can report ok from its last completed
// run while a new run is already in progress.
type JobResult struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Running bool   `json:"running"`
}

// ActiveJob describes an entry from the active-job source. PID and
// Command are set by the process scanner; Runtime is minutes for
// simulated jobs and the raw ps etime string for real processes.
type ActiveJob struct {
	Name    string  `json:"name,omitempty"`
	PID     int     `json:"pid,omitempty"`
	Runtime string  `json:"runtime,omitempty"`
	Minutes float64 `json:"minutes,omitempty"`
	Command string  `json:"command,omitempty"`
}

// TickSettings mirrors the settings block of the tick payload. Key
// names with spaces come from the integration settings schema.
type TickSettings struct {
	SimulationMode bool        `json:"Simulation Mode"`
	CronJobs       []JobConfig `json:"Cron Jobs"`
}

type TickPayload struct {
	ChannelID string       `json:"channel_id" binding:"required"`
	ReturnURL string       `json:"return_url"`
	Settings  TickSettings `json:"settings"`
}

// WebhookPayload is the body POSTed to the callback URL.
type WebhookPayload struct {
	Username  string `json:"username"`
	EventName string `json:"event_name"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// CheckRecord is a persisted job result, one row per job per pass.
type CheckRecord struct {
	ID        string    `json:"id"`
	CheckID   string    `json:"check_id"`
	ChannelID string    `json:"channel_id"`
	JobName   string    `json:"job_name"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Running   bool      `json:"running"`
	CreatedAt time.Time `json:"created_at"`
}
