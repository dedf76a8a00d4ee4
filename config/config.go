package config

import (
	"os"
	"strconv"
	"time"
)

// DefaultWebhookURL is the fallback callback when a tick payload does
// not carry a return_url.
const DefaultWebhookURL = "https://ping.telex.im/v1/webhooks/01952c5a-d68b-7c5f-bd0e-6e691c8a7f35"

type Config struct {
	Port            string
	WebhookURL      string
	MonitorInterval time.Duration
	JobsFile        string
	SimulationMode  bool
	AutoMonitor     bool
	DatabaseURL     string
}

func Load() Config {
	cfg := Config{
		Port:            os.Getenv("PORT"),
		WebhookURL:      os.Getenv("WEBHOOK_URL"),
		MonitorInterval: 60 * time.Second,
		JobsFile:        os.Getenv("JOBS_FILE"),
		SimulationMode:  os.Getenv("SIMULATION_MODE") == "true",
		AutoMonitor:     os.Getenv("AUTO_MONITOR") == "true",
		DatabaseURL:     os.Getenv("DATABASE_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.WebhookURL == "" {
		cfg.WebhookURL = DefaultWebhookURL
	}
	if v := os.Getenv("MONITOR_INTERVAL"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.MonitorInterval = time.Duration(secs) * time.Second
		}
	}

	return cfg
}
