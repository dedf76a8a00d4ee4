package services

import (
	"fmt"
	"strings"
	"time"

	"cronwatch/models"
)

var statusEmoji = map[string]string{
	models.StatusOK:      "✅",
	models.StatusWarning: "⚠️",
	models.StatusError:   "❌",
	models.StatusRunning: "🔄",
}

// FormatReport renders a monitoring pass as the human-readable message
// delivered to the callback webhook.
func FormatReport(results []models.JobResult, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🔍 Cron Monitor Report [%s]\n", now.Format("15:04:05"))
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━\n\n")

	if len(results) == 0 {
		b.WriteString("No jobs configured\n")
		return b.String()
	}

	for _, r := range results {
		emoji, ok := statusEmoji[r.Status]
		if !ok {
			emoji = "❓"
		}
		fmt.Fprintf(&b, "%s %s: %s", emoji, r.Name, r.Message)
		if r.Running {
			b.WriteString(" (running now)")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// OverallStatus folds per-job statuses into the webhook-level status:
// any error wins, then any warning, otherwise success.
func OverallStatus(results []models.JobResult) string {
	status := "success"
	for _, r := range results {
		switch r.Status {
		case models.StatusError:
			return "error"
		case models.StatusWarning:
			status = "warning"
		}
	}
	return status
}
