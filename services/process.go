package services

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"cronwatch/models"
)

// ProcessScanner is the active-job source backed by the OS process
// table. Best effort only: it never signals or manages processes, and
// a failed ps invocation reads as "nothing active".
type ProcessScanner struct{}

func (ProcessScanner) listing() []string {
	out, err := exec.Command("ps", "-eo", "pid,etime,cmd", "--no-headers").Output()
	if err != nil {
		fmt.Printf("Failed to list processes: %v\n", err)
		return nil
	}
	return strings.Split(string(out), "\n")
}

// IsActive reports whether any process command line contains the job's
// pattern as a substring.
func (s ProcessScanner) IsActive(job models.JobConfig) bool {
	for _, line := range s.listing() {
		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}
		cmd := strings.Join(parts[2:], " ")
		if strings.Contains(cmd, job.Pattern) {
			return true
		}
	}
	return false
}

// ActiveJobs returns process-table entries that look cron-related.
func (s ProcessScanner) ActiveJobs() []models.ActiveJob {
	var jobs []models.ActiveJob
	for _, line := range s.listing() {
		if !strings.Contains(strings.ToLower(line), "cron") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		pid, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		jobs = append(jobs, models.ActiveJob{
			PID:     pid,
			Runtime: fields[1],
			Command: strings.Join(fields[2:], " "),
		})
	}
	return jobs
}
