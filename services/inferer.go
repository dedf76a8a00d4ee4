package services

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"cronwatch/models"
)

const (
	logTailLines    = 100
	freshnessWindow = 24 * time.Hour
)

// CheckJobLogs reads the tail of a job's log file and classifies its
// health. Every failure mode degrades to a verdict; this never panics
// past its boundary.
func CheckJobLogs(job models.JobConfig, now time.Time) (verdict models.Verdict) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Log check panic for %s: %v\n", job.Name, r)
			verdict = models.Verdict{
				Status:  models.StatusError,
				Message: fmt.Sprintf("Log check failed: %v", r),
			}
		}
	}()

	lines, err := tailLines(job.LogFile, logTailLines)
	if err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			return models.Verdict{
				Status:  models.StatusError,
				Message: fmt.Sprintf("Log file not found: %s", job.LogFile),
			}
		}
		return models.Verdict{
			Status:  models.StatusError,
			Message: fmt.Sprintf("Log check failed: %v", err),
		}
	}

	return Infer(job, lines, now)
}

// Infer classifies a job from its log lines. Lines are scanned newest
// first; the scan stops once the most recent run has been fully
// characterized by a start and an end event. Deterministic for a given
// (lines, job, now) triple.
func Infer(job models.JobConfig, lines []string, now time.Time) models.Verdict {
	var (
		startAt, endAt time.Time
		haveStart      bool
		haveEnd        bool
		endFailed      bool
		expectedSeen   bool
	)

	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if !strings.Contains(line, job.Pattern) {
			continue
		}

		// Lines without a parseable timestamp (including a
		// partially-written last line) carry no timing evidence.
		ts, ok := ParseLogTimestamp(line, now)
		if !ok {
			continue
		}
		if now.Sub(ts) > freshnessWindow {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "started") || strings.Contains(lower, "beginning"):
			if !haveStart {
				startAt = ts
				haveStart = true
			}
		case strings.Contains(lower, "completed") || strings.Contains(lower, "finished") || strings.Contains(lower, "failed"):
			if !haveEnd {
				endAt = ts
				haveEnd = true
				endFailed = strings.Contains(lower, "failed")
				if job.ExpectedOutput != "" && strings.Contains(line, job.ExpectedOutput) {
					expectedSeen = true
				}
			}
		}

		if haveStart && haveEnd {
			break
		}
	}

	if !haveStart {
		return models.Verdict{
			Status:  models.StatusWarning,
			Message: "No executions found in the last 24 hours",
		}
	}

	if haveEnd {
		duration := endAt.Sub(startAt).Minutes()
		if endFailed {
			return models.Verdict{
				Status:  models.StatusError,
				Message: fmt.Sprintf("Job failed after %.1f minutes", duration),
			}
		}
		if job.ExpectedOutput != "" && !expectedSeen {
			return models.Verdict{
				Status:  models.StatusWarning,
				Message: "Expected output not found in logs",
			}
		}
		if duration > float64(job.MaxDuration) {
			return models.Verdict{
				Status:  models.StatusWarning,
				Message: fmt.Sprintf("Last job took %.1f minutes (max: %d)", duration, job.MaxDuration),
			}
		}
		return models.Verdict{
			Status:  models.StatusOK,
			Message: fmt.Sprintf("Last run completed in %.1f minutes", duration),
		}
	}

	duration := now.Sub(startAt).Minutes()
	if duration > float64(job.MaxDuration) {
		return models.Verdict{
			Status:  models.StatusError,
			Message: fmt.Sprintf("Job possibly stuck - running for %.1f minutes", duration),
		}
	}
	return models.Verdict{
		Status:  models.StatusRunning,
		Message: fmt.Sprintf("In progress for %.1f minutes", duration),
	}
}

// tailLines returns the last n lines of a file, oldest first. The log
// is an external append-only resource: no locking, and a torn final
// line is returned as-is for the caller to skip.
func tailLines(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if len(lines) > n {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
