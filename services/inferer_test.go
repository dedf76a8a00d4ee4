package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cronwatch/models"
)

func backupJob() models.JobConfig {
	return models.JobConfig{
		Name:        "backup",
		Pattern:     "backup.sh",
		MaxDuration: 30,
		LogFile:     "/var/log/backup.log",
	}
}

func logLine(ts time.Time, msg string) string {
	return fmt.Sprintf("%s - %s", ts.Format("2006-01-02 15:04:05"), msg)
}

func TestInferCompletedRun(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	lines := []string{
		logLine(now.Add(-5*time.Minute), "backup.sh started"),
		logLine(now, "backup.sh completed"),
	}

	v := Infer(backupJob(), lines, now)
	if v.Status != models.StatusOK {
		t.Fatalf("status = %q, want ok (message: %q)", v.Status, v.Message)
	}
	if v.Message != "Last run completed in 5.0 minutes" {
		t.Errorf("message = %q", v.Message)
	}
}

func TestInferStuckRun(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	lines := []string{
		logLine(now.Add(-45*time.Minute), "backup.sh started"),
	}

	v := Infer(backupJob(), lines, now)
	if v.Status != models.StatusError {
		t.Fatalf("status = %q, want error", v.Status)
	}
	if v.Message != "Job possibly stuck - running for 45.0 minutes" {
		t.Errorf("message = %q", v.Message)
	}
}

func TestInferRunningWithinBudget(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	lines := []string{
		logLine(now.Add(-2*time.Minute), "backup.sh started"),
	}

	v := Infer(backupJob(), lines, now)
	if v.Status != models.StatusRunning {
		t.Fatalf("status = %q, want running", v.Status)
	}
	if !strings.Contains(v.Message, "In progress") {
		t.Errorf("message = %q", v.Message)
	}
}

func TestInferSlowCompletedRun(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	lines := []string{
		logLine(now.Add(-40*time.Minute), "backup.sh started"),
		logLine(now, "backup.sh completed"),
	}

	v := Infer(backupJob(), lines, now)
	if v.Status != models.StatusWarning {
		t.Fatalf("status = %q, want warning", v.Status)
	}
	if v.Message != "Last job took 40.0 minutes (max: 30)" {
		t.Errorf("message = %q", v.Message)
	}
}

func TestInferFailedRun(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	lines := []string{
		logLine(now.Add(-5*time.Minute), "backup.sh started"),
		logLine(now.Add(-2*time.Minute), "backup.sh failed with exit code 1"),
	}

	v := Infer(backupJob(), lines, now)
	if v.Status != models.StatusError {
		t.Fatalf("status = %q, want error", v.Status)
	}
	if v.Message != "Job failed after 3.0 minutes" {
		t.Errorf("message = %q", v.Message)
	}
}

func TestInferExpectedOutput(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	job := backupJob()
	job.ExpectedOutput = "Backup verified"

	missing := []string{
		logLine(now.Add(-5*time.Minute), "backup.sh started"),
		logLine(now, "backup.sh completed"),
	}
	v := Infer(job, missing, now)
	if v.Status != models.StatusWarning || v.Message != "Expected output not found in logs" {
		t.Errorf("without output: got %q / %q", v.Status, v.Message)
	}

	present := []string{
		logLine(now.Add(-5*time.Minute), "backup.sh started"),
		logLine(now, "backup.sh completed - Backup verified"),
	}
	v = Infer(job, present, now)
	if v.Status != models.StatusOK {
		t.Errorf("with output: got %q / %q", v.Status, v.Message)
	}
}

func TestInferStaleStartIgnored(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	lines := []string{
		logLine(now.Add(-25*time.Hour), "backup.sh started"),
	}

	v := Infer(backupJob(), lines, now)
	if v.Status != models.StatusWarning {
		t.Fatalf("status = %q, want warning", v.Status)
	}
	if v.Message != "No executions found in the last 24 hours" {
		t.Errorf("message = %q", v.Message)
	}
}

func TestInferNoMatchingLines(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	lines := []string{
		logLine(now.Add(-5*time.Minute), "cleanup.sh started"),
		logLine(now, "cleanup.sh completed"),
	}

	v := Infer(backupJob(), lines, now)
	if v.Status != models.StatusWarning {
		t.Fatalf("status = %q, want warning", v.Status)
	}
}

func TestInferNewestRunWins(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	// Two complete runs; only the most recent pair should be reported.
	lines := []string{
		logLine(now.Add(-3*time.Hour), "backup.sh started"),
		logLine(now.Add(-2*time.Hour), "backup.sh completed"),
		logLine(now.Add(-10*time.Minute), "backup.sh started"),
		logLine(now.Add(-4*time.Minute), "backup.sh completed"),
	}

	v := Infer(backupJob(), lines, now)
	if v.Status != models.StatusOK {
		t.Fatalf("status = %q, want ok", v.Status)
	}
	if v.Message != "Last run completed in 6.0 minutes" {
		t.Errorf("message = %q", v.Message)
	}
}

func TestInferTornFinalLineIgnored(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	lines := []string{
		logLine(now.Add(-5*time.Minute), "backup.sh started"),
		logLine(now, "backup.sh completed"),
		"backup.sh completed 2026-08-31 12:0", // writer mid-line, no parseable timestamp
	}

	v := Infer(backupJob(), lines, now)
	if v.Status != models.StatusOK {
		t.Fatalf("status = %q, want ok (message: %q)", v.Status, v.Message)
	}
}

func TestInferIdempotent(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	lines := []string{
		logLine(now.Add(-5*time.Minute), "backup.sh started"),
		logLine(now, "backup.sh completed"),
	}

	first := Infer(backupJob(), lines, now)
	second := Infer(backupJob(), lines, now)
	if first != second {
		t.Errorf("verdicts differ: %+v vs %+v", first, second)
	}
}

func TestCheckJobLogsMissingFile(t *testing.T) {
	job := backupJob()
	job.LogFile = filepath.Join(t.TempDir(), "no-such.log")

	v := CheckJobLogs(job, time.Now())
	if v.Status != models.StatusError {
		t.Fatalf("status = %q, want error", v.Status)
	}
	if !strings.Contains(v.Message, job.LogFile) {
		t.Errorf("message %q does not mention path", v.Message)
	}
}

func TestCheckJobLogsReadsTail(t *testing.T) {
	now := time.Now()
	job := backupJob()
	job.LogFile = filepath.Join(t.TempDir(), "backup.log")

	var b strings.Builder
	// Old noise beyond the 100-line tail window
	for i := 0; i < 150; i++ {
		b.WriteString(logLine(now.Add(-26*time.Hour), "backup.sh started") + "\n")
	}
	b.WriteString(logLine(now.Add(-5*time.Minute), "backup.sh started") + "\n")
	b.WriteString(logLine(now, "backup.sh completed") + "\n")
	if err := os.WriteFile(job.LogFile, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	v := CheckJobLogs(job, now)
	if v.Status != models.StatusOK {
		t.Fatalf("status = %q, want ok (message: %q)", v.Status, v.Message)
	}
}
