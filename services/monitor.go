package services

import (
	"fmt"
	"sync"
	"time"

	"cronwatch/models"
)

// ActiveJobSource reports which jobs currently appear active. Two
// implementations exist: the process-table scanner and the simulated
// job registry. Callers pick one per deployment.
type ActiveJobSource interface {
	IsActive(job models.JobConfig) bool
	ActiveJobs() []models.ActiveJob
}

// Monitor runs batch checks and caches the latest results for the
// status endpoint. The cache is not authoritative; it is overwritten
// on every pass.
type Monitor struct {
	mu          sync.Mutex
	lastResults []models.JobResult
	source      ActiveJobSource
}

func NewMonitor(source ActiveJobSource) *Monitor {
	return &Monitor{source: source}
}

// Check applies log inference to each job independently. One failing
// job never aborts the batch; order is preserved. Running is resolved
// from src separately from the log verdict.
func (m *Monitor) Check(jobs []models.JobConfig, src ActiveJobSource) []models.JobResult {
	now := time.Now()
	results := make([]models.JobResult, 0, len(jobs))

	for _, job := range jobs {
		verdict := CheckJobLogs(job, now)
		results = append(results, models.JobResult{
			Name:    job.Name,
			Status:  verdict.Status,
			Message: verdict.Message,
			Running: src.IsActive(job),
		})
		fmt.Printf("Job: %s - %s: %s\n", job.Name, verdict.Status, verdict.Message)
	}

	m.mu.Lock()
	m.lastResults = results
	m.source = src
	m.mu.Unlock()

	return results
}

func (m *Monitor) LastResults() []models.JobResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastResults == nil {
		return []models.JobResult{}
	}
	out := make([]models.JobResult, len(m.lastResults))
	copy(out, m.lastResults)
	return out
}

// Source returns the active-job source used by the most recent check.
func (m *Monitor) Source() ActiveJobSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.source
}
