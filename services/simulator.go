package services

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"cronwatch/models"
)

// SimulatedJob fabricates realistic log lines for demos and tests. It
// appends a started line, sleeps for a random duration in its range,
// then appends a completed or failed line to the same file the
// inference engine reads.
type SimulatedJob struct {
	Name           string
	Pattern        string
	LogFile        string
	ExpectedOutput string
	MinDuration    time.Duration
	MaxDuration    time.Duration

	mu        sync.Mutex
	running   bool
	startedAt time.Time
}

func NewSimulatedJob(cfg models.JobConfig) *SimulatedJob {
	return &SimulatedJob{
		Name:           cfg.Name,
		Pattern:        cfg.Pattern,
		LogFile:        cfg.LogFile,
		ExpectedOutput: cfg.ExpectedOutput,
		MinDuration:    2 * time.Second,
		MaxDuration:    8 * time.Second,
	}
}

// Run executes one simulated pass synchronously.
func (j *SimulatedJob) Run() {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.startedAt = time.Now()
	j.mu.Unlock()

	j.appendLine(fmt.Sprintf("%s started", j.Pattern))

	span := j.MaxDuration - j.MinDuration
	sleep := j.MinDuration
	if span > 0 {
		sleep += time.Duration(rand.Int63n(int64(span)))
	}
	time.Sleep(sleep)

	j.mu.Lock()
	cancelled := !j.running
	j.running = false
	j.mu.Unlock()
	if cancelled {
		return
	}

	// Fail roughly one run in five to exercise the error paths.
	if rand.Intn(5) == 0 {
		j.appendLine(fmt.Sprintf("%s failed", j.Pattern))
		return
	}
	if j.ExpectedOutput != "" {
		j.appendLine(fmt.Sprintf("%s completed - %s", j.Pattern, j.ExpectedOutput))
		return
	}
	j.appendLine(fmt.Sprintf("%s completed", j.Pattern))
}

func (j *SimulatedJob) appendLine(msg string) {
	if dir := filepath.Dir(j.LogFile); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}

	f, err := os.OpenFile(j.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Printf("Simulated job %s: cannot write log: %v\n", j.Name, err)
		return
	}
	defer f.Close()

	fmt.Fprintf(f, "%s - %s\n", time.Now().Format("2006-01-02 15:04:05"), msg)
}

func (j *SimulatedJob) IsRunning() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}

// Runtime is minutes since the current run started, zero when idle.
func (j *SimulatedJob) Runtime() float64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	if !j.running {
		return 0
	}
	return time.Since(j.startedAt).Minutes()
}

// SimRegistry is the simulated active-job source. It replaces process
// inspection in demo deployments; never combined with the scanner.
type SimRegistry struct {
	mu   sync.Mutex
	jobs map[string]*SimulatedJob
}

func NewSimRegistry() *SimRegistry {
	return &SimRegistry{jobs: make(map[string]*SimulatedJob)}
}

// Setup registers a simulated job per config, keeping any existing
// entry so an in-flight run is not orphaned.
func (r *SimRegistry) Setup(jobs []models.JobConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cfg := range jobs {
		if _, ok := r.jobs[cfg.Name]; ok {
			continue
		}
		r.jobs[cfg.Name] = NewSimulatedJob(cfg)
	}
}

func (r *SimRegistry) Get(name string) (*SimulatedJob, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[name]
	return j, ok
}

// Start launches one simulated run in the background.
func (r *SimRegistry) Start(name string) error {
	j, ok := r.Get(name)
	if !ok {
		return fmt.Errorf("unknown simulated job: %s", name)
	}
	if j.IsRunning() {
		return fmt.Errorf("simulated job already running: %s", name)
	}
	go j.Run()
	return nil
}

// Stop cancels an in-flight run; the end line is never written, which
// is how real stuck jobs look in the logs.
func (r *SimRegistry) Stop(name string) error {
	j, ok := r.Get(name)
	if !ok {
		return fmt.Errorf("unknown simulated job: %s", name)
	}
	j.mu.Lock()
	j.running = false
	j.mu.Unlock()
	return nil
}

func (r *SimRegistry) IsActive(job models.JobConfig) bool {
	j, ok := r.Get(job.Name)
	return ok && j.IsRunning()
}

func (r *SimRegistry) ActiveJobs() []models.ActiveJob {
	r.mu.Lock()
	defer r.mu.Unlock()

	var active []models.ActiveJob
	for _, j := range r.jobs {
		if !j.IsRunning() {
			continue
		}
		active = append(active, models.ActiveJob{
			Name:    j.Name,
			Minutes: j.Runtime(),
		})
	}
	return active
}
