package config

import (
	"fmt"
	"os"

	"cronwatch/models"

	"gopkg.in/yaml.v3"
)

type jobsFile struct {
	Jobs []models.JobConfig `yaml:"jobs"`
}

// LoadJobs reads job definitions from a YAML file.
func LoadJobs(path string) ([]models.JobConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read jobs file: %w", err)
	}

	var f jobsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse jobs file: %w", err)
	}

	for _, j := range f.Jobs {
		if err := ValidateJob(j); err != nil {
			return nil, err
		}
	}

	return f.Jobs, nil
}

// ValidateJob rejects malformed job configs before any inference runs.
func ValidateJob(j models.JobConfig) error {
	if j.Name == "" {
		return fmt.Errorf("job name is required")
	}
	if j.Pattern == "" {
		return fmt.Errorf("job %q: pattern is required", j.Name)
	}
	if j.LogFile == "" {
		return fmt.Errorf("job %q: log_file is required", j.Name)
	}
	if j.MaxDuration <= 0 {
		return fmt.Errorf("job %q: max_duration must be positive", j.Name)
	}
	return nil
}

// DefaultJobs is the built-in job set used when no jobs file is
// configured and the tick payload carries none.
func DefaultJobs() []models.JobConfig {
	return []models.JobConfig{
		{
			Name:        "Backup Job",
			Pattern:     "backup",
			MaxDuration: 30,
			LogFile:     "/var/log/backup.log",
		},
		{
			Name:        "Cleanup Job",
			Pattern:     "cleanup",
			MaxDuration: 10,
			LogFile:     "/var/log/cleanup.log",
		},
	}
}
