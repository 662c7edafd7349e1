// Package project persists cut jobs as JSON files so a job can be prepared,
// optimized and revisited later.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/packwise/glasscut/internal/model"
)

// Job ties a cut list, the available stock and the settings together for
// save/load. Solution is filled in once the job has been optimized.
type Job struct {
	Name     string             `json:"name"`
	Parts    []model.Part       `json:"parts"`
	Stocks   []model.StockSheet `json:"stocks"`
	Settings model.Settings     `json:"settings"`
	Solution *model.Solution    `json:"solution,omitempty"`
}

func NewJob() Job {
	return Job{
		Name:     "Untitled",
		Parts:    []model.Part{},
		Stocks:   []model.StockSheet{},
		Settings: model.DefaultSettings(),
	}
}

// DefaultJobDir returns the default directory for job files, ~/.glasscut.
func DefaultJobDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".glasscut"), nil
}

// Save writes the job to the specified JSON file, creating parent
// directories if they do not exist.
func Save(path string, job Job) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create job directory: %w", err)
	}
	data, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write job file: %w", err)
	}
	return nil
}

// Load reads a job from the specified JSON file.
func Load(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("failed to read job file: %w", err)
	}
	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return Job{}, fmt.Errorf("failed to parse job file: %w", err)
	}
	return job, nil
}
