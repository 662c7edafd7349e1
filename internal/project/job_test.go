package project

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/packwise/glasscut/internal/model"
)

func TestDefaultJobDir(t *testing.T) {
	dir, err := DefaultJobDir()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir == "" {
		t.Fatal("expected non-empty path")
	}
	if filepath.Base(dir) != ".glasscut" {
		t.Errorf("expected dir .glasscut, got %s", filepath.Base(dir))
	}
}

func TestSaveAndLoadJob(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "jobs", "kitchen.json")

	job := NewJob()
	job.Name = "Kitchen"
	job.Parts = []model.Part{model.NewPart("W1", 600, 400, 3)}
	job.Stocks = []model.StockSheet{model.NewStockSheet("Float 4mm", 3210, 2250, 5)}
	job.Settings.Gap = 4.0

	if err := Save(path, job); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("job file was not created")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(job, loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", job, loaded)
	}
}

func TestSaveJobWithSolution(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solved.json")

	job := NewJob()
	job.Parts = []model.Part{model.NewPart("A", 400, 300, 1)}
	job.Stocks = []model.StockSheet{model.NewStockSheet("S", 1000, 1000, 1)}
	job.Solution = &model.Solution{
		Sheets: []model.Sheet{
			{
				Stock: job.Stocks[0],
				Placements: []model.Placement{
					{Part: job.Parts[0], X: 0, Y: 0, Rotated: false},
				},
			},
		},
	}

	if err := Save(path, job); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Solution == nil {
		t.Fatal("expected solution to survive the round trip")
	}
	if len(loaded.Solution.Sheets) != 1 {
		t.Errorf("expected 1 sheet, got %d", len(loaded.Solution.Sheets))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed file")
	}
}
