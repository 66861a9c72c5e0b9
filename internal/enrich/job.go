package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"knowyourreps-backend/internal/components/chrono"
	"knowyourreps-backend/internal/components/telemetry"
	"knowyourreps-backend/internal/directory"
)

const (
	report_job_snapshot = "job.snapshot"
	report_job_dataset  = "job.dataset"
)

// Snapshot is the standalone record of one fetch, written next to the dataset.
type Snapshot struct {
	GeneratedAt time.Time            `json:"generatedAt"`
	Count       int                  `json:"count"`
	Entries     []directory.Official `json:"entries"`
}

// SnapshotPath is where the snapshot of state is written for the dataset at
// datasetPath, ex. "public/california-mayors.json".
func SnapshotPath(datasetPath, state string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(state), "-"))
	return filepath.Join(filepath.Dir(datasetPath), fmt.Sprintf("%s-mayors.json", slug))
}

func WriteSnapshot(path string, snapshot Snapshot) error {
	if snapshot.Entries == nil {
		snapshot.Entries = []directory.Official{}
	}
	contents, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(contents, '\n'), 0644)
}

type Job struct {
	Source   MayorSource
	Clock    chrono.API
	Tel      telemetry.API
	Dataset  string
	State    string
	RegionID string
	Pause    time.Duration
	// DryRun fetches and merges without writing anything.
	DryRun bool
}

type Result struct {
	Mayors       []directory.Official
	Removed      int
	Total        int
	SnapshotPath string
	Written      bool
}

// Run fetches the mayors, writes the snapshot and rewrites the dataset with
// the state's local officials replaced.
func (j Job) Run(ctx context.Context) (Result, error) {
	if j.Clock == nil {
		j.Clock = chrono.StandardImpl{}
	}
	if j.State == "" {
		j.State = DefaultState
	}
	if j.RegionID == "" {
		j.RegionID = DefaultRegionID
	}
	tel := telemetry.NewScopedAPI("enrich", j.Tel)

	mayors, err := FetchMayors(ctx, j.Source, j.Clock, tel, j.State, j.RegionID, j.Pause)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Mayors:       mayors,
		SnapshotPath: SnapshotPath(j.Dataset, j.State),
	}
	if !j.DryRun {
		err = WriteSnapshot(result.SnapshotPath, Snapshot{
			GeneratedAt: j.Clock.Now().UTC(),
			Count:       len(mayors),
			Entries:     mayors,
		})
		if err != nil {
			tel.ReportBroken(report_job_snapshot, err, result.SnapshotPath)
			return result, fmt.Errorf("write snapshot: %w", err)
		}
	}

	existing, err := directory.ReadFile(j.Dataset)
	if err != nil {
		tel.ReportBroken(report_job_dataset, err, j.Dataset)
		return result, fmt.Errorf("read dataset: %w", err)
	}
	merged, removed := Merge(existing, mayors, j.State)
	result.Removed = removed
	result.Total = len(merged)

	if j.DryRun {
		return result, nil
	}
	err = directory.WriteFile(j.Dataset, merged)
	if err != nil {
		tel.ReportBroken(report_job_dataset, err, j.Dataset)
		return result, fmt.Errorf("write dataset: %w", err)
	}
	result.Written = true
	return result, nil
}
