// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// reportFile is the per-run summary written next to the generated PDFs.
const reportFile = "render-report.yaml"

// Entry statuses recorded in the run report.
const (
	StatusRendered = "rendered"
	StatusFailed   = "failed"
)

// ReportEntry records the outcome of one pair in the run report.
type ReportEntry struct {
	ID         string `yaml:"id"`
	Output     string `yaml:"output"`
	Strategy   string `yaml:"strategy"`
	Status     string `yaml:"status"`
	Error      string `yaml:"error,omitempty"`
	RenderedAt string `yaml:"rendered_at"`
}

// WriteReport writes the batch outcome to {outputDir}/render-report.yaml,
// overwriting any previous report. The report is informational; callers treat
// a write failure as a warning, not a batch failure.
func WriteReport(outputDir string, result BatchResult) error {
	data, err := yaml.Marshal(result.Entries)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return os.WriteFile(filepath.Join(outputDir, reportFile), data, 0o644)
}
