// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sortfiles redistributes a flat folder of image files into questions
// and solutions directories based on the answer-suffix naming convention.
package sortfiles

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/quizpress/pkg/types"
)

// Result holds the outcome of one sort run.
type Result struct {
	Questions int
	Solutions int
	Skipped   int
}

// Total returns the number of entries examined.
func (r Result) Total() int {
	return r.Questions + r.Solutions + r.Skipped
}

// Sort moves image files out of cfg.SourceDir: names ending in the answer
// suffix go to cfg.SolutionsDir, other image files go to cfg.QuestionsDir,
// and everything else stays put. Destination directories are created if
// absent. Files are moved, not copied; a same-named file at the destination
// is overwritten (platform rename semantics). Per-file move failures are
// reported to w and counted as skipped; they do not stop the run.
func Sort(cfg types.SortConfig, w io.Writer) (Result, error) {
	var result Result

	for _, dir := range []string{cfg.QuestionsDir, cfg.SolutionsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return result, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	entries, err := os.ReadDir(cfg.SourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(w, "source folder %q not found, nothing to sort\n", cfg.SourceDir)
			return result, nil
		}
		return result, fmt.Errorf("reading %s: %w", cfg.SourceDir, err)
	}

	solutionSuffix := cfg.AnswerSuffix + "." + cfg.ImageExt
	imageSuffix := "." + cfg.ImageExt

	for _, entry := range entries {
		if entry.IsDir() {
			result.Skipped++
			continue
		}
		name := entry.Name()

		var dest string
		switch {
		case strings.HasSuffix(name, solutionSuffix):
			dest = cfg.SolutionsDir
		case strings.HasSuffix(name, imageSuffix):
			dest = cfg.QuestionsDir
		default:
			result.Skipped++
			continue
		}

		src := filepath.Join(cfg.SourceDir, name)
		dst := filepath.Join(dest, name)
		if err := os.Rename(src, dst); err != nil {
			fmt.Fprintf(w, "warning: could not move %s: %v\n", name, err)
			result.Skipped++
			continue
		}

		fmt.Fprintf(w, "moved: %s -> %s\n", name, dest)
		if dest == cfg.SolutionsDir {
			result.Solutions++
		} else {
			result.Questions++
		}
	}

	fmt.Fprintf(w, "\nSort summary: %d questions, %d solutions, %d skipped\n",
		result.Questions, result.Solutions, result.Skipped)
	return result, nil
}
