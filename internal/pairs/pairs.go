// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pairs discovers question/answer image pairs in a source folder.
//
// A question image is named "{id}.{ext}" and its answer "{id}{suffix}.{ext}".
// A pair is valid only when both files exist; questions with no matching
// answer are reported and skipped.
package pairs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Pair holds the identifier and file paths of one question/answer pair.
type Pair struct {
	// ID is the shared identifier, derived from the question filename stem.
	ID string

	// QuestionPath and AnswerPath are the image files on disk.
	QuestionPath string
	AnswerPath   string
}

// Discover scans dir (non-recursively) for question/answer pairs using the
// given answer suffix and image extension. Warnings for unpaired questions
// and a missing source directory are written to w; a missing directory is
// not an error, it simply yields no pairs. Results are sorted by ID.
func Discover(dir, suffix, ext string, w io.Writer) ([]Pair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(w, "error: questions folder %q not found\n", dir)
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	dotExt := "." + ext
	var pairs []Pair
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, dotExt) {
			continue
		}
		stem := strings.TrimSuffix(name, dotExt)

		// Answer images are discovered through their question, never on
		// their own.
		if strings.HasSuffix(stem, suffix) {
			continue
		}

		answer := filepath.Join(dir, stem+suffix+dotExt)
		if _, err := os.Stat(answer); err != nil {
			fmt.Fprintf(w, "warning: no answer found for question %s\n", stem)
			continue
		}

		pairs = append(pairs, Pair{
			ID:           stem,
			QuestionPath: filepath.Join(dir, name),
			AnswerPath:   answer,
		})
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].ID < pairs[j].ID })
	return pairs, nil
}
