// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns question/answer image pairs into PDF documents.
//
// Two strategies implement the Renderer interface: FlowedRenderer stacks
// content through the layout engine and is the preferred output, and
// FixedLayoutRenderer places every element at explicit coordinates and is
// kept as the robust fallback for inputs the flowed path cannot handle.
// Batch applies a RenderPolicy across discovered pairs.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/quizpress/internal/pairs"
	"github.com/pdiddy/quizpress/pkg/types"
)

// Renderer produces a single PDF document for one pair.
type Renderer interface {
	// Render writes the document for p to outPath. Implementations recover
	// per-image failures internally; a returned error means the document
	// itself could not be produced.
	Render(p pairs.Pair, outPath string) error
}

// Strategy names recorded in progress output and the run report.
const (
	strategyFlowed = "flowed"
	strategyFixed  = "fixed"
)

// BatchResult holds the outcome of a batch render run.
type BatchResult struct {
	Rendered int
	Failed   int
	Entries  []ReportEntry
}

// Total returns the total number of pairs processed.
func (r BatchResult) Total() int {
	return r.Rendered + r.Failed
}

// HasFailures reports whether any pairs failed both strategies.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Batch orchestrates rendering of pairs according to a policy.
type Batch struct {
	Primary  Renderer
	Fallback Renderer
	Config   types.RenderConfig
}

// NewBatch builds a Batch with the standard flowed/fixed strategy pairing.
func NewBatch(cfg types.RenderConfig, layout types.PageLayout) *Batch {
	return &Batch{
		Primary:  &FlowedRenderer{Layout: layout},
		Fallback: &FixedLayoutRenderer{Layout: layout},
		Config:   cfg,
	}
}

// EnsureOutputDir creates the output directory. Called once before any
// processing; rendering assumes the directory exists.
func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return nil
}

// OutputPath returns the document path for an id: {output_dir}/question_{id}.pdf.
func (b *Batch) OutputPath(id string) string {
	return filepath.Join(b.Config.OutputDir, "question_"+id+".pdf")
}

// RenderPair renders one pair under the configured policy, writing progress
// to w. A pair that fails the flowed strategy is retried with the fixed
// strategy unless the policy says otherwise.
func (b *Batch) RenderPair(p pairs.Pair, w io.Writer) ReportEntry {
	out := b.OutputPath(p.ID)
	entry := ReportEntry{
		ID:         p.ID,
		Output:     out,
		RenderedAt: time.Now().UTC().Format(time.RFC3339),
	}

	var err error
	switch b.Config.Policy {
	case types.PolicyFallbackOnly:
		entry.Strategy = strategyFixed
		err = b.Fallback.Render(p, out)
	case types.PolicyPrimaryOnly:
		entry.Strategy = strategyFlowed
		err = b.Primary.Render(p, out)
	default:
		entry.Strategy = strategyFlowed
		err = b.Primary.Render(p, out)
		if err != nil {
			fmt.Fprintf(w, "  flowed layout failed (%v), retrying with fixed layout\n", err)
			entry.Strategy = strategyFixed
			err = b.Fallback.Render(p, out)
		}
	}

	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", p.ID, err)
		entry.Status = StatusFailed
		entry.Error = err.Error()
		return entry
	}

	fmt.Fprintf(w, "created: %s\n", out)
	entry.Status = StatusRendered
	return entry
}

// RenderAll processes pairs in order, printing per-pair status to w and
// returning a summary. One bad pair never stops the batch.
func (b *Batch) RenderAll(ps []pairs.Pair, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range ps {
		fmt.Fprintf(w, "processing question %s...\n", p.ID)
		entry := b.RenderPair(p, w)
		if entry.Status == StatusRendered {
			result.Rendered++
		} else {
			result.Failed++
		}
		result.Entries = append(result.Entries, entry)
	}
	fmt.Fprintf(w, "\nBatch summary: %d/%d PDFs created\n", result.Rendered, result.Total())
	return result
}

// RenderOne renders the pair for an explicit id. Both files must already
// exist; unlike discovery, a missing file here is an immediate failure.
func (b *Batch) RenderOne(id string, w io.Writer) error {
	question := filepath.Join(b.Config.SourceDir, id+"."+b.Config.ImageExt)
	answer := filepath.Join(b.Config.SourceDir, id+b.Config.AnswerSuffix+"."+b.Config.ImageExt)

	if _, err := os.Stat(question); err != nil {
		return fmt.Errorf("question image not found: %s", question)
	}
	if _, err := os.Stat(answer); err != nil {
		return fmt.Errorf("answer image not found: %s", answer)
	}

	fmt.Fprintf(w, "processing question %s...\n", id)
	entry := b.RenderPair(pairs.Pair{ID: id, QuestionPath: question, AnswerPath: answer}, w)
	if entry.Status != StatusRendered {
		return fmt.Errorf("rendering question %s: %s", id, entry.Error)
	}
	return nil
}
