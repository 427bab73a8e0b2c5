// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/quizpress/internal/pairs"
	"github.com/pdiddy/quizpress/pkg/types"
)

// fakeRenderer implements Renderer for orchestration tests. It records calls
// and returns a canned error, writing a marker file on success.
type fakeRenderer struct {
	err   error
	calls int
}

func (f *fakeRenderer) Render(p pairs.Pair, outPath string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outPath, []byte("%PDF-fake"), 0o644)
}

func testConfig(outputDir string) types.RenderConfig {
	return types.RenderConfig{
		SourceDir:    "questions_folder",
		OutputDir:    outputDir,
		Policy:       types.PolicyPrimaryThenFallback,
		AnswerSuffix: "s",
		ImageExt:     "gif",
	}
}

func TestRenderPairPolicies(t *testing.T) {
	boom := errors.New("layout engine choked")

	tests := []struct {
		name          string
		policy        types.RenderPolicy
		primaryErr    error
		fallbackErr   error
		wantStatus    string
		wantStrategy  string
		wantPrimary   int
		wantFallback  int
	}{
		{
			name:         "primary succeeds, no fallback call",
			policy:       types.PolicyPrimaryThenFallback,
			wantStatus:   StatusRendered,
			wantStrategy: "flowed",
			wantPrimary:  1,
			wantFallback: 0,
		},
		{
			name:         "primary fails, fallback rescues",
			policy:       types.PolicyPrimaryThenFallback,
			primaryErr:   boom,
			wantStatus:   StatusRendered,
			wantStrategy: "fixed",
			wantPrimary:  1,
			wantFallback: 1,
		},
		{
			name:         "both strategies fail",
			policy:       types.PolicyPrimaryThenFallback,
			primaryErr:   boom,
			fallbackErr:  boom,
			wantStatus:   StatusFailed,
			wantStrategy: "fixed",
			wantPrimary:  1,
			wantFallback: 1,
		},
		{
			name:         "fallback-only never touches primary",
			policy:       types.PolicyFallbackOnly,
			primaryErr:   boom,
			wantStatus:   StatusRendered,
			wantStrategy: "fixed",
			wantPrimary:  0,
			wantFallback: 1,
		},
		{
			name:         "primary-only does not retry",
			policy:       types.PolicyPrimaryOnly,
			primaryErr:   boom,
			wantStatus:   StatusFailed,
			wantStrategy: "flowed",
			wantPrimary:  1,
			wantFallback: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t.TempDir())
			cfg.Policy = tt.policy
			primary := &fakeRenderer{err: tt.primaryErr}
			fallback := &fakeRenderer{err: tt.fallbackErr}
			b := &Batch{Primary: primary, Fallback: fallback, Config: cfg}

			var log bytes.Buffer
			entry := b.RenderPair(pairs.Pair{ID: "1234"}, &log)

			if entry.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", entry.Status, tt.wantStatus)
			}
			if entry.Strategy != tt.wantStrategy {
				t.Errorf("strategy = %q, want %q", entry.Strategy, tt.wantStrategy)
			}
			if primary.calls != tt.wantPrimary {
				t.Errorf("primary calls = %d, want %d", primary.calls, tt.wantPrimary)
			}
			if fallback.calls != tt.wantFallback {
				t.Errorf("fallback calls = %d, want %d", fallback.calls, tt.wantFallback)
			}
		})
	}
}

func TestRenderAll(t *testing.T) {
	cfg := testConfig(t.TempDir())

	// Primary fails for one id; fallback fails for the same id. The batch
	// must keep going and count that pair as failed.
	primary := &selectiveRenderer{failIDs: map[string]bool{"2222": true}}
	fallback := &selectiveRenderer{failIDs: map[string]bool{"2222": true}}
	b := &Batch{Primary: primary, Fallback: fallback, Config: cfg}

	ps := []pairs.Pair{{ID: "1111"}, {ID: "2222"}, {ID: "3333"}}
	var log bytes.Buffer
	result := b.RenderAll(ps, &log)

	if result.Rendered != 2 {
		t.Errorf("rendered = %d, want 2", result.Rendered)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}
	if result.Total() != 3 {
		t.Errorf("total = %d, want 3", result.Total())
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}
	if result.Rendered > result.Total() {
		t.Error("rendered count must never exceed total")
	}
	if !strings.Contains(log.String(), "Batch summary: 2/3") {
		t.Errorf("log %q missing batch summary", log.String())
	}

	// Successful pairs produced output files at the expected paths.
	for _, id := range []string{"1111", "3333"} {
		if _, err := os.Stat(b.OutputPath(id)); err != nil {
			t.Errorf("missing output for %s: %v", id, err)
		}
	}
}

func TestRenderOne(t *testing.T) {
	srcDir := t.TempDir()
	cfg := testConfig(t.TempDir())
	cfg.SourceDir = srcDir

	writeFile := func(name string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(srcDir, name), []byte("gif"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("both files present", func(t *testing.T) {
		writeFile("7777.gif")
		writeFile("7777s.gif")
		b := &Batch{Primary: &fakeRenderer{}, Fallback: &fakeRenderer{}, Config: cfg}
		var log bytes.Buffer
		if err := b.RenderOne("7777", &log); err != nil {
			t.Fatalf("RenderOne: %v", err)
		}
	})

	t.Run("missing answer fails immediately", func(t *testing.T) {
		writeFile("8888.gif")
		primary := &fakeRenderer{}
		b := &Batch{Primary: primary, Fallback: &fakeRenderer{}, Config: cfg}
		var log bytes.Buffer
		err := b.RenderOne("8888", &log)
		if err == nil {
			t.Fatal("expected error for missing answer image")
		}
		if !strings.Contains(err.Error(), "answer image not found") {
			t.Errorf("err = %v", err)
		}
		if primary.calls != 0 {
			t.Error("renderer should not run when a file is missing")
		}
	})
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	result := BatchResult{
		Rendered: 1,
		Failed:   1,
		Entries: []ReportEntry{
			{ID: "1111", Output: "out/question_1111.pdf", Strategy: "flowed", Status: StatusRendered, RenderedAt: "2026-08-23T10:00:00Z"},
			{ID: "2222", Output: "out/question_2222.pdf", Strategy: "fixed", Status: StatusFailed, Error: "boom", RenderedAt: "2026-08-23T10:00:01Z"},
		},
	}

	if err := WriteReport(dir, result); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "render-report.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	var got []ReportEntry
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshaling report: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2", len(got))
	}
	if got[0].ID != "1111" || got[0].Strategy != "flowed" {
		t.Errorf("first entry = %+v", got[0])
	}
	if got[1].Error != "boom" {
		t.Errorf("failed entry should carry the error, got %+v", got[1])
	}
}

// selectiveRenderer fails for configured ids and succeeds otherwise.
type selectiveRenderer struct {
	failIDs map[string]bool
}

func (s *selectiveRenderer) Render(p pairs.Pair, outPath string) error {
	if s.failIDs[p.ID] {
		return errors.New("render failed for " + p.ID)
	}
	return os.WriteFile(outPath, []byte("%PDF-fake"), 0o644)
}
