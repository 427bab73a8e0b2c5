package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/quizpress/internal/pairs"
	"github.com/pdiddy/quizpress/internal/render"
	"github.com/pdiddy/quizpress/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render [source_dir] [question_id]",
	Short: "Render question/answer pairs into PDF documents",
	Long: `Render scans the source folder for question/answer image pairs and writes
one PDF per pair to the output folder. Pairs with no answer image are warned
about and skipped. When the flowed layout fails for a pair, the same pair is
retried with the fixed-coordinate layout.

With a question_id argument, only that pair is rendered; both files must
exist.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().Bool("simple", false, "use fixed-coordinate rendering only, skipping the flowed layout")
	renderCmd.Flags().Bool("no-fallback", false, "do not retry failed pairs with the fixed layout")
	renderCmd.Flags().String("output-dir", "", `directory for generated PDFs (default "output_pdfs")`)

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	simple, _ := cmd.Flags().GetBool("simple")
	noFallback, _ := cmd.Flags().GetBool("no-fallback")
	if simple && noFallback {
		return fmt.Errorf("--simple and --no-fallback are mutually exclusive")
	}

	policy := types.PolicyPrimaryThenFallback
	switch {
	case simple:
		policy = types.PolicyFallbackOnly
		fmt.Println("Using fixed-coordinate PDF generation")
	case noFallback:
		policy = types.PolicyPrimaryOnly
	}

	sourceDir := viper.GetString("render.source_dir")
	if len(args) > 0 {
		sourceDir = args[0]
	}
	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = viper.GetString("render.output_dir")
	}

	cfg := types.RenderConfig{
		SourceDir:    sourceDir,
		OutputDir:    outputDir,
		Policy:       policy,
		AnswerSuffix: viper.GetString("naming.answer_suffix"),
		ImageExt:     viper.GetString("naming.image_ext"),
	}

	if err := render.EnsureOutputDir(cfg.OutputDir); err != nil {
		return err
	}

	batch := render.NewBatch(cfg, types.DefaultLayout())

	if len(args) > 1 {
		id := args[1]
		if err := batch.RenderOne(id, os.Stdout); err != nil {
			return err
		}
		fmt.Printf("Created PDF for question %s\n", id)
		return nil
	}

	found, err := pairs.Discover(cfg.SourceDir, cfg.AnswerSuffix, cfg.ImageExt, os.Stdout)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		fmt.Println("No question-answer pairs found.")
		return nil
	}

	fmt.Printf("Found %d question-answer pairs\n", len(found))
	result := batch.RenderAll(found, os.Stdout)

	if err := render.WriteReport(cfg.OutputDir, result); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not write render report: %v\n", err)
	}

	abs, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		abs = cfg.OutputDir
	}
	fmt.Printf("Output folder: %s\n", abs)

	if result.HasFailures() {
		return fmt.Errorf("%d pair(s) failed to render", result.Failed)
	}
	return nil
}
