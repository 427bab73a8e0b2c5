package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/quizpress/internal/sortfiles"
	"github.com/pdiddy/quizpress/pkg/types"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort a flat folder of images into questions and solutions",
	Long: `Sort moves image files out of the source folder: names ending in the answer
suffix (e.g. 1234s.gif) go to the solutions folder, other image files go to
the questions folder, and anything else is left untouched. Destination
folders are created if absent.`,
	Args: cobra.NoArgs,
	RunE: runSort,
}

func init() {
	sortCmd.Flags().String("source", "", `folder of unsorted images (default "unsorted")`)
	sortCmd.Flags().String("questions", "", `destination for question images (default "questions")`)
	sortCmd.Flags().String("solutions", "", `destination for answer images (default "solutions")`)

	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	stringOr := func(flag, key string) string {
		if v, _ := cmd.Flags().GetString(flag); v != "" {
			return v
		}
		return viper.GetString(key)
	}

	cfg := types.SortConfig{
		SourceDir:    stringOr("source", "sort.source_dir"),
		QuestionsDir: stringOr("questions", "sort.questions_dir"),
		SolutionsDir: stringOr("solutions", "sort.solutions_dir"),
		AnswerSuffix: viper.GetString("naming.answer_suffix"),
		ImageExt:     viper.GetString("naming.image_ext"),
	}

	if _, err := sortfiles.Sort(cfg, os.Stdout); err != nil {
		return fmt.Errorf("sorting %s: %w", cfg.SourceDir, err)
	}
	return nil
}
