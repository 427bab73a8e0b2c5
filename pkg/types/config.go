// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration and layout types shared across the
// quizpress pipeline stages.
package types

// RenderPolicy selects how the two rendering strategies are applied to a pair.
type RenderPolicy string

const (
	// PolicyPrimaryThenFallback tries the flowed layout first and retries
	// the same pair with the fixed layout if it fails.
	PolicyPrimaryThenFallback RenderPolicy = "primary-then-fallback"

	// PolicyPrimaryOnly uses the flowed layout with no retry.
	PolicyPrimaryOnly RenderPolicy = "primary-only"

	// PolicyFallbackOnly skips the flowed layout entirely and renders every
	// pair with the fixed-coordinate layout.
	PolicyFallbackOnly RenderPolicy = "fallback-only"
)

// RenderConfig holds settings for the render stage.
type RenderConfig struct {
	// SourceDir is the directory scanned for question/answer image pairs.
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// OutputDir is the directory PDF documents are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Policy selects the rendering strategy orchestration.
	Policy RenderPolicy `json:"policy" yaml:"policy"`

	// AnswerSuffix is the filename-stem suffix marking answer images
	// (question "1234.gif" pairs with answer "1234s.gif").
	AnswerSuffix string `json:"answer_suffix" yaml:"answer_suffix"`

	// ImageExt is the image file extension, without the dot.
	ImageExt string `json:"image_ext" yaml:"image_ext"`
}

// SortConfig holds settings for the sort stage.
type SortConfig struct {
	// SourceDir is the flat directory of unsorted image files.
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// QuestionsDir receives question images.
	QuestionsDir string `json:"questions_dir" yaml:"questions_dir"`

	// SolutionsDir receives answer images.
	SolutionsDir string `json:"solutions_dir" yaml:"solutions_dir"`

	// AnswerSuffix and ImageExt follow the same naming convention as
	// RenderConfig.
	AnswerSuffix string `json:"answer_suffix" yaml:"answer_suffix"`
	ImageExt     string `json:"image_ext" yaml:"image_ext"`
}

// Page geometry in PostScript points.
const (
	// Centimeter is one centimeter expressed in points.
	Centimeter = 28.3464567

	// PageWidthA4 and PageHeightA4 are the A4 page dimensions in points.
	PageWidthA4  = 595.28
	PageHeightA4 = 841.89
)

// PageLayout describes the page geometry used by both rendering strategies.
type PageLayout struct {
	// Margin is the page margin on all four sides, in points.
	Margin float64 `json:"margin" yaml:"margin"`
}

// DefaultLayout returns the standard A4 layout with a 2 cm margin.
func DefaultLayout() PageLayout {
	return PageLayout{Margin: 2 * Centimeter}
}

// ContentWidth returns the usable page width inside the margins.
func (l PageLayout) ContentWidth() float64 {
	return PageWidthA4 - 2*l.Margin
}

// ContentHeight returns the usable page height inside the margins.
func (l PageLayout) ContentHeight() float64 {
	return PageHeightA4 - 2*l.Margin
}

// HalfPageBox returns the maximum width and height of an image box sized to
// roughly half the content area, leaving room for headings and the separator.
func (l PageLayout) HalfPageBox() (maxWidth, maxHeight float64) {
	return l.ContentWidth() - 2*Centimeter, (l.ContentHeight() - 4*Centimeter) / 2
}
