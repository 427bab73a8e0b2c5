// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the quizpress CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the quizpress CLI.
var rootCmd = &cobra.Command{
	Use:   "quizpress",
	Short: "Turn question/answer image pairs into PDF documents",
	Long: `quizpress converts a folder of paired question and answer images into PDF
documents, one document per pair. Pairs share an identifier: the question
image is named {id}.gif and its answer {id}s.gif.

The render subcommand discovers pairs and produces output_pdfs/question_{id}.pdf
for each one. The sort subcommand redistributes a flat folder of images into
questions/ and solutions/ directories using the same naming convention.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./quizpress.yaml or ~/.config/quizpress/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("quizpress")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "quizpress"))
		}
	}

	viper.SetDefault("render.source_dir", "questions_folder")
	viper.SetDefault("render.output_dir", "output_pdfs")
	viper.SetDefault("sort.source_dir", "unsorted")
	viper.SetDefault("sort.questions_dir", "questions")
	viper.SetDefault("sort.solutions_dir", "solutions")
	viper.SetDefault("naming.answer_suffix", "s")
	viper.SetDefault("naming.image_ext", "gif")

	viper.SetEnvPrefix("QUIZPRESS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
