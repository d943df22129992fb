/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/valpere/llm-api/internal/config"
)

var (
	inputFile  string
	outputFile string
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text from English to Tamil once",
	Long: `Translate a single piece of text with the same provider the API uses.

The text is taken from the argument, from --input, or from stdin, in that
order. The result is written to --output or to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputFile != "" && inputFile == outputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		text, err := readInput(args, inputFile, cmd.InOrStdin())
		if err != nil {
			return err
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := cmd.Context()

		tr, closeTranslator, err := buildTranslator(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeTranslator()

		translated, err := tr.Translate(ctx, text)
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}

		if outputFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), translated)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(outputFile, []byte(translated), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Translated with %s -> %s\n", tr.Name(), outputFile)
		return nil
	},
}

func readInput(args []string, path string, stdin io.Reader) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for the translation (default: stdout)")
}
