package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var extractTextCmd = &cobra.Command{
	Use:   "extract-text <file>",
	Short: "Extract the fields of a single page",
	Long: `Run one page through extraction and normalisation and print the
resulting record, field by field. Use "-" to read the page from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtractText,
}

func init() {
	rootCmd.AddCommand(extractTextCmd)
}

func runExtractText(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	name, content, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	rec, fieldErrs, err := extractionService.ExtractText(cmd.Context(), name, string(content))
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	width := 0
	for _, field := range rec.Fields() {
		width = max(width, len([]rune(field)))
	}
	for _, field := range rec.Fields() {
		v, _ := rec.Get(field)
		pad := width - len([]rune(field))
		cmd.Printf("%s:%*s %s\n", field, pad, "", v.String())
	}
	for _, fe := range fieldErrs {
		cmd.Printf("! %v\n", fe)
	}
	return nil
}

func readInput(cmd *cobra.Command, path string) (string, []byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("reading stdin: %w", err)
		}
		return "stdin", data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading page: %w", err)
	}
	return filepath.Base(path), data, nil
}
