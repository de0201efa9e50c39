package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gosmd/internal/beamio"
	"github.com/spf13/cobra"
)

var (
	exportFile   string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Convert a beam file between text, JSON and xlsx",
	Long: `Convert a beam file to another input format. The output format
follows the extension of --output: .json, .xlsx, anything else is text.

Examples:
  gosmd export -f beam.txt -o beam.xlsx
  gosmd export -f beam.xlsx -o beam.json`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "Path to beam file [required]")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file [required]")
	exportCmd.MarkFlagRequired("file")
	exportCmd.MarkFlagRequired("output")
}

func runExport(cmd *cobra.Command, args []string) error {
	in, err := loadFile(exportFile)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(exportOutput)) {
	case ".json":
		var data []byte
		if data, err = json.MarshalIndent(in, "", "  "); err == nil {
			err = os.WriteFile(exportOutput, append(data, '\n'), 0644)
		}
	case ".xlsx":
		err = beamio.WriteWorkbook(exportOutput, in)
	default:
		err = saveText(exportOutput, in)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", exportOutput, err)
	}

	fmt.Printf("  Written: %s\n", exportOutput)
	return nil
}
