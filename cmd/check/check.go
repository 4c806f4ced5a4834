// Package check handles structural validation of CNAB240 files
package check

import (
	"strings"

	"cnab240-pix/cmd/root"
	"cnab240-pix/internal/fileutils"
	"cnab240-pix/internal/layout"
	"cnab240-pix/internal/retparser"

	"github.com/spf13/cobra"
)

// Cmd represents the check command
var Cmd = &cobra.Command{
	Use:   "check",
	Short: "Check the structure of a CNAB240 file",
	Long: `Check that a CNAB240 file opens with a file header record, closes with
a file trailer and that no record exceeds 240 characters.`,
	Run: checkFunc,
}

func checkFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	input := root.SharedFlags.Input
	if input == "" {
		logger.Fatal("Input file is required (--input)")
	}

	data, err := fileutils.ReadFile(input)
	if err != nil {
		logger.Fatalf("Error reading file: %v", err)
	}

	var records []string
	for _, line := range strings.Split(retparser.DecodeText(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, line)
	}

	if len(records) == 0 {
		logger.Fatal("File has no records")
	}

	problems := 0
	for i, rec := range records {
		if len(rec) > layout.RecordLen {
			root.Log.Warnf("Record %d is %d characters long (limit %d)", i+1, len(rec), layout.RecordLen)
			problems++
		}
	}

	first := layout.PadAlfa(records[0], layout.RecordLen)
	last := layout.PadAlfa(records[len(records)-1], layout.RecordLen)
	if layout.FieldRecordType.Slice(first) != "0" {
		root.Log.Warn("File does not open with a file header record")
		problems++
	}
	if layout.FieldRecordType.Slice(last) != "9" {
		root.Log.Warn("File does not close with a file trailer record")
		problems++
	}

	if problems > 0 {
		logger.Fatalf("Structure check failed with %d problem(s)", problems)
	}
	root.Log.Infof("Structure check passed: %d records", len(records))
}
