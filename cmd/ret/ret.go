// Package ret handles return file parsing commands
package ret

import (
	"cnab240-pix/cmd/root"
	"cnab240-pix/internal/fileutils"
	"cnab240-pix/internal/retparser"

	"github.com/spf13/cobra"
)

// Cmd represents the ret command
var Cmd = &cobra.Command{
	Use:   "ret",
	Short: "Parse a CNAB240 return (.RET) file to CSV",
	Long: `Parse a bank return file and write a CSV report with one row per
settled or rejected payment. When --input is a directory, every .ret file
inside it is converted.`,
	Run: retFunc,
}

func retFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	root.Log.Info("Return file parse command called")
	root.Log.Infof("Input: %s", root.SharedFlags.Input)
	root.Log.Infof("Output: %s", root.SharedFlags.Output)

	input := root.SharedFlags.Input
	output := root.SharedFlags.Output
	if input == "" {
		logger.Fatal("Input file is required (--input)")
	}

	if fileutils.DirectoryExists(input) {
		if output == "" {
			output = input
		}
		count, err := retparser.BatchConvertWithLogger(input, output, logger)
		if err != nil {
			logger.Fatalf("Error during batch conversion: %v", err)
		}
		root.Log.Infof("Batch conversion completed successfully! Converted %d files.", count)
		return
	}

	if output == "" {
		logger.Fatal("Output CSV is required (--output)")
	}

	if root.SharedFlags.Validate {
		valid, err := retparser.ValidateFormat(input)
		if err != nil {
			logger.Fatalf("Error validating return file: %v", err)
		}
		if !valid {
			logger.Fatal("The file is not a CNAB240 return file")
		}
		root.Log.Info("Validation successful.")
	}

	if err := retparser.ConvertToCSV(input, output); err != nil {
		logger.Fatalf("Error converting return file: %v", err)
	}
	root.Log.Info("Return file conversion completed successfully!")
}
