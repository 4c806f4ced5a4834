// Package rem handles remittance file generation commands
package rem

import (
	"cnab240-pix/cmd/root"
	"cnab240-pix/internal/rembuilder"

	"github.com/spf13/cobra"
)

var (
	companyFile string
	outputDir   string
	strict      bool
)

// Cmd represents the rem command
var Cmd = &cobra.Command{
	Use:   "rem",
	Short: "Generate a CNAB240 PIX remittance (.REM) file",
	Long: `Generate a CNAB240 PIX remittance file from a company profile (YAML)
and a transaction batch (CSV). The file is written under the bank's
CI240_001_NNNN.rem naming convention.`,
	Run: remFunc,
}

func init() {
	Cmd.Flags().StringVarP(&companyFile, "company", "c", "", "Company profile YAML file")
	Cmd.Flags().StringVarP(&outputDir, "dir", "d", "", "Output directory for the .REM file")
	Cmd.Flags().BoolVar(&strict, "strict", false, "Reject malformed payment amounts instead of encoding zero")
}

func remFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	root.Log.Info("Remittance generation command called")
	root.Log.Infof("Transactions file: %s", root.SharedFlags.Input)

	if root.SharedFlags.Input == "" {
		logger.Fatal("Transactions CSV is required (--input)")
	}

	if companyFile == "" {
		companyFile = root.Cfg.CNAB.CompanyFile
	}
	if outputDir == "" {
		outputDir = root.Cfg.CNAB.OutputDir
	}

	company, err := rembuilder.LoadCompany(companyFile)
	if err != nil {
		logger.Fatalf("Error loading company profile: %v", err)
	}

	transactions, err := rembuilder.ReadTransactionsCSV(root.SharedFlags.Input)
	if err != nil {
		logger.Fatalf("Error reading transactions: %v", err)
	}
	if len(transactions) == 0 {
		logger.Fatal("No transactions found in input file")
	}

	opts := rembuilder.Options{
		StrictAmounts: strict || root.Cfg.CNAB.StrictAmounts,
	}
	path, err := rembuilder.WriteFile(company, transactions, outputDir, opts)
	if err != nil {
		logger.Fatalf("Error generating remittance: %v", err)
	}

	root.Log.Infof("Remittance written to %s (%d transactions)", path, len(transactions))
}
