// Package retparser extracts settled payments from CNAB240 return (.RET)
// files. Only Segment A detail records carry settlement data; headers,
// trailers and Segment B lines are skipped.
package retparser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"cnab240-pix/internal/common"
	"cnab240-pix/internal/currencyutils"
	"cnab240-pix/internal/dateutils"
	"cnab240-pix/internal/layout"
	"cnab240-pix/internal/logging"
	"cnab240-pix/internal/models"
	"cnab240-pix/internal/parsererror"

	"golang.org/x/text/encoding/charmap"
)

// DecodeText decodes raw return-file bytes. Banks emit these files in either
// UTF-8 or a Latin-1 variant; invalid UTF-8 falls back to ISO 8859-1, which
// never fails.
func DecodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}

// Parse reads return-file text from r and returns one entry per Segment A
// detail record. Blank lines are dropped, short lines are right-padded to
// 240 characters, and lines of any other record type are silently skipped.
func Parse(r io.Reader) ([]models.ReturnEntry, error) {
	return ParseWithLogger(r, nil)
}

// ParseWithLogger is Parse with an explicit logger.
func ParseWithLogger(r io.Reader, logger logging.Logger) ([]models.ReturnEntry, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		logger.WithError(err).Error("Failed to read return file content")
		return nil, fmt.Errorf("error reading return file: %w", err)
	}

	text := DecodeText(data)
	var entries []models.ReturnEntry
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) < layout.RecordLen {
			line += strings.Repeat(" ", layout.RecordLen-len(line))
		}
		if layout.FieldRecordType.Slice(line) != "3" || layout.FieldSegment.Slice(line) != "A" {
			continue
		}
		entry := parseSegmentA(line)
		logger.Debug("Parsed Segment A record",
			logging.Field{Key: logging.FieldLine, Value: i + 1},
			logging.Field{Key: logging.FieldSequence, Value: entry.Sequencia})
		entries = append(entries, entry)
	}

	logger.Info("Parsed return file",
		logging.Field{Key: logging.FieldCount, Value: len(entries)})
	return entries, nil
}

// parseSegmentA extracts one entry from a full-width Segment A line.
func parseSegmentA(line string) models.ReturnEntry {
	effectiveDate := layout.FieldEffectiveDate.Trimmed(line)
	status := models.StatusUnpaid
	if effectiveDate != "" && !dateutils.IsAllZeros(effectiveDate) {
		status = models.StatusPaid
	}

	return models.ReturnEntry{
		Sequencia:     layout.FieldSequence.Trimmed(line),
		FavBanco:      layout.FieldFavBank.Trimmed(line),
		FavAgencia:    joinDV(layout.FieldFavBranch.Trimmed(line), layout.FieldFavBranchDV.Trimmed(line)),
		FavConta:      joinDV(layout.FieldFavAccount.Trimmed(line), layout.FieldFavAccountDV.Trimmed(line)),
		FavNome:       layout.FieldFavName.Trimmed(line),
		DocEmpresa:    layout.FieldCompanyDoc.Trimmed(line),
		DataPagamento: dateutils.DisplayDate(layout.FieldPaymentDate.Slice(line)),
		ValorNominal:  currencyutils.CentsString(layout.FieldNominalValue.Slice(line)),
		DocBanco:      layout.FieldBankDoc.Trimmed(line),
		DataEfetivada: dateutils.DisplayDate(layout.FieldEffectiveDate.Slice(line)),
		ValorEfetivo:  currencyutils.CentsString(layout.FieldEffectiveValue.Slice(line)),
		Ocorrencias:   layout.FieldOccurrences.Trimmed(line),
		Status:        status,
	}
}

// joinDV appends a check digit to an account or branch number.
func joinDV(number, dv string) string {
	if dv == "" {
		return number
	}
	return number + "-" + dv
}

// ParseFile parses a return file from disk.
func ParseFile(filePath string) ([]models.ReturnEntry, error) {
	return ParseFileWithLogger(filePath, nil)
}

// ParseFileWithLogger parses a return file from disk with an explicit logger.
func ParseFileWithLogger(filePath string, logger logging.Logger) ([]models.ReturnEntry, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Parsing CNAB240 return file",
		logging.Field{Key: logging.FieldFile, Value: filePath})

	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		logger.WithError(err).Error("Failed to open return file")
		return nil, fmt.Errorf("error opening return file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return ParseWithLogger(file, logger)
}

// ValidateFormat checks whether a file is structurally a CNAB240 file: the
// first non-blank line must be a file header record (type '0' at offset 7).
func ValidateFormat(filePath string) (bool, error) {
	data, err := os.ReadFile(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return false, fmt.Errorf("error reading file for validation: %w", err)
	}

	for _, line := range strings.Split(DecodeText(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) < layout.RecordLen {
			line += strings.Repeat(" ", layout.RecordLen-len(line))
		}
		return layout.FieldRecordType.Slice(line) == "0", nil
	}
	return false, &parsererror.InvalidFormatError{FilePath: filePath, Reason: "file has no records"}
}

// WriteToCSV writes parsed return entries to a CSV report.
func WriteToCSV(entries []models.ReturnEntry, csvFile string) error {
	if len(entries) == 0 {
		return fmt.Errorf("no entries to write")
	}
	return common.WriteEntriesToCSV(entries, csvFile)
}

// ConvertToCSV parses a return file and writes the CSV report in one step.
func ConvertToCSV(inputFile, outputFile string) error {
	entries, err := ParseFile(inputFile)
	if err != nil {
		return err
	}
	return WriteToCSV(entries, outputFile)
}

// BatchConvert converts every .ret file in a directory to a CSV report next
// to it in outputDir, returning the number of files converted.
func BatchConvert(inputDir, outputDir string) (int, error) {
	return BatchConvertWithLogger(inputDir, outputDir, nil)
}

// BatchConvertWithLogger converts all .ret files in a directory with logger.
func BatchConvertWithLogger(inputDir, outputDir string, logger logging.Logger) (int, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger.Info("Starting batch conversion of return files",
		logging.Field{Key: "inputDir", Value: inputDir},
		logging.Field{Key: "outputDir", Value: outputDir})

	inputInfo, err := os.Stat(inputDir)
	if err != nil {
		return 0, fmt.Errorf("error accessing input directory: %w", err)
	}
	if !inputInfo.IsDir() {
		return 0, fmt.Errorf("input path is not a directory: %s", inputDir)
	}

	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0750); err != nil {
			return 0, fmt.Errorf("error creating output directory: %w", err)
		}
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return 0, fmt.Errorf("error reading input directory: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".ret") {
			continue
		}

		inputFile := filepath.Join(inputDir, entry.Name())
		valid, err := ValidateFormat(inputFile)
		if err != nil || !valid {
			logger.Warn("Skipping file that is not a CNAB240 return file",
				logging.Field{Key: logging.FieldFile, Value: inputFile})
			continue
		}

		baseName := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		outputFile := filepath.Join(outputDir, baseName+".csv")

		if err := ConvertToCSV(inputFile, outputFile); err != nil {
			logger.WithError(err).Warn("Error converting file, skipping",
				logging.Field{Key: logging.FieldFile, Value: inputFile})
			continue
		}
		count++
	}

	logger.Info("Batch conversion completed",
		logging.Field{Key: logging.FieldCount, Value: count})
	return count, nil
}
