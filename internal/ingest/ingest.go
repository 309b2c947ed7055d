// Package ingest decodes uploaded tabular files into datasets.
package ingest

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/insightdelivered/financial-analytics/internal/models"
)

// Format identifies a supported upload format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// xlsxMagic is the ZIP local-file signature; XLSX files are ZIP archives.
var xlsxMagic = []byte{'P', 'K', 0x03, 0x04}

// DetectFormat picks the decoder for an uploaded file, by filename extension
// first and by content sniffing when the extension is missing or unknown.
func DetectFormat(filename string, data []byte) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	}

	if bytes.HasPrefix(data, xlsxMagic) {
		return FormatXLSX, nil
	}

	return "", fmt.Errorf("unsupported file type %q: expected a .csv or .xlsx file", filename)
}

// Decode turns uploaded file bytes into a dataset. The first row is the
// header row; remaining rows become header-keyed records. Cell values stay
// raw strings; numeric interpretation happens later, during analysis.
func Decode(filename string, data []byte) (*models.Dataset, error) {
	format, err := DetectFormat(filename, data)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatXLSX:
		return decodeXLSX(data)
	default:
		return decodeCSV(data)
	}
}

// buildDataset assembles a dataset from a header row plus data rows. Short
// rows are padded with blank cells; extra trailing cells are dropped.
func buildDataset(headers []string, records [][]string) *models.Dataset {
	rows := make([]models.Row, 0, len(records))
	for _, rec := range records {
		row := make(models.Row, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return &models.Dataset{Headers: headers, Rows: rows}
}
