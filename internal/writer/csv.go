package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/insightdelivered/financial-analytics/internal/models"
)

// CSVWriter renders a stored financial record back to CSV.
type CSVWriter struct {
	// IncludeMetadata prepends commented rows with the upload details and
	// the computed indicators.
	IncludeMetadata bool
}

// Write writes the record's dataset in CSV format to the given writer,
// preserving the original column order.
func (w *CSVWriter) Write(out io.Writer, rec *models.FinancialRecord) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeMetadata {
		writer.Write([]string{"# Filename", rec.Filename})
		if !rec.UploadDate.IsZero() {
			writer.Write([]string{"# Uploaded", rec.UploadDate.Format(time.RFC3339)})
		}
		writer.Write([]string{"# Revenus Totaux", formatAmount(rec.KPIs.RevenusTotaux)})
		writer.Write([]string{"# EBITDA", formatAmount(rec.KPIs.EBITDA)})
		writer.Write([]string{"# Resultat Net", formatAmount(rec.KPIs.ResultatNet)})
		writer.Write([]string{"# Free Cash Flow", formatAmount(rec.KPIs.FreeCashFlow)})
		writer.Write([]string{"# Marge Nette (%)", formatAmount(rec.KPIs.MargeNette)})
	}

	if err := writer.Write(rec.Headers); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rec.RawData {
		record := make([]string, len(rec.Headers))
		for i, h := range rec.Headers {
			record[i] = formatCell(row[h])
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

// formatCell renders a raw cell for CSV output. Strings pass through
// unchanged; numeric cells from XLSX or JSON sources are formatted compactly.
func formatCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return fmt.Sprint(c)
	}
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
