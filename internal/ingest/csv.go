package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/insightdelivered/financial-analytics/internal/models"
)

func decodeCSV(data []byte) (*models.Dataset, error) {
	r := csv.NewReader(bytes.NewReader(data))
	// Tolerate ragged rows; missing cells become blanks downstream.
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("empty CSV: no header row")
	}

	headers := records[0]
	if len(headers) > 0 {
		// Excel exports often prefix the first header with a UTF-8 BOM.
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}

	return buildDataset(headers, records[1:]), nil
}
