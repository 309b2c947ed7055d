package models

// Row maps an original column header to the raw cell value for one record.
// Cell values arrive as strings from CSV/XLSX decoding but may be numeric or
// nil when a dataset comes from another source.
type Row map[string]any

// Dataset is the in-memory form of an uploaded tabular file.
// Header order is preserved from the source file; column detection
// tie-breaking depends on it.
type Dataset struct {
	Headers []string
	Rows    []Row
}

// HasHeader reports whether name is one of the dataset's column headers.
func (d *Dataset) HasHeader(name string) bool {
	for _, h := range d.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Preview returns up to n leading rows. The result is never nil so it
// marshals to a JSON array rather than null.
func (d *Dataset) Preview(n int) []Row {
	if n > len(d.Rows) {
		n = len(d.Rows)
	}
	preview := make([]Row, n)
	copy(preview, d.Rows[:n])
	return preview
}
