package ingest

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     []byte
		want     Format
		wantErr  bool
	}{
		{"csv extension", "report.csv", []byte("a,b\n1,2\n"), FormatCSV, false},
		{"uppercase extension", "REPORT.CSV", []byte("a,b\n"), FormatCSV, false},
		{"xlsx extension", "report.xlsx", nil, FormatXLSX, false},
		{"zip magic without extension", "upload", []byte{'P', 'K', 0x03, 0x04, 0x14}, FormatXLSX, false},
		{"txt file rejected", "notes.txt", []byte("hello"), "", true},
		{"pdf rejected", "statement.pdf", []byte("%PDF-1.4"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.filename, tt.data)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeCSV(t *testing.T) {
	csvData := []byte("Date,Revenus,Charges\n2024-01,100000,60000\n2024-02,120000,70000\n")

	ds, err := Decode("data.csv", csvData)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantHeaders := []string{"Date", "Revenus", "Charges"}
	if len(ds.Headers) != len(wantHeaders) {
		t.Fatalf("headers = %v, want %v", ds.Headers, wantHeaders)
	}
	for i, h := range wantHeaders {
		if ds.Headers[i] != h {
			t.Errorf("header[%d] = %q, want %q", i, ds.Headers[i], h)
		}
	}

	if len(ds.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(ds.Rows))
	}
	if ds.Rows[0]["Revenus"] != "100000" {
		t.Errorf("row 0 Revenus = %v, want 100000", ds.Rows[0]["Revenus"])
	}
	if ds.Rows[1]["Charges"] != "70000" {
		t.Errorf("row 1 Charges = %v, want 70000", ds.Rows[1]["Charges"])
	}
}

func TestDecodeCSVStripsBOM(t *testing.T) {
	csvData := []byte("\ufeffDate,Revenus\n2024-01,100\n")

	ds, err := Decode("data.csv", csvData)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Headers[0] != "Date" {
		t.Errorf("first header = %q, want %q", ds.Headers[0], "Date")
	}
}

func TestDecodeCSVRaggedRows(t *testing.T) {
	csvData := []byte("A,B,C\n1,2\n4,5,6,7\n")

	ds, err := Decode("data.csv", csvData)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Rows[0]["C"] != "" {
		t.Errorf("short row should pad C with blank, got %v", ds.Rows[0]["C"])
	}
	if ds.Rows[1]["C"] != "6" {
		t.Errorf("row 1 C = %v, want 6", ds.Rows[1]["C"])
	}
}

func TestDecodeCSVEmpty(t *testing.T) {
	if _, err := Decode("data.csv", nil); err == nil {
		t.Error("expected error for empty CSV")
	}
}

func TestDecodeXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := [][]any{
		{"Date", "Revenus", "Charges"},
		{"2024-01", 100000, 60000},
		{"2024-02", 120000, 70000},
	}
	for i, row := range cells {
		addr, err := excelize.JoinCellName("A", i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, addr, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	ds, err := Decode("data.xlsx", buf.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Headers) != 3 || ds.Headers[1] != "Revenus" {
		t.Fatalf("headers = %v", ds.Headers)
	}
	if len(ds.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(ds.Rows))
	}
	if ds.Rows[0]["Revenus"] != "100000" {
		t.Errorf("row 0 Revenus = %v, want %q", ds.Rows[0]["Revenus"], "100000")
	}
}

func TestDecodeXLSXGarbage(t *testing.T) {
	if _, err := Decode("data.xlsx", []byte("not a zip archive")); err == nil {
		t.Error("expected error for non-XLSX bytes")
	}
}
