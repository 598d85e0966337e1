package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func TestToCSV(t *testing.T) {
	headers := []string{"Product Name", "SKU", "Quantity"}
	rows := [][]string{
		{"Laptop", "SKU-001", "5"},
		{"Mouse", "SKU-002", "0"},
	}

	got := ToCSV(headers, rows)
	want := "Product Name,SKU,Quantity\n" +
		`"Laptop","SKU-001","5"` + "\n" +
		`"Mouse","SKU-002","0"`
	if got != want {
		t.Errorf("ToCSV() = %q, want %q", got, want)
	}
}

func TestToCSVHeaderUnquoted(t *testing.T) {
	// Header cells are joined verbatim, only data fields get quoted
	got := ToCSV([]string{"Name", "Total Value"}, [][]string{{"Acme", "20"}})
	lines := strings.Split(got, "\n")
	if lines[0] != "Name,Total Value" {
		t.Errorf("header line = %q, want %q", lines[0], "Name,Total Value")
	}
	if lines[1] != `"Acme","20"` {
		t.Errorf("data line = %q, want %q", lines[1], `"Acme","20"`)
	}
}

func TestToCSVQuoteEscaping(t *testing.T) {
	headers := []string{"Name"}
	rows := [][]string{{`He said "hi"`}}

	got := ToCSV(headers, rows)
	want := "Name\n" + `"He said ""hi"""`
	if got != want {
		t.Errorf("ToCSV() = %q, want %q", got, want)
	}
}

func TestToCSVEmptyRows(t *testing.T) {
	headers := []string{"Name", "Value"}
	if got := ToCSV(headers, nil); got != "" {
		t.Errorf("ToCSV with no rows = %q, want empty string", got)
	}
	if got := ToCSV(headers, [][]string{}); got != "" {
		t.Errorf("ToCSV with empty rows = %q, want empty string", got)
	}
}

func TestToCSVCommaInField(t *testing.T) {
	headers := []string{"Name"}
	rows := [][]string{{"Bolts, M6"}}

	got := ToCSV(headers, rows)
	// Commas are safe because every field is quoted
	if !strings.Contains(got, `"Bolts, M6"`) {
		t.Errorf("ToCSV() = %q, expected quoted field containing comma", got)
	}
}

func TestToXLSX(t *testing.T) {
	headers := []string{"Category", "Product Count", "Total Value"}
	rows := [][]string{
		{"Electronics", "2", "2200"},
		{"Office", "1", "300"},
	}

	data, err := ToXLSX(headers, rows)
	if err != nil {
		t.Fatalf("ToXLSX() error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Failed to open generated workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	cells, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("GetRows() error: %v", err)
	}
	if len(cells) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(cells))
	}
	if cells[0][0] != "Category" || cells[0][2] != "Total Value" {
		t.Errorf("header row = %v", cells[0])
	}
	if cells[1][0] != "Electronics" || cells[1][1] != "2" {
		t.Errorf("data row 1 = %v", cells[1])
	}
	if cells[2][2] != "300" {
		t.Errorf("data row 2 = %v", cells[2])
	}
}

func TestReportFilename(t *testing.T) {
	r := &Report{Name: "inventory"}
	if got := r.Filename(FormatCSV); got != "inventory_report.csv" {
		t.Errorf("Filename(csv) = %q", got)
	}
	if got := r.Filename(FormatXLSX); got != "inventory_report.xlsx" {
		t.Errorf("Filename(xlsx) = %q", got)
	}
}

func TestArchiveSkippedWithoutClient(t *testing.T) {
	svc := &ExportService{logger: zap.NewNop()}
	if err := svc.archive(context.Background(), "inventory_report.csv", []byte("x"), "text/csv"); err != nil {
		t.Errorf("Expected nil error without a configured client, got %v", err)
	}
}

func TestArchiveReportsUnreachableEndpoint(t *testing.T) {
	client, err := minio.New("127.0.0.1:1", &minio.Options{
		Creds:  credentials.NewStaticV4("test", "test", ""),
		Secure: false,
	})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	svc := &ExportService{minioClient: client, bucket: "reports", logger: zap.NewNop()}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := svc.archive(ctx, "inventory_report.csv", []byte("x"), "text/csv"); err == nil {
		t.Error("Expected error for unreachable archive endpoint")
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{20, "20"},
		{10.5, "10.5"},
		{0, "0"},
		{1234.56, "1234.56"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.in); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
