package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
)

// WriteReportPDF renders the inventory grid as a landscape A4 table
// and writes it to storagePath/inventory_report_{yyyymmdd_hhmmss}.pdf.
// Returns the path to the generated file.
func WriteReportPDF(grid [][]string, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("export: create storage dir: %w", err)
	}
	fileName := fmt.Sprintf("inventory_report_%s.pdf", time.Now().Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Festival Inventory Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	if len(grid) == 0 {
		return filePath, pdf.OutputFileAndClose(filePath)
	}

	colW := contentW / float64(len(grid[0]))
	rowH := 6.0

	// Header row
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetFillColor(230, 230, 230)
	for _, cell := range grid[0] {
		pdf.CellFormat(colW, rowH, cell, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(rowH)

	// Data rows
	pdf.SetFont("Helvetica", "", 7)
	for _, row := range grid[1:] {
		for _, cell := range row {
			pdf.CellFormat(colW, rowH, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(rowH)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("export: write pdf: %w", err)
	}
	return filePath, nil
}
