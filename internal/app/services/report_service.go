package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/uniaid/aidtrack/internal/pkg/logger"
)

// ReportService renders the aid-requests report the admin and
// head-administrator dashboards export, as plain text or PDF.
type ReportService struct {
	aid *AidService
}

// NewReportService creates a new report service instance.
func NewReportService(aid *AidService) *ReportService {
	return &ReportService{aid: aid}
}

// Text renders the full report: a summary header followed by one block per
// request.
func (s *ReportService) Text() string {
	var sb strings.Builder
	sb.WriteString("=== University Aid Requests Report ===\n\n")

	summary := s.aid.SummaryCounts()
	fmt.Fprintf(&sb, "Total Aid Requests: %d\n", summary.Total)
	fmt.Fprintf(&sb, "Accepted: %d\n", summary.Accepted)
	fmt.Fprintf(&sb, "Declined: %d\n", summary.Declined)
	fmt.Fprintf(&sb, "Pending: %d\n\n", summary.Pending)
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	for _, req := range s.aid.List() {
		fmt.Fprintf(&sb, "Request ID: %s\n", req.RequestID)
		fmt.Fprintf(&sb, "Username: %s\n", req.Username)
		fmt.Fprintf(&sb, "Aid Type: %s\n", req.AidType)
		fmt.Fprintf(&sb, "Status: %s\n", req.Status)
		fmt.Fprintf(&sb, "Description: %s\n", req.Description)
		if len(req.Documents) > 0 {
			fmt.Fprintf(&sb, "Documents: %s\n", strings.Join(req.Documents, ", "))
		} else {
			sb.WriteString("Documents: None\n")
		}
		sb.WriteString(strings.Repeat("-", 50) + "\n")
	}
	return sb.String()
}

// SaveText writes the report to a text file at the given path.
func (s *ReportService) SaveText(path string) error {
	if err := os.WriteFile(path, []byte(s.Text()), 0o644); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	logger.Info().Str("path", path).Msg("Report saved")
	return nil
}

// SavePDF writes the report to a PDF file at the given path, one report line
// per text line, paginating when a page fills up.
func (s *ReportService) SavePDF(path string) error {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	const (
		marginX    = 50.0
		marginY    = 50.0
		lineHeight = 15.0
	)
	_, pageHeight := pdf.GetPageSize()

	y := marginY
	for _, line := range strings.Split(s.Text(), "\n") {
		if y > pageHeight-marginY {
			pdf.AddPage()
			y = marginY
		}
		pdf.Text(marginX, y, line)
		y += lineHeight
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to save PDF report: %w", err)
	}
	logger.Info().Str("path", path).Msg("PDF report saved")
	return nil
}
