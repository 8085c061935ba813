package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/uniaid/aidtrack/internal/bootstrap"
	"github.com/uniaid/aidtrack/internal/pkg/logger"
)

func main() {
	configPath := flag.String("config", filepath.Join("configs", "config.yaml"), "path to configuration file")
	reportText := flag.String("report", "", "write the aid-requests report to this text file and exit")
	reportPDF := flag.String("report-pdf", "", "write the aid-requests report to this PDF file and exit")
	flag.Parse()

	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	app, err := bootstrap.Setup(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize application")
		os.Exit(1)
	}

	if *reportText != "" {
		if err := app.Reports.SaveText(*reportText); err != nil {
			logger.Error().Err(err).Msg("Failed to write report")
			os.Exit(1)
		}
	}
	if *reportPDF != "" {
		if err := app.Reports.SavePDF(*reportPDF); err != nil {
			logger.Error().Err(err).Msg("Failed to write PDF report")
			os.Exit(1)
		}
	}

	summary := app.Aid.SummaryCounts()
	fmt.Printf("Aid requests: %d total (%d pending, %d accepted, %d declined)\n",
		summary.Total, summary.Pending, summary.Accepted, summary.Declined)
}
