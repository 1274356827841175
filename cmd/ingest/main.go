package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"lectureroomfinder/config"
	"lectureroomfinder/internal/adapters/email"
	"lectureroomfinder/internal/adapters/xlsx"
	"lectureroomfinder/internal/repository/postgres"
	"lectureroomfinder/internal/services"

	_ "github.com/lib/pq"
)

// Batch ingestion of a course-catalog workbook: parse every schedule cell,
// normalize to canonical lecture records, and replace the stored schedule of
// each building found in the batch. Must not run concurrently with itself.
func main() {
	var file string
	flag.StringVar(&file, "file", "", "path to the .xlsx course catalog (required)")
	flag.Parse()
	if file == "" {
		fmt.Fprintln(os.Stderr, "usage: ingest -file <catalog.xlsx>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger("ingest")

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Error("ensure schema", "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}

	ingester := services.NewIngestService(
		xlsx.NewCatalogReader(),
		postgres.NewLectureRepository(db),
		mailer,
		email.NewTemplateRenderer(),
		cfg.IngestReportTo,
		logger,
		5*time.Minute,
	)

	summary, err := ingester.IngestFile(ctx, file)
	if err != nil {
		logger.Error("ingest failed", "file", file, "err", err)
		os.Exit(1)
	}

	fmt.Printf("batch %s: %d rows (%d cancelled), %d records inserted into buildings %v, %d duplicates, %d roomless tokens, %d warnings\n",
		summary.BatchID, summary.Rows, summary.Cancelled, summary.Inserted, summary.Buildings, summary.Duplicates, summary.DroppedTokens, len(summary.Warnings))
	for _, w := range summary.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
}
