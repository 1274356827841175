package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lectureroomfinder/internal/domain"
	"lectureroomfinder/internal/schedule"

	"github.com/google/uuid"
)

type ingestService struct {
	reader         domain.CatalogReader
	repo           domain.LectureRepository
	mailer         domain.Mailer
	renderer       domain.EmailTemplateRenderer
	reportTo       string
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewIngestService wires the ingestion pipeline. mailer, renderer and
// reportTo are optional; when any is unset no report email is sent.
func NewIngestService(reader domain.CatalogReader, repo domain.LectureRepository, mailer domain.Mailer, renderer domain.EmailTemplateRenderer, reportTo string, logger *slog.Logger, timeout time.Duration) domain.IngestService {
	return &ingestService{
		reader:         reader,
		repo:           repo,
		mailer:         mailer,
		renderer:       renderer,
		reportTo:       reportTo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *ingestService) IngestFile(ctx context.Context, path string) (*domain.IngestSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rows, cancelled, err := s.reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	res := schedule.NormalizeRows(rows)
	buildings := schedule.Buildings(res.Records)

	if len(res.Records) > 0 {
		if err := s.repo.ReplaceSchedule(ctx, buildings, res.Records); err != nil {
			return nil, fmt.Errorf("replace schedule: %w", err)
		}
	}

	summary := &domain.IngestSummary{
		BatchID:       uuid.NewString(),
		Rows:          len(rows),
		Cancelled:     cancelled,
		Records:       len(res.Records),
		Duplicates:    res.Duplicates,
		DroppedTokens: res.DroppedTokens,
		Inserted:      len(res.Records),
		Buildings:     buildings,
		Warnings:      res.Warnings,
	}

	s.logger.Info("ingest finished",
		"batch_id", summary.BatchID,
		"rows", summary.Rows,
		"cancelled", summary.Cancelled,
		"inserted", summary.Inserted,
		"duplicates", summary.Duplicates,
		"dropped_tokens", summary.DroppedTokens,
		"warnings", len(summary.Warnings),
		"buildings", summary.Buildings,
	)
	for _, w := range summary.Warnings {
		s.logger.Warn("ingest row warning", "batch_id", summary.BatchID, "warning", w)
	}

	s.sendReport(summary)
	return summary, nil
}

// sendReport emails the batch summary when a mailer is configured. A report
// failure is logged, never returned: the batch itself already succeeded.
func (s *ingestService) sendReport(summary *domain.IngestSummary) {
	if s.mailer == nil || s.renderer == nil || s.reportTo == "" {
		return
	}
	subject, html, text, err := s.renderer.Render("ingest_report", summary)
	if err != nil {
		s.logger.Error("render ingest report", "batch_id", summary.BatchID, "err", err)
		return
	}
	if err := s.mailer.Send(s.reportTo, subject, html, text); err != nil {
		s.logger.Error("send ingest report", "batch_id", summary.BatchID, "err", err)
	}
}
