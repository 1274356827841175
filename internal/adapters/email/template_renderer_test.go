package email

import (
	"testing"

	"lectureroomfinder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_RenderIngestReport(t *testing.T) {
	summary := &domain.IngestSummary{
		BatchID:       "batch-42",
		Rows:          120,
		Cancelled:     3,
		Records:       200,
		Duplicates:    5,
		DroppedTokens: 2,
		Inserted:      200,
		Buildings:     []int{303, 310},
		Warnings:      []string{"course 1-01: unrecognized schedule segment \"원격수업\""},
	}

	subject, html, text, err := NewTemplateRenderer().Render("ingest_report", summary)
	require.NoError(t, err)

	assert.Contains(t, subject, "batch-42")
	assert.NotContains(t, subject, "\n")
	assert.Contains(t, html, "batch-42")
	assert.Contains(t, html, "Row warnings (1)")
	assert.Contains(t, text, "Records inserted")
	assert.Contains(t, text, "303 310")
}

func TestTemplateRenderer_RenderUnknownTemplate(t *testing.T) {
	_, _, _, err := NewTemplateRenderer().Render("missing_template", nil)
	require.Error(t, err)
}
