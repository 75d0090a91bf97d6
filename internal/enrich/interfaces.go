// Package enrich implements the best-effort enrichment calls performed
// during bookmark ingestion: fetching page metadata (title, favicon) and
// requesting a third-party summary.
//
// Nothing in this package ever returns an error to its caller. Every failure
// mode — network error, timeout, non-2xx status, unparseable body — degrades
// to empty fields or a placeholder string so that enrichment can never block
// persistence.
package enrich

import (
	"context"

	"github.com/mkarpov/linkvault/models"
)

// MetadataExtractor fetches a page and extracts its title and favicon URL.
type MetadataExtractor interface {
	// Extract returns the page's metadata, or zero-value metadata on any
	// fetch or parse failure.
	Extract(ctx context.Context, pageURL string) models.PageMetadata
}

// SummaryFetcher obtains a prose summary of a page from an external service.
type SummaryFetcher interface {
	// Summarize returns the summary text or a placeholder string. The result
	// is always non-empty and usable.
	Summarize(ctx context.Context, pageURL string) string
}
