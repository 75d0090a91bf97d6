package enrich

import (
	"bytes"
	"context"

	"github.com/mkarpov/linkvault/internal/config"
	"github.com/mkarpov/linkvault/internal/logger"
	"github.com/mkarpov/linkvault/internal/utils"
	"github.com/mkarpov/linkvault/models"
)

// pageExtractor is the HTTP-backed implementation of [MetadataExtractor].
type pageExtractor struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewMetadataExtractor constructs a [MetadataExtractor] whose page fetches
// are bounded by cfg.FetchTimeout.
func NewMetadataExtractor(cfg config.Enrich, logger *logger.Logger) MetadataExtractor {
	return &pageExtractor{
		client: utils.NewHTTPClient(cfg.FetchTimeout),
		logger: logger,
	}
}

// Extract implements [MetadataExtractor]. Fetch failures, non-2xx responses,
// timeouts, and parse failures all degrade to zero-value metadata; nothing
// propagates to the caller.
func (e *pageExtractor) Extract(ctx context.Context, pageURL string) models.PageMetadata {
	log := logger.FromContext(ctx)

	resp, err := e.client.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		log.Warn().Err(err).Str("url", pageURL).Msg("page fetch failed, skipping metadata")
		return models.PageMetadata{}
	}
	if resp.IsError() {
		log.Warn().Int("status", resp.StatusCode()).Str("url", pageURL).Msg("page fetch returned non-2xx, skipping metadata")
		return models.PageMetadata{}
	}

	meta, err := ParseMetadata(pageURL, bytes.NewReader(resp.Body()))
	if err != nil {
		log.Warn().Err(err).Str("url", pageURL).Msg("metadata parse failed")
		return models.PageMetadata{}
	}

	return meta
}
