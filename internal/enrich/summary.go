package enrich

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mkarpov/linkvault/internal/config"
	"github.com/mkarpov/linkvault/internal/logger"
	"github.com/mkarpov/linkvault/internal/utils"
)

// Placeholder strings stored in place of a summary when the external service
// cannot provide one. Each failure mode yields its own fixed text.
const (
	// SummaryUnavailable is stored when the service answered 2xx but the
	// response shape carried no recognizable summary text.
	SummaryUnavailable = "No summary available."

	// SummaryFailed is stored when the service answered with a non-2xx status.
	SummaryFailed = "Failed to generate summary."

	// SummaryErrored is stored on a transport-level failure (network error,
	// timeout).
	SummaryErrored = "Error generating summary."
)

// summaryResponse mirrors the summarization service's JSON body. The service
// reports the text either under "content" or "summary".
type summaryResponse struct {
	Content string `json:"content"`
	Summary string `json:"summary"`
}

// summaryClient is the HTTP-backed implementation of [SummaryFetcher]. It
// requests a structured summary by appending the page URL to the service's
// base URL path.
type summaryClient struct {
	client  *utils.HTTPClient
	baseURL string
	logger  *logger.Logger
}

// NewSummaryFetcher constructs a [SummaryFetcher] calling the service at
// cfg.SummaryAPIURL, with each request bounded by cfg.FetchTimeout.
func NewSummaryFetcher(cfg config.Enrich, logger *logger.Logger) SummaryFetcher {
	return &summaryClient{
		client:  utils.NewHTTPClient(cfg.FetchTimeout),
		baseURL: strings.TrimRight(cfg.SummaryAPIURL, "/"),
		logger:  logger,
	}
}

// Summarize implements [SummaryFetcher]. Every code path yields a usable,
// non-empty string; no failure propagates to the caller.
func (s *summaryClient) Summarize(ctx context.Context, pageURL string) string {
	log := logger.FromContext(ctx)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(s.baseURL + "/" + pageURL)
	if err != nil {
		log.Warn().Err(err).Str("url", pageURL).Msg("summary request failed")
		return SummaryErrored
	}
	if resp.IsError() {
		log.Warn().Int("status", resp.StatusCode()).Str("url", pageURL).Msg("summary service returned non-2xx")
		return SummaryFailed
	}

	var payload summaryResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		log.Warn().Err(err).Str("url", pageURL).Msg("summary response is not valid JSON")
		return SummaryUnavailable
	}

	switch {
	case payload.Content != "":
		return payload.Content
	case payload.Summary != "":
		return payload.Summary
	default:
		return SummaryUnavailable
	}
}
