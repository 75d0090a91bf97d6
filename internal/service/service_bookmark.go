package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/mkarpov/linkvault/internal/enrich"
	"github.com/mkarpov/linkvault/internal/logger"
	"github.com/mkarpov/linkvault/internal/store"
	"github.com/mkarpov/linkvault/models"
)

// bookmarkService is the concrete implementation of BookmarkService.
// It enriches submitted URLs with page metadata and a generated summary and
// delegates persistence to a BookmarkRepository.
type bookmarkService struct {
	// bookmarkRepository is the data-access layer for bookmark records.
	bookmarkRepository store.BookmarkRepository

	// metadata extracts title and favicon from the bookmarked page.
	metadata enrich.MetadataExtractor

	// summary produces a text summary of the bookmarked page.
	summary enrich.SummaryFetcher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewBookmarkService constructs a BookmarkService backed by the given
// repository and enrichment components.
func NewBookmarkService(bookmarkRepository store.BookmarkRepository, metadata enrich.MetadataExtractor, summary enrich.SummaryFetcher, logger *logger.Logger) BookmarkService {
	return &bookmarkService{
		bookmarkRepository: bookmarkRepository,
		metadata:           metadata,
		summary:            summary,
		logger:             logger,
	}
}

// AddBookmark saves a new bookmark for the authenticated user.
//
// The URL is validated for presence first; enrichment runs only for non-empty
// URLs. Metadata extraction and summary generation run concurrently, each
// degrading independently: a failed extraction yields empty title/favicon, a
// failed summary yields a placeholder string. Enrichment never fails the save.
//
// Returns the persisted bookmark (with server-assigned ID and CreatedAt) or:
//   - ErrEmptyURL if rawURL is empty.
//   - A wrapped storage error if the insert fails.
func (b *bookmarkService) AddBookmark(ctx context.Context, identity models.Identity, rawURL string) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	if rawURL == "" {
		log.Error().Int64("userId", identity.UserID).Msg("empty bookmark url")
		return models.Bookmark{}, ErrEmptyURL
	}

	var (
		metadata models.PageMetadata
		summary  string
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		metadata = b.metadata.Extract(ctx, rawURL)
	}()
	go func() {
		defer wg.Done()
		summary = b.summary.Summarize(ctx, rawURL)
	}()
	wg.Wait()

	bookmark := models.Bookmark{
		UserID:  identity.UserID,
		URL:     rawURL,
		Title:   metadata.Title,
		Favicon: metadata.Favicon,
		Summary: summary,
	}

	savedBookmark, err := b.bookmarkRepository.Insert(ctx, bookmark)
	if err != nil {
		log.Err(err).Int64("userId", identity.UserID).Str("url", rawURL).Msg("bookmark insert ended with error")
		return models.Bookmark{}, fmt.Errorf("bookmark insert ended with error: %w", err)
	}

	return savedBookmark, nil
}

// ListBookmarks returns all bookmarks owned by the authenticated user, newest
// first. A user with no bookmarks gets an empty slice, not an error.
func (b *bookmarkService) ListBookmarks(ctx context.Context, identity models.Identity) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	bookmarks, err := b.bookmarkRepository.ListByUser(ctx, identity.UserID)
	if err != nil {
		log.Err(err).Int64("userId", identity.UserID).Msg("bookmark listing ended with error")
		return nil, fmt.Errorf("bookmark listing ended with error: %w", err)
	}

	return bookmarks, nil
}

// DeleteBookmark removes a bookmark by ID, scoped to the authenticated owner.
//
// Returns store.ErrBookmarkNotFound when the bookmark does not exist or belongs
// to another user; the two cases are indistinguishable to the caller.
func (b *bookmarkService) DeleteBookmark(ctx context.Context, identity models.Identity, bookmarkID int64) error {
	log := logger.FromContext(ctx)

	if err := b.bookmarkRepository.Delete(ctx, bookmarkID, identity.UserID); err != nil {
		log.Err(err).Int64("userId", identity.UserID).Int64("bookmarkId", bookmarkID).Msg("bookmark deletion ended with error")
		return err
	}

	return nil
}
