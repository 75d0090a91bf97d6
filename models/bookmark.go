package models

import "time"

// Bookmark represents one saved URL belonging to exactly one user.
//
// Title, Favicon and Summary are best-effort enrichment results: Title and
// Favicon may be empty strings when extraction failed, Summary always holds
// either fetched prose or a placeholder string and is never empty after
// ingestion.
type Bookmark struct {
	// ID is the store-assigned unique identifier of the bookmark.
	ID int64 `json:"id"`

	// UserID is the identifier of the owning user. Every read and write
	// predicate includes it; a bookmark is never visible outside its owner.
	UserID int64 `json:"userId"`

	// URL is the bookmarked address exactly as submitted by the client,
	// neither normalized nor canonicalized.
	URL string `json:"url"`

	// Title is the page title extracted from the fetched HTML,
	// or an empty string if unavailable.
	Title string `json:"title"`

	// Favicon is the absolute favicon URL resolved during extraction,
	// or an empty string if the page could not be fetched.
	Favicon string `json:"favicon"`

	// Summary is the third-party generated summary text or a placeholder.
	Summary string `json:"summary"`

	// CreatedAt is assigned by the store at insert time and drives the
	// descending sort order on retrieval.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Bookmark model.
func (b Bookmark) TableName() string {
	return "bookmarks"
}

// PageMetadata holds the best-effort results of fetching and parsing a
// bookmarked page. Both fields may be empty; extraction never fails upward.
type PageMetadata struct {
	Title   string
	Favicon string
}
