package service

import (
	"context"

	"github.com/mkarpov/linkvault/models"
)

// AuthService handles user registration, credential verification, and the
// session token lifecycle.
type AuthService interface {
	// Register creates a new user account from the given credentials.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login authenticates an existing user. Unknown email and wrong password
	// are indistinguishable to the caller.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// BookmarkService coordinates bookmark ingestion, retrieval, and deletion.
// All operations are scoped to the identity verified by the auth middleware.
type BookmarkService interface {
	// AddBookmark validates the URL, enriches it best-effort with metadata
	// and a summary, persists the record, and returns it with store-assigned
	// fields populated.
	AddBookmark(ctx context.Context, identity models.Identity, url string) (models.Bookmark, error)

	// ListBookmarks returns the identity's bookmarks, newest first.
	ListBookmarks(ctx context.Context, identity models.Identity) ([]models.Bookmark, error)

	// DeleteBookmark removes one of the identity's bookmarks.
	DeleteBookmark(ctx context.Context, identity models.Identity, bookmarkID int64) error
}
