package store

import (
	"context"

	"github.com/mkarpov/linkvault/models"
)

// UserRepository is the data-access contract of the credential store.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by exact, case-sensitive email.
	// An empty result yields [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// BookmarkRepository is the owner-scoped data-access contract for bookmarks.
// Every method's SQL predicate includes the owning user's identifier; rows of
// other users are invisible by construction, not by post-filtering.
type BookmarkRepository interface {
	// Insert persists a bookmark and returns it with the store-assigned
	// identifier and creation timestamp populated.
	Insert(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)

	// ListByUser returns the user's bookmarks sorted by creation timestamp
	// descending. A user without bookmarks gets an empty slice, not an error.
	ListByUser(ctx context.Context, userID int64) ([]models.Bookmark, error)

	// Delete removes the bookmark only if it is owned by userID. A missing
	// row and a row owned by someone else are the same outcome:
	// [ErrBookmarkNotFound].
	Delete(ctx context.Context, bookmarkID, userID int64) error
}
