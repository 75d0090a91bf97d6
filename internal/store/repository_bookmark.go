package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mkarpov/linkvault/internal/logger"
	"github.com/mkarpov/linkvault/models"
)

// psql builds queries with dollar placeholders, which both supported backends
// accept.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// bookmarkRepository is the SQL-backed implementation of [BookmarkRepository].
//
// Every query predicate includes the owning user's identifier: ownership is
// enforced at the data-access boundary, never by filtering results after the
// fact.
type bookmarkRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookmarkRepository constructs a [BookmarkRepository] backed by the
// provided database connection and logger.
func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	logger.Debug().Msg("creating bookmark repository")
	return &bookmarkRepository{
		db:     db,
		logger: logger,
	}
}

// Insert persists a bookmark row and populates the store-assigned ID and
// CreatedAt on the returned copy via a RETURNING clause.
func (r *bookmarkRepository) Insert(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert(bookmark.TableName()).
		Columns("user_id", "url", "title", "favicon", "summary").
		Values(bookmark.UserID, bookmark.URL, bookmark.Title, bookmark.Favicon, bookmark.Summary).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.Insert").Msg("error building insert query")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&bookmark.ID, &bookmark.CreatedAt); err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.Insert").Msg("error: inserting bookmark")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return bookmark, nil
}

// ListByUser returns all bookmarks owned by userID, newest first. The ID
// tiebreak keeps the order stable for rows created within the same timestamp
// granularity.
func (r *bookmarkRepository) ListByUser(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("id", "user_id", "url", "title", "favicon", "summary", "created_at").
		From(models.Bookmark{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.ListByUser").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.ListByUser").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookmarks := make([]models.Bookmark, 0)
	for rows.Next() {
		var b models.Bookmark
		if err = rows.Scan(&b.ID, &b.UserID, &b.URL, &b.Title, &b.Favicon, &b.Summary, &b.CreatedAt); err != nil {
			log.Err(err).Str("func", "*bookmarkRepository.ListByUser").Msg("error scanning bookmark row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookmarks, nil
}

// Delete removes the bookmark identified by bookmarkID only when it is owned
// by userID. Zero affected rows collapse "no such bookmark" and "owned by
// another user" into the single [ErrBookmarkNotFound] outcome.
func (r *bookmarkRepository) Delete(ctx context.Context, bookmarkID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Delete(models.Bookmark{}.TableName()).
		Where(sq.Eq{"id": bookmarkID, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.Delete").Msg("error executing delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if deleted == 0 {
		return ErrBookmarkNotFound
	}

	return nil
}
