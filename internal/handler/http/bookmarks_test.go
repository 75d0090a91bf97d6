package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarpov/linkvault/internal/logger"
	"github.com/mkarpov/linkvault/internal/service"
	"github.com/mkarpov/linkvault/internal/store"
	"github.com/mkarpov/linkvault/internal/utils"
	"github.com/mkarpov/linkvault/models"
)

// ─────────────────────────────────────────────
// Mock BookmarkService
// ─────────────────────────────────────────────

type mockBookmarkService struct {
	addBookmarkFn    func(ctx context.Context, identity models.Identity, url string) (models.Bookmark, error)
	listBookmarksFn  func(ctx context.Context, identity models.Identity) ([]models.Bookmark, error)
	deleteBookmarkFn func(ctx context.Context, identity models.Identity, bookmarkID int64) error
}

func (m *mockBookmarkService) AddBookmark(ctx context.Context, identity models.Identity, url string) (models.Bookmark, error) {
	return m.addBookmarkFn(ctx, identity, url)
}

func (m *mockBookmarkService) ListBookmarks(ctx context.Context, identity models.Identity) ([]models.Bookmark, error) {
	return m.listBookmarksFn(ctx, identity)
}

func (m *mockBookmarkService) DeleteBookmark(ctx context.Context, identity models.Identity, bookmarkID int64) error {
	return m.deleteBookmarkFn(ctx, identity, bookmarkID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithBookmarks(t *testing.T, bookmarks service.BookmarkService) *Handler {
	t.Helper()
	svcs := &service.Services{
		BookmarkService: bookmarks,
	}
	return NewHandler(svcs, logger.Nop())
}

var authedIdentity = models.Identity{UserID: 7, Email: "alice@example.com"}

// withIdentity attaches an authenticated identity to the request context, the
// way the auth middleware does after validating a token.
func withIdentity(r *http.Request, identity models.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), utils.IdentityCtxKey, identity)
	return r.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// addBookmark
// ─────────────────────────────────────────────

func TestAddBookmark_Success(t *testing.T) {
	bookmarks := &mockBookmarkService{
		addBookmarkFn: func(_ context.Context, identity models.Identity, url string) (models.Bookmark, error) {
			assert.Equal(t, authedIdentity, identity)
			assert.Equal(t, "https://example.com", url)
			return models.Bookmark{
				ID:      3,
				UserID:  identity.UserID,
				URL:     url,
				Title:   "Example",
				Favicon: "https://example.com/favicon.ico",
				Summary: "A short summary.",
			}, nil
		},
	}

	h := newHandlerWithBookmarks(t, bookmarks)
	req := httptest.NewRequest(http.MethodPost, "/api/bookmarks", strings.NewReader(`{"url":"https://example.com"}`))
	req = withIdentity(req, authedIdentity)
	rec := httptest.NewRecorder()

	h.addBookmark(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.BookmarkSavedResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "Example", resp.Title)
	assert.Equal(t, "A short summary.", resp.Summary)
	assert.Equal(t, "Bookmark saved!", resp.Message)
}

func TestAddBookmark_EmptyURL(t *testing.T) {
	bookmarks := &mockBookmarkService{
		addBookmarkFn: func(_ context.Context, _ models.Identity, _ string) (models.Bookmark, error) {
			return models.Bookmark{}, service.ErrEmptyURL
		},
	}

	h := newHandlerWithBookmarks(t, bookmarks)
	req := httptest.NewRequest(http.MethodPost, "/api/bookmarks", strings.NewReader(`{}`))
	req = withIdentity(req, authedIdentity)
	rec := httptest.NewRecorder()

	h.addBookmark(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "URL is required.", decodeMessage(t, rec))
}

func TestAddBookmark_InvalidJSON(t *testing.T) {
	h := newHandlerWithBookmarks(t, &mockBookmarkService{})
	req := httptest.NewRequest(http.MethodPost, "/api/bookmarks", strings.NewReader("{broken"))
	req = withIdentity(req, authedIdentity)
	rec := httptest.NewRecorder()

	h.addBookmark(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "URL is required.", decodeMessage(t, rec))
}

func TestAddBookmark_NoIdentityInContext(t *testing.T) {
	h := newHandlerWithBookmarks(t, &mockBookmarkService{})
	req := httptest.NewRequest(http.MethodPost, "/api/bookmarks", strings.NewReader(`{"url":"https://example.com"}`))
	rec := httptest.NewRecorder()

	h.addBookmark(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddBookmark_StorageError(t *testing.T) {
	bookmarks := &mockBookmarkService{
		addBookmarkFn: func(_ context.Context, _ models.Identity, _ string) (models.Bookmark, error) {
			return models.Bookmark{}, errors.New("insert failed")
		},
	}

	h := newHandlerWithBookmarks(t, bookmarks)
	req := httptest.NewRequest(http.MethodPost, "/api/bookmarks", strings.NewReader(`{"url":"https://example.com"}`))
	req = withIdentity(req, authedIdentity)
	rec := httptest.NewRecorder()

	h.addBookmark(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to save bookmark.", decodeMessage(t, rec))
}

// ─────────────────────────────────────────────
// listBookmarks
// ─────────────────────────────────────────────

func TestListBookmarks_Success(t *testing.T) {
	want := []models.Bookmark{
		{ID: 2, UserID: 7, URL: "https://b.example.com"},
		{ID: 1, UserID: 7, URL: "https://a.example.com"},
	}
	bookmarks := &mockBookmarkService{
		listBookmarksFn: func(_ context.Context, identity models.Identity) ([]models.Bookmark, error) {
			assert.Equal(t, authedIdentity, identity)
			return want, nil
		},
	}

	h := newHandlerWithBookmarks(t, bookmarks)
	req := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
	req = withIdentity(req, authedIdentity)
	rec := httptest.NewRecorder()

	h.listBookmarks(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Bookmark
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, []int64{2, 1}, []int64{got[0].ID, got[1].ID})
}

func TestListBookmarks_Empty(t *testing.T) {
	bookmarks := &mockBookmarkService{
		listBookmarksFn: func(_ context.Context, _ models.Identity) ([]models.Bookmark, error) {
			return []models.Bookmark{}, nil
		},
	}

	h := newHandlerWithBookmarks(t, bookmarks)
	req := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
	req = withIdentity(req, authedIdentity)
	rec := httptest.NewRecorder()

	h.listBookmarks(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListBookmarks_StorageError(t *testing.T) {
	bookmarks := &mockBookmarkService{
		listBookmarksFn: func(_ context.Context, _ models.Identity) ([]models.Bookmark, error) {
			return nil, errors.New("query failed")
		},
	}

	h := newHandlerWithBookmarks(t, bookmarks)
	req := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
	req = withIdentity(req, authedIdentity)
	rec := httptest.NewRecorder()

	h.listBookmarks(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to retrieve bookmarks.", decodeMessage(t, rec))
}

// ─────────────────────────────────────────────
// deleteBookmark
// ─────────────────────────────────────────────

func TestDeleteBookmark_Success(t *testing.T) {
	bookmarks := &mockBookmarkService{
		deleteBookmarkFn: func(_ context.Context, identity models.Identity, bookmarkID int64) error {
			assert.Equal(t, authedIdentity, identity)
			assert.Equal(t, int64(13), bookmarkID)
			return nil
		},
	}

	h := newHandlerWithBookmarks(t, bookmarks)
	req := httptest.NewRequest(http.MethodDelete, "/api/bookmarks/13", nil)
	req = withIdentity(req, authedIdentity)
	req = withURLParam(req, "id", "13")
	rec := httptest.NewRecorder()

	h.deleteBookmark(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bookmark deleted successfully.", decodeMessage(t, rec))
}

func TestDeleteBookmark_NotFound(t *testing.T) {
	bookmarks := &mockBookmarkService{
		deleteBookmarkFn: func(_ context.Context, _ models.Identity, _ int64) error {
			return store.ErrBookmarkNotFound
		},
	}

	h := newHandlerWithBookmarks(t, bookmarks)
	req := httptest.NewRequest(http.MethodDelete, "/api/bookmarks/999", nil)
	req = withIdentity(req, authedIdentity)
	req = withURLParam(req, "id", "999")
	rec := httptest.NewRecorder()

	h.deleteBookmark(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Bookmark not found or not authorized.", decodeMessage(t, rec))
}

func TestDeleteBookmark_NonNumericID(t *testing.T) {
	bookmarks := &mockBookmarkService{
		deleteBookmarkFn: func(_ context.Context, _ models.Identity, _ int64) error {
			t.Fatal("DeleteBookmark must not be called for a non-numeric id")
			return nil
		},
	}

	h := newHandlerWithBookmarks(t, bookmarks)
	req := httptest.NewRequest(http.MethodDelete, "/api/bookmarks/abc", nil)
	req = withIdentity(req, authedIdentity)
	req = withURLParam(req, "id", "abc")
	rec := httptest.NewRecorder()

	h.deleteBookmark(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Bookmark not found or not authorized.", decodeMessage(t, rec))
}

func TestDeleteBookmark_StorageError(t *testing.T) {
	bookmarks := &mockBookmarkService{
		deleteBookmarkFn: func(_ context.Context, _ models.Identity, _ int64) error {
			return errors.New("delete failed")
		},
	}

	h := newHandlerWithBookmarks(t, bookmarks)
	req := httptest.NewRequest(http.MethodDelete, "/api/bookmarks/13", nil)
	req = withIdentity(req, authedIdentity)
	req = withURLParam(req, "id", "13")
	rec := httptest.NewRecorder()

	h.deleteBookmark(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
