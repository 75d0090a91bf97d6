package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkarpov/linkvault/internal/logger"
	"github.com/mkarpov/linkvault/internal/service"
	"github.com/mkarpov/linkvault/internal/store"
	"github.com/mkarpov/linkvault/internal/utils"
	"github.com/mkarpov/linkvault/models"
)

func (h *Handler) addBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.AddBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "URL is required."}, http.StatusBadRequest)
		return
	}

	bookmark, err := h.services.BookmarkService.AddBookmark(ctx, identity, req.URL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyURL):
			log.Err(err).Msg("empty bookmark url")
			utils.WriteJSON(w, models.MessageResponse{Message: "URL is required."}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during bookmark creation")
			utils.WriteJSON(w, models.MessageResponse{Message: "Failed to save bookmark."}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.BookmarkSavedResponse{
		ID:      bookmark.ID,
		URL:     bookmark.URL,
		Title:   bookmark.Title,
		Favicon: bookmark.Favicon,
		Summary: bookmark.Summary,
		Message: "Bookmark saved!",
	}, http.StatusCreated)
}

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookmarks, err := h.services.BookmarkService.ListBookmarks(ctx, identity)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during bookmark listing")
		utils.WriteJSON(w, models.MessageResponse{Message: "Failed to retrieve bookmarks."}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, bookmarks, http.StatusOK)
}

func (h *Handler) deleteBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		log.Error().Msg("no identity in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	// a non-numeric id cannot match any bookmark: same outcome as a miss
	bookmarkID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("non-numeric bookmark id")
		utils.WriteJSON(w, models.MessageResponse{Message: "Bookmark not found or not authorized."}, http.StatusNotFound)
		return
	}

	if err := h.services.BookmarkService.DeleteBookmark(ctx, identity, bookmarkID); err != nil {
		switch {
		case errors.Is(err, store.ErrBookmarkNotFound):
			log.Err(err).Int64("bookmarkId", bookmarkID).Msg("bookmark not found or not owned")
			utils.WriteJSON(w, models.MessageResponse{Message: "Bookmark not found or not authorized."}, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during bookmark deletion")
			utils.WriteJSON(w, models.MessageResponse{Message: "Failed to delete bookmark."}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Bookmark deleted successfully."}, http.StatusOK)
}
