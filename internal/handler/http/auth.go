package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkarpov/linkvault/internal/logger"
	"github.com/mkarpov/linkvault/internal/service"
	"github.com/mkarpov/linkvault/internal/store"
	"github.com/mkarpov/linkvault/internal/utils"
	"github.com/mkarpov/linkvault/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Email and password are required."}, http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.Register(ctx, creds); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			log.Err(err).Msg("missing signup credentials")
			utils.WriteJSON(w, models.MessageResponse{Message: "Email and password are required."}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			utils.WriteJSON(w, models.MessageResponse{Message: "Email already registered."}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.MessageResponse{Message: "Error registering user."}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "User registered successfully!"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Email and password are required."}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			log.Err(err).Msg("missing login credentials")
			utils.WriteJSON(w, models.MessageResponse{Message: "Email and password are required."}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials")
			utils.WriteJSON(w, models.MessageResponse{Message: "Invalid credentials."}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.MessageResponse{Message: "Error logging in."}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Error logging in."}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{Message: "Logged in successfully!", Token: token.String()}, http.StatusOK)
}
