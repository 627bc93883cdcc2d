// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/ergo/internal/logger"
	"github.com/MKhiriev/ergo/internal/utils"
	"github.com/MKhiriev/ergo/models"
)

// register godoc
// @Summary      Register a user
// @Description  Creates an account. The password is stored as a bcrypt hash.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      models.User  true  "firstName, lastName, userName, email, password"
// @Success      201   {object}  models.User
// @Failure      400   {object}  models.Message
// @Failure      409   {object}  models.Message  "Email already in use"
// @Router       /api/users [post]
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("id", registeredUser.ID).Msg("user registered")
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

// login godoc
// @Summary      Log in
// @Description  Exchanges email and password for a signed token.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        credentials  body      models.LoginRequest  true  "email and password"
// @Success      200          {object}  models.LoginResponse
// @Failure      400          {object}  models.Message
// @Failure      401          {object}  models.Message  "invalid email or password"
// @Router       /api/users/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var credentials models.LoginRequest
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("id", foundUser.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{Token: token.String(), ID: foundUser.ID}, http.StatusOK)
}
