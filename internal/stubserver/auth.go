// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-patient-keeper/internal/logger"
	"github.com/MKhiriev/go-patient-keeper/internal/utils"
	"github.com/MKhiriev/go-patient-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("invalid data provided")
		utils.WriteMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		utils.WriteMessage(w, msgInternal, http.StatusInternalServerError)
		return
	}

	registered, company, err := h.store.createCompanyUser(req.CompanyName, user{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if errors.Is(err, ErrEmailTaken) {
		log.Err(err).Str("email", req.Email).Msg("email already exists")
		utils.WriteMessage(w, msgEmailTaken, http.StatusConflict)
		return
	}
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during registration")
		utils.WriteMessage(w, msgInternal, http.StatusInternalServerError)
		return
	}

	log.Info().Str("email", registered.Email).Str("company", company.Name).Msg("company registered")
	h.writeAuthResponse(w, r, registered, company)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, creds); err != nil {
		log.Err(err).Msg("invalid data provided")
		utils.WriteMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	found, company, err := h.store.userByEmail(creds.Email)
	if err == nil {
		err = bcrypt.CompareHashAndPassword(found.PasswordHash, []byte(creds.Password))
	}
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("no user was found/wrong password")
		utils.WriteMessage(w, msgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	log.Info().Str("email", found.Email).Msg("user logged in")
	h.writeAuthResponse(w, r, found, company)
}

// writeAuthResponse issues a token for u and sends it both in the body and
// in the Authorization header.
func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, u user, company models.Company) {
	log := logger.FromRequest(r)

	token, err := utils.GenerateJWTToken(h.cfg.TokenIssuer, u.ID, u.Email, u.CompanyID, h.cfg.TokenDuration, h.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteMessage(w, msgInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Token: token.SignedString,
		User: models.UserSummary{
			ID:        u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Company:   company,
		},
	}, http.StatusOK)
}
