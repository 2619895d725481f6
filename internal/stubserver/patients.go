// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-patient-keeper/internal/logger"
	"github.com/MKhiriev/go-patient-keeper/internal/utils"
	"github.com/MKhiriev/go-patient-keeper/internal/validators"
	"github.com/MKhiriev/go-patient-keeper/models"
	"github.com/go-chi/chi/v5"
)

// wirePatient is a patient as exchanged over HTTP: birth date in dd/MM/yyyy
// plus the combined name. On input the name is optional.
type wirePatient struct {
	models.Patient
	Name string `json:"name,omitempty"`
}

func toWire(p models.Patient) wirePatient {
	p.BirthDate = utils.ToWireDate(p.BirthDate)
	return wirePatient{Patient: p, Name: p.FullName()}
}

func toWireList(patients []models.Patient) []wirePatient {
	out := make([]wirePatient, 0, len(patients))
	for _, p := range patients {
		out = append(out, toWire(p))
	}
	return out
}

func (h *Handler) listPatients(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		log.Err(ErrMissingClaims).Send()
		utils.WriteMessage(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	patients := h.store.listPatients(claims.CompanyID)
	log.Debug().Int64("company_id", claims.CompanyID).Int("count", len(patients)).Msg("patients listed")

	_, _ = utils.WriteJSON(w, toWireList(patients), http.StatusOK)
}

func (h *Handler) getPatient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	claims, id, ok := h.scope(w, r)
	if !ok {
		return
	}

	patient, err := h.store.getPatient(claims.CompanyID, id)
	if err != nil {
		log.Err(err).Int64("patient_id", id).Send()
		utils.WriteMessage(w, msgPatientNotFound, http.StatusNotFound)
		return
	}

	_, _ = utils.WriteJSON(w, toWire(patient), http.StatusOK)
}

func (h *Handler) createPatient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		log.Err(ErrMissingClaims).Send()
		utils.WriteMessage(w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	patient, ok := h.decodePatient(w, r)
	if !ok {
		return
	}

	created := h.store.createPatient(claims.CompanyID, patient)
	log.Info().Int64("patient_id", created.ID).Int64("company_id", claims.CompanyID).Msg("patient created")

	_, _ = utils.WriteJSON(w, toWire(created), http.StatusOK)
}

func (h *Handler) updatePatient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	claims, id, ok := h.scope(w, r)
	if !ok {
		return
	}

	patient, ok := h.decodePatient(w, r)
	if !ok {
		return
	}

	updated, err := h.store.updatePatient(claims.CompanyID, id, patient)
	if err != nil {
		log.Err(err).Int64("patient_id", id).Send()
		utils.WriteMessage(w, msgPatientNotFound, http.StatusNotFound)
		return
	}

	log.Info().Int64("patient_id", id).Msg("patient updated")
	_, _ = utils.WriteJSON(w, toWire(updated), http.StatusOK)
}

func (h *Handler) deletePatient(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	claims, id, ok := h.scope(w, r)
	if !ok {
		return
	}

	if err := h.store.deletePatient(claims.CompanyID, id); err != nil {
		log.Err(err).Int64("patient_id", id).Send()
		utils.WriteMessage(w, msgPatientNotFound, http.StatusNotFound)
		return
	}

	log.Info().Int64("patient_id", id).Msg("patient deleted")
	w.WriteHeader(http.StatusOK)
}

// scope returns the caller's claims and the {id} path parameter, writing the
// error response itself when either is missing.
func (h *Handler) scope(w http.ResponseWriter, r *http.Request) (models.TokenClaims, int64, bool) {
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		log.Err(ErrMissingClaims).Send()
		utils.WriteMessage(w, msgUnauthorized, http.StatusUnauthorized)
		return models.TokenClaims{}, 0, false
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		log.Err(errors.Join(ErrInvalidPatientID, err)).Str("id", chi.URLParam(r, "id")).Send()
		utils.WriteMessage(w, msgInvalidPatientID, http.StatusBadRequest)
		return models.TokenClaims{}, 0, false
	}

	return claims, id, true
}

// decodePatient reads a wire patient from the body and returns it in the
// canonical form. Only the name and birth date are mandatory.
func (h *Handler) decodePatient(w http.ResponseWriter, r *http.Request) (models.Patient, bool) {
	log := logger.FromRequest(r)

	var in wirePatient
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return models.Patient{}, false
	}

	patient := in.Patient
	if patient.FirstName == "" && patient.LastName == "" {
		patient.SetFullName(in.Name)
	}
	patient.BirthDate = utils.ToCanonicalDate(patient.BirthDate)

	err := h.validator.Validate(r.Context(), patient,
		validators.FieldFirstName, validators.FieldLastName, validators.FieldBirthDate)
	switch {
	case errors.Is(err, validators.ErrInvalidBirthDate):
		log.Err(err).Str("birth_date", in.BirthDate).Send()
		utils.WriteMessage(w, msgInvalidBirthDate, http.StatusBadRequest)
		return models.Patient{}, false
	case err != nil:
		log.Err(err).Msg("invalid data provided")
		utils.WriteMessage(w, err.Error(), http.StatusBadRequest)
		return models.Patient{}, false
	}

	return patient, true
}
