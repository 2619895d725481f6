// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-patient-keeper/internal/config"
	"github.com/MKhiriev/go-patient-keeper/internal/logger"
	"github.com/MKhiriev/go-patient-keeper/internal/utils"
	"github.com/MKhiriev/go-patient-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	session SessionStore

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. The base URL is adapterCfg.HTTPAddress (scheme optional,
// http assumed) joined with adapterCfg.BasePath.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, session SessionStore, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress, adapterCfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	logger.Debug().Str("func", "NewHTTPServerAdapter").Str("base_url", baseURL).Msg("adapter configured")

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		session: session,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw, basePath string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	base := strings.TrimRight(u.String(), "/")
	if basePath = strings.Trim(strings.TrimSpace(basePath), "/"); basePath != "" {
		base += "/" + basePath
	}

	return base, nil
}

// Login implements [ServerAdapter]. POST /auth/login, unauthenticated.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, opLogin, pathLogin, creds)
}

// Register implements [ServerAdapter]. POST /auth/register, unauthenticated.
func (h *httpServerAdapter) Register(ctx context.Context, details models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, opRegister, pathRegister, details)
}

// authenticate posts body to path and starts a session from the response.
// The token is taken from the body, or from the Authorization response
// header when the body has none.
func (h *httpServerAdapter) authenticate(ctx context.Context, op operation, path string, body any) (models.AuthResponse, error) {
	req := h.request(ctx, op).
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	resp, err := h.execute(ctx, op, req, http.MethodPost, path)
	if err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if len(bytes.TrimSpace(resp.Body())) > 0 {
		if err = json.Unmarshal(resp.Body(), &auth); err != nil {
			return models.AuthResponse{}, h.decodeFailed(op, resp, err)
		}
	}

	if auth.Token == "" {
		if token, headerErr := utils.ParseBearerToken(resp.Header().Get("Authorization")); headerErr == nil {
			auth.Token = token
		}
	}
	if auth.Token == "" {
		return models.AuthResponse{}, h.decodeFailed(op, resp, fmt.Errorf("no token in response"))
	}

	if err = h.session.Start(ctx, auth.Session()); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s: error storing session: %w", op.name, err)
	}

	return auth, nil
}

// ListPatients implements [ServerAdapter]. GET /patients.
func (h *httpServerAdapter) ListPatients(ctx context.Context) ([]models.Patient, error) {
	resp, err := h.execute(ctx, opListPatients, h.request(ctx, opListPatients), http.MethodGet, pathPatients)
	if err != nil {
		return nil, err
	}

	var payloads []patientPayload
	if len(bytes.TrimSpace(resp.Body())) > 0 {
		if err = json.Unmarshal(resp.Body(), &payloads); err != nil {
			return nil, h.decodeFailed(opListPatients, resp, err)
		}
	}

	patients := make([]models.Patient, 0, len(payloads))
	for _, p := range payloads {
		patients = append(patients, p.toPatient())
	}

	return patients, nil
}

// GetPatient implements [ServerAdapter]. GET /patients/{id}.
func (h *httpServerAdapter) GetPatient(ctx context.Context, id int64) (models.Patient, error) {
	req := h.request(ctx, opGetPatient).SetPathParam("id", strconv.FormatInt(id, 10))

	resp, err := h.execute(ctx, opGetPatient, req, http.MethodGet, pathPatient)
	if err != nil {
		return models.Patient{}, err
	}

	return h.decodePatient(opGetPatient, resp)
}

// CreatePatient implements [ServerAdapter]. POST /patients with the birth
// date in wire form and no id.
func (h *httpServerAdapter) CreatePatient(ctx context.Context, p models.Patient) (models.Patient, error) {
	p.ID = 0
	req := h.request(ctx, opCreatePatient).
		SetHeader("Content-Type", "application/json").
		SetBody(toWirePatient(p))

	resp, err := h.execute(ctx, opCreatePatient, req, http.MethodPost, pathPatients)
	if err != nil {
		return models.Patient{}, err
	}

	return h.decodePatient(opCreatePatient, resp)
}

// UpdatePatient implements [ServerAdapter]. PUT /patients/{id} with the
// birth date in wire form.
func (h *httpServerAdapter) UpdatePatient(ctx context.Context, id int64, p models.Patient) (models.Patient, error) {
	p.ID = id
	req := h.request(ctx, opUpdatePatient).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(toWirePatient(p))

	resp, err := h.execute(ctx, opUpdatePatient, req, http.MethodPut, pathPatient)
	if err != nil {
		return models.Patient{}, err
	}

	return h.decodePatient(opUpdatePatient, resp)
}

// DeletePatient implements [ServerAdapter]. DELETE /patients/{id}. Any
// response body is ignored.
func (h *httpServerAdapter) DeletePatient(ctx context.Context, id int64) error {
	req := h.request(ctx, opDeletePatient).SetPathParam("id", strconv.FormatInt(id, 10))

	_, err := h.execute(ctx, opDeletePatient, req, http.MethodDelete, pathPatient)
	return err
}

// request starts a request tagged with a fresh trace id. For bearer
// operations the session token, when present, is attached; otherwise the
// request goes out without Authorization.
func (h *httpServerAdapter) request(ctx context.Context, op operation) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader(utils.TraceIDHeader, utils.NewTraceID())

	if !op.bearer {
		return req
	}

	token, err := h.session.Token(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "httpServerAdapter.request").Msg("session unreadable, sending unauthenticated request")
		return req
	}
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	return req
}

// execute sends req and classifies the outcome. A 401 on a bearer operation
// clears the session before the error is returned; a rejected login or
// registration leaves the current session alone.
func (h *httpServerAdapter) execute(ctx context.Context, op operation, req *resty.Request, method, path string) (*resty.Response, error) {
	log := h.logger.WithTraceID(req.Header.Get(utils.TraceIDHeader))

	resp, err := req.Execute(method, path)
	if err != nil {
		log.Err(err).
			Str("func", "httpServerAdapter.execute").
			Str("op", op.name).
			Str("method", method).
			Str("path", path).
			Msg("request failed before a response was received")
		return nil, newTransportError(op, err)
	}

	log.Debug().
		Str("func", "httpServerAdapter.execute").
		Str("op", op.name).
		Str("method", method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("response received")

	apiErr := mapHTTPError(op, resp)
	if apiErr == nil {
		return resp, nil
	}

	if op.bearer && resp.StatusCode() == http.StatusUnauthorized {
		if clearErr := h.session.Clear(ctx); clearErr != nil {
			log.Err(clearErr).Str("func", "httpServerAdapter.execute").Msg("failed to clear session after 401")
		} else {
			log.Info().Str("func", "httpServerAdapter.execute").Str("op", op.name).Msg("session cleared after 401")
		}
	}

	log.Debug().Str("func", "httpServerAdapter.execute").Msg(apiErr.Detail())
	return nil, apiErr
}

func (h *httpServerAdapter) decodePatient(op operation, resp *resty.Response) (models.Patient, error) {
	var payload patientPayload
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return models.Patient{}, h.decodeFailed(op, resp, err)
	}

	return payload.toPatient(), nil
}

func (h *httpServerAdapter) decodeFailed(op operation, resp *resty.Response, cause error) *APIError {
	h.logger.Err(cause).
		Str("func", "httpServerAdapter.decodeFailed").
		Str("op", op.name).
		Int("status", resp.StatusCode()).
		Msg("failed to decode response body")
	return newDecodeError(op, resp.StatusCode(), cause)
}
