// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubserver

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-patient-keeper/internal/config"
	"github.com/MKhiriev/go-patient-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every route lives under the configured base path,
// /api when none is set.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	mountAPI(router, routePrefix(h.cfg.BasePath), func(api chi.Router) {
		// routes without authorization
		api.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/login", h.login)
		})

		api.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/patients", h.listPatients)
			r.Post("/patients", h.createPatient)
			r.Get("/patients/{id}", h.getPatient)
			r.Put("/patients/{id}", h.updatePatient)
			r.Delete("/patients/{id}", h.deletePatient)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteMessage(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return router
}

// routePrefix turns a configured base path into a chi route pattern. "/"
// mounts the API at the root.
func routePrefix(basePath string) string {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return config.DefaultBasePath
	}
	return "/" + strings.Trim(basePath, "/")
}

func mountAPI(router chi.Router, prefix string, fn func(chi.Router)) {
	if prefix == "/" {
		fn(router)
		return
	}
	router.Route(prefix, fn)
}
