// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/ergo/internal/utils"
	"github.com/MKhiriev/ergo/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the MethodNotAllowed handler of router.
//
// A path that exists but does not accept the requested method is answered
// with 404 instead of chi's 405, so unsupported methods do not reveal which
// routes exist. If router does match the method and path the request is
// served normally.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound(w, r)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.Message{Message: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
}
