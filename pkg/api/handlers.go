// Copyright (c) 2025, The Schafer Family Cookbook Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"net/http"
	"strings"

	"github.com/schafer-family/cookbook/pkg/errors"
	"github.com/schafer-family/cookbook/pkg/recipe"
	"github.com/schafer-family/cookbook/pkg/serializer"
	"github.com/schafer-family/cookbook/pkg/server"
)

// Handler serves the catalog held by a Store.
type Handler struct {
	store *Store
}

// NewHandler creates a Handler over store.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Routes returns the API handlers keyed by ServeMux pattern.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/recipes":      h.HandleRecipes,
		"/v1/recipes/{id}": h.HandleRecipe,
		"/v1/categories":   h.HandleCategories,
	}
}

// HandleRecipes handles GET /v1/recipes[?category=...&format=...].
func (h *Handler) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	catalog, format, ok := h.prepare(w, r)
	if !ok {
		return
	}

	recipes := catalog.Recipes
	if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
		category := recipe.Category(raw)
		if !category.IsValid() {
			server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"Unknown category", false, map[string]any{
					"category":  raw,
					"supported": recipe.SupportedCategories(),
				})
			return
		}
		recipes = catalog.ByCategory(category)
	}

	serializer.RespondContent(w, http.StatusOK, format, recipes)
}

// HandleRecipe handles GET /v1/recipes/{id}.
func (h *Handler) HandleRecipe(w http.ResponseWriter, r *http.Request) {
	catalog, format, ok := h.prepare(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	found, exists := catalog.ByID(id)
	if !exists {
		server.WriteError(w, r, http.StatusNotFound, errors.ErrCodeNotFound,
			"Recipe not found", false, map[string]any{"id": id})
		return
	}

	if format == serializer.FormatTable || format == serializer.FormatJSONLD {
		serializer.RespondContent(w, http.StatusOK, format, []*recipe.Recipe{found})
		return
	}
	serializer.RespondContent(w, http.StatusOK, format, found)
}

// HandleCategories handles GET /v1/categories.
func (h *Handler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	catalog, format, ok := h.prepare(w, r)
	if !ok {
		return
	}
	if format == serializer.FormatJSONLD {
		format = serializer.FormatJSON
	}

	serializer.RespondContent(w, http.StatusOK, format, catalog.Summaries())
}

// prepare applies the checks shared by every catalog endpoint.
func (h *Handler) prepare(w http.ResponseWriter, r *http.Request) (*recipe.Catalog, serializer.Format, bool) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return nil, "", false
	}

	format := serializer.FormatJSON
	if raw := r.URL.Query().Get("format"); raw != "" {
		format = serializer.Format(strings.ToLower(raw))
		if format.IsUnknown() {
			server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"Unsupported format", false, map[string]any{
					"format":    raw,
					"supported": serializer.SupportedFormats(),
				})
			return nil, "", false
		}
	}

	catalog := h.store.Catalog()
	if catalog == nil {
		server.WriteErrorFromErr(w, r, h.store.Ready(), "Catalog unavailable", nil)
		return nil, "", false
	}
	return catalog, format, true
}
