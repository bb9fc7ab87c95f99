package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ridewise/cabbook/internal/booking/service"
	"github.com/ridewise/cabbook/internal/booking/store"
	"github.com/ridewise/cabbook/pkg/httpx"
	"github.com/ridewise/cabbook/pkg/slogx"
)

type CitiesHandler struct {
	CityService *service.CityService
}

// HandleList returns every city, sorted by name. Public.
func (h *CitiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	cities, err := h.CityService.ListCities(ctx)
	if err != nil {
		log.Error("list cities failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		return
	}

	out := make([]cityResponse, len(cities))
	for i, c := range cities {
		out[i] = newCityResponse(c)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate adds a new city. Admin only; available defaults to true.
func (h *CitiesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req cityCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest,
			"invalid_request", "request body must be valid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	c, err := h.CityService.CreateCity(ctx, req.Name, available)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateCity) {
			httpx.WriteError(w, http.StatusBadRequest,
				"duplicate_city", "city already exists")
			return
		}
		log.Error("create city failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newCityResponse(c))
}

// HandleUpdate applies a partial update to a city. Admin only.
func (h *CitiesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req cityUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest,
			"invalid_request", "request body must be valid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	c, err := h.CityService.UpdateCity(ctx, r.PathValue("id"), req.Name, req.Available)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "city not found")
		case errors.Is(err, service.ErrDuplicateCity):
			httpx.WriteError(w, http.StatusBadRequest,
				"duplicate_city", "city already exists")
		default:
			log.Error("update city failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newCityResponse(c))
}

// HandleDelete removes a city. Admin only.
func (h *CitiesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.CityService.DeleteCity(ctx, r.PathValue("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "city not found")
			return
		}
		log.Error("delete city failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "city removed"})
}
