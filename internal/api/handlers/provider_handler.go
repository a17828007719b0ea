package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aashray-care/aashray-backend/internal/domain/entities"
)

// ProviderCatalog defines the provider operations used by the handler
type ProviderCatalog interface {
	ListProviders(ctx context.Context, serviceType, location string) ([]*entities.ServiceProvider, error)
	GetProvider(ctx context.Context, id int64) (*entities.ServiceProvider, error)
	RegisterProvider(ctx context.Context, provider *entities.ServiceProvider) (*entities.ServiceProvider, error)
}

// ProviderHandler handles service-provider HTTP requests
type ProviderHandler struct {
	service ProviderCatalog
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(service ProviderCatalog) *ProviderHandler {
	return &ProviderHandler{service: service}
}

// ListProviders handles GET /api/service-providers
func (h *ProviderHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	serviceType := r.URL.Query().Get("service_type")
	location := r.URL.Query().Get("location")

	providers, err := h.service.ListProviders(r.Context(), serviceType, location)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"providers": providers,
		"count":     len(providers),
	})
}

// GetProvider handles GET /api/service-providers/{id}
func (h *ProviderHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	providerID, err := pathID(r)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	provider, err := h.service.GetProvider(r.Context(), providerID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, provider)
}

// RegisterProvider handles POST /api/service-providers
func (h *ProviderHandler) RegisterProvider(w http.ResponseWriter, r *http.Request) {
	var provider entities.ServiceProvider
	if err := json.NewDecoder(r.Body).Decode(&provider); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := h.service.RegisterProvider(r.Context(), &provider)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}
