package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/feischl/pumppanel/pkg/client"
)

const defaultPriceHours = 48

// settingsResponse wraps the settings value with the sync busy flag for the UI
type settingsResponse struct {
	Settings any  `json:"settings"`
	Syncing  bool `json:"syncing"`
}

// getSettingsHandler returns the current local settings
func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, settingsResponse{
		Settings: s.settings.Settings(),
		Syncing:  s.settings.Syncing(),
	})
}

// updateSettingsHandler applies the fields present in the request body one by
// one, leaving the rest untouched
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		renderError(w, r, fmt.Errorf("invalid settings payload"), http.StatusBadRequest)
		return
	}
	if len(fields) == 0 {
		renderError(w, r, fmt.Errorf("no fields to update"), http.StatusBadRequest)
		return
	}

	for key, value := range fields {
		if err := s.settings.UpdateSetting(key, value); err != nil {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
	}

	renderJSON(w, r, http.StatusOK, settingsResponse{
		Settings: s.settings.Settings(),
		Syncing:  s.settings.Syncing(),
	})
}

// resetSettingsHandler restores the hardcoded defaults
func (s *Server) resetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	s.settings.ResetToDefaults()
	renderJSON(w, r, http.StatusOK, settingsResponse{
		Settings: s.settings.Settings(),
		Syncing:  s.settings.Syncing(),
	})
}

// syncSettingsHandler pushes the bidding zone to the controller in the
// background, the UI polls the syncing flag for completion
func (s *Server) syncSettingsHandler(w http.ResponseWriter, r *http.Request) {
	// detached from the request context, the push outlives the response
	go s.settings.SyncWithBackend(context.Background())
	renderJSON(w, r, http.StatusAccepted, map[string]bool{"syncing": true})
}

// statusHandler proxies the controller's status snapshot
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status, err := s.backend.GetStatus(r.Context())
	if err != nil {
		log.Printf("[WARN] status request failed: %v", err)
		renderError(w, r, err, backendErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, status)
}

// overrideHandler submits a manual override to the controller
func (s *Server) overrideHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action string   `json:"action"`
		Value  *float64 `json:"value,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid override payload"), http.StatusBadRequest)
		return
	}
	if req.Action == "" {
		renderError(w, r, fmt.Errorf("action is required"), http.StatusBadRequest)
		return
	}

	if err := s.backend.Override(r.Context(), req.Action, req.Value); err != nil {
		log.Printf("[WARN] override %q failed: %v", req.Action, err)
		renderError(w, r, err, backendErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// pricesHandler proxies the historical price query, zone defaults to the
// configured bidding zone
func (s *Server) pricesHandler(w http.ResponseWriter, r *http.Request) {
	zone := r.URL.Query().Get("zone")
	if zone == "" {
		zone = s.settings.Settings().BiddingZone
	}

	hours := defaultPriceHours
	if hoursStr := r.URL.Query().Get("hours"); hoursStr != "" {
		parsed, err := strconv.Atoi(hoursStr)
		if err != nil || parsed <= 0 {
			renderError(w, r, fmt.Errorf("invalid hours"), http.StatusBadRequest)
			return
		}
		hours = parsed
	}

	prices, err := s.backend.GetPrices(r.Context(), zone, hours)
	if err != nil {
		log.Printf("[WARN] price query for %s failed: %v", zone, err)
		renderError(w, r, err, backendErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, prices)
}

// collectPricesHandler triggers price collection on the controller
func (s *Server) collectPricesHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Zone string `json:"zone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid payload"), http.StatusBadRequest)
		return
	}
	if req.Zone == "" {
		req.Zone = s.settings.Settings().BiddingZone
	}

	if err := s.backend.CollectPrices(r.Context(), req.Zone); err != nil {
		log.Printf("[WARN] price collection for %s failed: %v", req.Zone, err)
		renderError(w, r, err, backendErrorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// setCredentialHandler replaces the backend API key
func (s *Server) setCredentialHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid payload"), http.StatusBadRequest)
		return
	}
	if req.Key == "" {
		renderError(w, r, fmt.Errorf("key is required"), http.StatusBadRequest)
		return
	}

	s.backend.SetCredential(r.Context(), req.Key)
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// backendErrorCode maps client errors to the status returned to the UI, an
// invalid credential passes through as 401 so the UI can prompt for a new key
func backendErrorCode(err error) int {
	if errors.Is(err, client.ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	return http.StatusBadGateway
}
