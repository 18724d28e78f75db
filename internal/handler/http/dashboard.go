package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
	"github.com/MKhiriev/go-key-keeper/models"
	"github.com/go-chi/chi/v5"
)

// activeRequest is the body of the key toggle endpoint.
type activeRequest struct {
	Active bool `json:"active"`
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	list, err := h.services.KeyService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("dashboard listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid user identifier")
		http.Error(w, "invalid user identifier", http.StatusBadRequest)
		return
	}

	if err := h.services.KeyService.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("user deletion failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Info().Int64("id", userID).Msg("user deleted")

	utils.WriteJSON(w, models.ConfirmationResponse{Success: true}, http.StatusOK)
}

func (h *Handler) setKeyActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	apiKey := chi.URLParam(r, "key")

	var req activeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.KeyService.SetKeyActive(ctx, apiKey, req.Active); err != nil {
		log.Err(err).Bool("active", req.Active).Msg("key toggle failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Info().Bool("active", req.Active).Msg("key toggled")

	utils.WriteJSON(w, models.ConfirmationResponse{Success: true}, http.StatusOK)
}
