package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tawthiqproject/models"
	service "tawthiqproject/services"
	"tawthiqproject/utils"
)

// StateHandler exposes the state store's command set over HTTP.
type StateHandler struct {
	service service.StateService
}

func NewStateHandler(service service.StateService) *StateHandler {
	return &StateHandler{
		service: service,
	}
}

// commandStatus maps a command error to the HTTP status of its response.
// Weight gates are conflicts, not failures: the state is untouched.
func commandStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrWeightLimit), errors.Is(err, service.ErrResultWeightLimit):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func commandContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 10*time.Second)
}

// GetState returns the whole tree, the way it is persisted.
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	utils.HandleDataResponse(w, "State retrieved successfully", h.service.Snapshot(), http.StatusOK)
}

func (h *StateHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	state := h.service.Snapshot()

	utils.HandleDataResponse(w, "Profile retrieved successfully", map[string]interface{}{
		"profile":     state.Profile,
		"directorate": models.DirectorateName(state.Profile.Governorate),
	}, http.StatusOK)
}

func (h *StateHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var upd models.ProfileFieldUpdate
	if err := utils.DecodeAndValidate(w, r, &upd); err != nil {
		return
	}

	ctx, cancel := commandContext(r)
	defer cancel()

	profile, err := h.service.UpdateProfile(ctx, upd.Field, upd.Value)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), commandStatus(err))
		return
	}

	utils.HandleDataResponse(w, "Profile updated successfully", profile, http.StatusOK)
}
