package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	service "tawthiqproject/services"
	"tawthiqproject/utils"
)

// ReportHandler serves the composed report. Its availability is gated by the
// weight-completeness invariant, not by this layer.
type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(service service.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// GetReport composes the report and its narrative. The narrative call may
// reach the external generative service, so it gets a generous timeout;
// leaving the page cancels the request context and with it the call.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	view, err := h.service.View(ctx)
	if err != nil {
		if errors.Is(err, service.ErrWeightsUnbalanced) {
			utils.HandleMessageResponse(w, "Report unavailable: objective weights must total 100", http.StatusConflict)
			return
		}
		utils.HandleMessageResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.HandleDataResponse(w, "Report composed successfully", view, http.StatusOK)
}
