package handlers

import (
	"net/http"

	"tawthiqproject/models"
	"tawthiqproject/utils"
)

// ListObjectives returns the ordered objectives with the weight summary the
// editing surface shows next to them.
func (h *StateHandler) ListObjectives(w http.ResponseWriter, r *http.Request) {
	state := h.service.Snapshot()
	totalWeight := models.TotalWeight(state.Objectives)

	utils.HandleDataResponse(w, "Objectives retrieved successfully", map[string]interface{}{
		"objectives":         state.Objectives,
		"totalWeight":        totalWeight,
		"objectivesComplete": totalWeight == 100,
	}, http.StatusOK)
}

func (h *StateHandler) CreateObjective(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := commandContext(r)
	defer cancel()

	obj, err := h.service.AddObjective(ctx)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), commandStatus(err))
		return
	}

	utils.HandleDataResponse(w, "Objective created successfully", obj, http.StatusCreated)
}

func (h *StateHandler) UpdateObjective(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var upd models.ObjectiveUpdate
	if err := utils.DecodeAndValidate(w, r, &upd); err != nil {
		return
	}

	ctx, cancel := commandContext(r)
	defer cancel()

	obj, err := h.service.UpdateObjective(ctx, id, upd)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), commandStatus(err))
		return
	}

	utils.HandleDataResponse(w, "Objective updated successfully", obj, http.StatusOK)
}

func (h *StateHandler) DeleteObjective(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	ctx, cancel := commandContext(r)
	defer cancel()

	if err := h.service.DeleteObjective(ctx, id); err != nil {
		utils.HandleMessageResponse(w, err.Error(), commandStatus(err))
		return
	}

	utils.HandleMessageResponse(w, "Objective deleted successfully", http.StatusOK)
}

func (h *StateHandler) CreateResult(w http.ResponseWriter, r *http.Request) {
	objectiveID := r.PathValue("id")

	ctx, cancel := commandContext(r)
	defer cancel()

	res, err := h.service.AddResult(ctx, objectiveID)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), commandStatus(err))
		return
	}

	utils.HandleDataResponse(w, "Result created successfully", res, http.StatusCreated)
}

func (h *StateHandler) UpdateResult(w http.ResponseWriter, r *http.Request) {
	objectiveID := r.PathValue("id")
	resultID := r.PathValue("resultId")

	var upd models.ResultUpdate
	if err := utils.DecodeAndValidate(w, r, &upd); err != nil {
		return
	}

	ctx, cancel := commandContext(r)
	defer cancel()

	res, err := h.service.UpdateResult(ctx, objectiveID, resultID, upd)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), commandStatus(err))
		return
	}

	utils.HandleDataResponse(w, "Result updated successfully", res, http.StatusOK)
}

func (h *StateHandler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	objectiveID := r.PathValue("id")
	resultID := r.PathValue("resultId")

	ctx, cancel := commandContext(r)
	defer cancel()

	if err := h.service.DeleteResult(ctx, objectiveID, resultID); err != nil {
		utils.HandleMessageResponse(w, err.Error(), commandStatus(err))
		return
	}

	utils.HandleMessageResponse(w, "Result deleted successfully", http.StatusOK)
}
