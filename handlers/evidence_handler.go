package handlers

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"tawthiqproject/models"
	"tawthiqproject/utils"
)

// AddEvidence appends link, video, or transcript evidence from a JSON body.
func (h *StateHandler) AddEvidence(w http.ResponseWriter, r *http.Request) {
	objectiveID := r.PathValue("id")
	resultID := r.PathValue("resultId")

	var input models.EvidenceInput
	if err := utils.DecodeAndValidate(w, r, &input); err != nil {
		return
	}

	ctx, cancel := commandContext(r)
	defer cancel()

	ev, err := h.service.AddEvidence(ctx, objectiveID, resultID, input)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), commandStatus(err))
		return
	}

	utils.HandleDataResponse(w, "Evidence added successfully", ev, http.StatusCreated)
}

// UploadEvidence appends image or PDF evidence from a multipart file. The
// file is embedded into the record as a data-URL so the persisted state
// stays a single self-contained document.
func (h *StateHandler) UploadEvidence(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		utils.HandleMessageResponse(w, "Failed to parse multipart form", http.StatusBadRequest)
		return
	}

	objectiveID := r.PathValue("id")
	resultID := r.PathValue("resultId")

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.HandleMessageResponse(w, "Failed to get file from form", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > 10<<20 { // 10 MB
		utils.HandleMessageResponse(w, "File size too large (max 10MB)", http.StatusBadRequest)
		return
	}

	contentType := header.Header.Get("Content-Type")
	var evType models.EvidenceType
	switch {
	case strings.HasPrefix(contentType, "image/"):
		evType = models.EvidenceImage
	case contentType == "application/pdf":
		evType = models.EvidencePDF
	default:
		utils.HandleMessageResponse(w, "Only image and PDF uploads are accepted", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		utils.HandleMessageResponse(w, "Failed to read uploaded file", http.StatusBadRequest)
		return
	}
	content := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)

	ctx, cancel := commandContext(r)
	defer cancel()

	ev, err := h.service.AddBinaryEvidence(ctx, objectiveID, resultID, evType, content, header.Filename)
	if err != nil {
		utils.HandleMessageResponse(w, err.Error(), commandStatus(err))
		return
	}

	utils.HandleDataResponse(w, "File uploaded successfully", ev, http.StatusCreated)
}

func (h *StateHandler) DeleteEvidence(w http.ResponseWriter, r *http.Request) {
	objectiveID := r.PathValue("id")
	resultID := r.PathValue("resultId")
	evidenceID := r.PathValue("evidenceId")

	ctx, cancel := commandContext(r)
	defer cancel()

	if err := h.service.RemoveEvidence(ctx, objectiveID, resultID, evidenceID); err != nil {
		utils.HandleMessageResponse(w, err.Error(), commandStatus(err))
		return
	}

	utils.HandleMessageResponse(w, "Evidence removed successfully", http.StatusOK)
}
