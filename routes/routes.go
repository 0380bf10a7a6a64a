package routes

import (
	"net/http"

	"tawthiqproject/handlers"
	"tawthiqproject/middlewares"

	"go.uber.org/zap"
)

// SetupRoutes wires the four logical surfaces: profile, objectives (with
// nested results and evidence), report, and the state root.
func SetupRoutes(stateHandler *handlers.StateHandler, reportHandler *handlers.ReportHandler, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	// State root
	mux.HandleFunc("GET /api/state", stateHandler.GetState)

	// Profile
	mux.HandleFunc("GET /api/profile", stateHandler.GetProfile)
	mux.HandleFunc("PUT /api/profile", stateHandler.UpdateProfile)

	// Objectives
	mux.HandleFunc("GET /api/objectives", stateHandler.ListObjectives)
	mux.HandleFunc("POST /api/objectives", stateHandler.CreateObjective)
	mux.HandleFunc("PUT /api/objectives/{id}", stateHandler.UpdateObjective)
	mux.HandleFunc("DELETE /api/objectives/{id}", stateHandler.DeleteObjective)

	// Results
	mux.HandleFunc("POST /api/objectives/{id}/results", stateHandler.CreateResult)
	mux.HandleFunc("PUT /api/objectives/{id}/results/{resultId}", stateHandler.UpdateResult)
	mux.HandleFunc("DELETE /api/objectives/{id}/results/{resultId}", stateHandler.DeleteResult)

	// Evidence
	mux.HandleFunc("POST /api/objectives/{id}/results/{resultId}/evidence", stateHandler.AddEvidence)
	mux.HandleFunc("POST /api/objectives/{id}/results/{resultId}/evidence/upload", stateHandler.UploadEvidence)
	mux.HandleFunc("DELETE /api/objectives/{id}/results/{resultId}/evidence/{evidenceId}", stateHandler.DeleteEvidence)

	// Report
	mux.HandleFunc("GET /api/report", reportHandler.GetReport)

	return middlewares.RequestLogger(logger)(mux)
}
