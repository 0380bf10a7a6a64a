package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tawthiqproject/models"
)

// stateFile is the JSON shape written to disk: the state root plus the
// schema version field.
type stateFile struct {
	SchemaVersion int                    `json:"schema_version"`
	Profile       models.EmployeeProfile `json:"profile"`
	Objectives    []models.Objective     `json:"objectives"`
}

type fileStateRepository struct {
	path string
}

// NewFileStateRepository stores the record as a single JSON file, the
// server-side counterpart of the browser's local key-value slot.
func NewFileStateRepository(path string) StateRepository {
	return &fileStateRepository{path: path}
}

func (r *fileStateRepository) Load(ctx context.Context) (*models.AppState, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return models.NewAppState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var doc stateFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode state file: %w", err)
	}
	if doc.SchemaVersion > SchemaVersion {
		return nil, fmt.Errorf("state file has schema version %d, this build understands up to %d", doc.SchemaVersion, SchemaVersion)
	}

	state := &models.AppState{
		Profile:    doc.Profile,
		Objectives: doc.Objectives,
	}
	if state.Objectives == nil {
		state.Objectives = []models.Objective{}
	}
	return state, nil
}

func (r *fileStateRepository) Save(ctx context.Context, state *models.AppState) error {
	doc := stateFile{
		SchemaVersion: SchemaVersion,
		Profile:       state.Profile,
		Objectives:    state.Objectives,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state file: %w", err)
	}

	// Write-then-rename so a crash mid-write never leaves a torn record.
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".tawthiq_state-*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
