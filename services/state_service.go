package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tawthiqproject/models"
	repository "tawthiqproject/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrWeightLimit means the objectives already account for the full 100%
	// and another one may not be added.
	ErrWeightLimit = errors.New("objective weights already total 100")
	// ErrResultWeightLimit means an objective's results already account for
	// the objective's whole weight.
	ErrResultWeightLimit = errors.New("result weights already match the objective weight")
	// ErrNotFound means no entity matched the given identifier.
	ErrNotFound = errors.New("not found")
)

// StateService owns the authoritative in-memory tree and exposes the only
// commands that may mutate it. Every command persists the whole root through
// the repository before returning, so storage always reflects the last
// command.
type StateService interface {
	Snapshot() *models.AppState
	UpdateProfile(ctx context.Context, field, value string) (*models.EmployeeProfile, error)
	AddObjective(ctx context.Context) (*models.Objective, error)
	UpdateObjective(ctx context.Context, id string, upd models.ObjectiveUpdate) (*models.Objective, error)
	DeleteObjective(ctx context.Context, id string) error
	AddResult(ctx context.Context, objectiveID string) (*models.Result, error)
	UpdateResult(ctx context.Context, objectiveID, resultID string, upd models.ResultUpdate) (*models.Result, error)
	DeleteResult(ctx context.Context, objectiveID, resultID string) error
	AddEvidence(ctx context.Context, objectiveID, resultID string, input models.EvidenceInput) (*models.Evidence, error)
	AddBinaryEvidence(ctx context.Context, objectiveID, resultID string, evType models.EvidenceType, content, notes string) (*models.Evidence, error)
	RemoveEvidence(ctx context.Context, objectiveID, resultID, evidenceID string) error
}

type stateService struct {
	mu     sync.Mutex
	state  *models.AppState
	repo   repository.StateRepository
	logger *zap.Logger
}

// NewStateService loads the persisted record once and keeps it as the
// process-wide root from then on.
func NewStateService(ctx context.Context, repo repository.StateRepository, logger *zap.Logger) (StateService, error) {
	state, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial state: %w", err)
	}
	return &stateService{
		state:  state,
		repo:   repo,
		logger: logger,
	}, nil
}

// Snapshot returns a deep copy for read-side projections.
func (s *stateService) Snapshot() *models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *stateService) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.state); err != nil {
		s.logger.Error("state save failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *stateService) UpdateProfile(ctx context.Context, field, value string) (*models.EmployeeProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case "name":
		s.state.Profile.Name = value
	case "jobTitle":
		s.state.Profile.JobTitle = value
	case "institution":
		s.state.Profile.Institution = value
	case "managerName":
		s.state.Profile.ManagerName = value
	case "governorate":
		s.state.Profile.Governorate = value
	case "period":
		s.state.Profile.Period = models.ReportingPeriod(value)
	case "year":
		s.state.Profile.Year = value
	case "schoolLogo":
		s.state.Profile.SchoolLogo = value
	default:
		return nil, fmt.Errorf("unknown profile field %q: %w", field, ErrNotFound)
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	profile := s.state.Profile
	return &profile, nil
}

func (s *stateService) AddObjective(ctx context.Context) (*models.Objective, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if models.TotalWeight(s.state.Objectives) >= 100 {
		return nil, ErrWeightLimit
	}

	obj := models.Objective{
		ID:             uuid.NewString(),
		Text:           "",
		Classification: models.ClassificationTasks,
		Weight:         0,
		Results:        []models.Result{},
	}
	s.state.Objectives = append(s.state.Objectives, obj)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.logger.Debug("objective added", zap.String("id", obj.ID))
	return &obj, nil
}

func (s *stateService) UpdateObjective(ctx context.Context, id string, upd models.ObjectiveUpdate) (*models.Objective, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj := s.findObjective(id)
	if obj == nil {
		return nil, fmt.Errorf("objective %s: %w", id, ErrNotFound)
	}

	if upd.Text != nil {
		obj.Text = *upd.Text
	}
	if upd.Classification != nil {
		obj.Classification = *upd.Classification
	}
	if upd.Weight != nil {
		obj.Weight = *upd.Weight
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	updated := *obj
	return &updated, nil
}

func (s *stateService) DeleteObjective(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, obj := range s.state.Objectives {
		if obj.ID == id {
			// Results and their evidence go with the objective.
			s.state.Objectives = append(s.state.Objectives[:i], s.state.Objectives[i+1:]...)
			if err := s.persist(ctx); err != nil {
				return err
			}
			s.logger.Debug("objective deleted", zap.String("id", id))
			return nil
		}
	}
	return fmt.Errorf("objective %s: %w", id, ErrNotFound)
}

func (s *stateService) AddResult(ctx context.Context, objectiveID string) (*models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj := s.findObjective(objectiveID)
	if obj == nil {
		return nil, fmt.Errorf("objective %s: %w", objectiveID, ErrNotFound)
	}
	if models.TotalWeight(obj.Results) >= obj.Weight {
		return nil, ErrResultWeightLimit
	}

	res := models.Result{
		ID:            uuid.NewString(),
		IndicatorType: models.IndicatorNumber,
		Evidence:      []models.Evidence{},
	}
	obj.Results = append(obj.Results, res)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.logger.Debug("result added", zap.String("objective_id", objectiveID), zap.String("id", res.ID))
	return &res, nil
}

func (s *stateService) UpdateResult(ctx context.Context, objectiveID, resultID string, upd models.ResultUpdate) (*models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.findResult(objectiveID, resultID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		res.Name = *upd.Name
	}
	if upd.Weight != nil {
		res.Weight = *upd.Weight
	}
	if upd.IndicatorType != nil {
		res.IndicatorType = *upd.IndicatorType
	}
	if upd.TargetLow != nil {
		res.TargetLow = *upd.TargetLow
	}
	if upd.TargetExpected != nil {
		res.TargetExpected = *upd.TargetExpected
	}
	if upd.TargetHigh != nil {
		res.TargetHigh = *upd.TargetHigh
	}
	if upd.ActualPerformance != nil {
		res.ActualPerformance = *upd.ActualPerformance
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	updated := *res
	return &updated, nil
}

func (s *stateService) DeleteResult(ctx context.Context, objectiveID, resultID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj := s.findObjective(objectiveID)
	if obj == nil {
		return fmt.Errorf("objective %s: %w", objectiveID, ErrNotFound)
	}
	for i, res := range obj.Results {
		if res.ID == resultID {
			obj.Results = append(obj.Results[:i], obj.Results[i+1:]...)
			return s.persist(ctx)
		}
	}
	return fmt.Errorf("result %s: %w", resultID, ErrNotFound)
}

func (s *stateService) AddEvidence(ctx context.Context, objectiveID, resultID string, input models.EvidenceInput) (*models.Evidence, error) {
	return s.appendEvidence(ctx, objectiveID, resultID, models.Evidence{
		ID:      uuid.NewString(),
		Type:    input.Type,
		Content: input.Content,
		Notes:   input.Notes,
	})
}

// AddBinaryEvidence records an uploaded image or PDF; content is the
// data-URL encoding of the file and notes carries the original filename.
func (s *stateService) AddBinaryEvidence(ctx context.Context, objectiveID, resultID string, evType models.EvidenceType, content, notes string) (*models.Evidence, error) {
	return s.appendEvidence(ctx, objectiveID, resultID, models.Evidence{
		ID:      uuid.NewString(),
		Type:    evType,
		Content: content,
		Notes:   notes,
	})
}

func (s *stateService) appendEvidence(ctx context.Context, objectiveID, resultID string, ev models.Evidence) (*models.Evidence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.findResult(objectiveID, resultID)
	if err != nil {
		return nil, err
	}
	res.Evidence = append(res.Evidence, ev)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.logger.Debug("evidence added",
		zap.String("result_id", resultID),
		zap.String("type", string(ev.Type)))
	return &ev, nil
}

func (s *stateService) RemoveEvidence(ctx context.Context, objectiveID, resultID, evidenceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.findResult(objectiveID, resultID)
	if err != nil {
		return err
	}
	for i, ev := range res.Evidence {
		if ev.ID == evidenceID {
			res.Evidence = append(res.Evidence[:i], res.Evidence[i+1:]...)
			return s.persist(ctx)
		}
	}
	return fmt.Errorf("evidence %s: %w", evidenceID, ErrNotFound)
}

// findObjective returns a pointer into the live tree; callers hold s.mu.
func (s *stateService) findObjective(id string) *models.Objective {
	for i := range s.state.Objectives {
		if s.state.Objectives[i].ID == id {
			return &s.state.Objectives[i]
		}
	}
	return nil
}

func (s *stateService) findResult(objectiveID, resultID string) (*models.Result, error) {
	obj := s.findObjective(objectiveID)
	if obj == nil {
		return nil, fmt.Errorf("objective %s: %w", objectiveID, ErrNotFound)
	}
	for i := range obj.Results {
		if obj.Results[i].ID == resultID {
			return &obj.Results[i], nil
		}
	}
	return nil, fmt.Errorf("result %s: %w", resultID, ErrNotFound)
}
