package services

import (
	"context"
	"errors"

	"tawthiqproject/models"
	"tawthiqproject/utils"
)

// ErrWeightsUnbalanced blocks the report whenever the objective weights do
// not total exactly 100.
var ErrWeightsUnbalanced = errors.New("objective weights do not total 100")

// ComposeReport projects the state into the renderable report structure.
// It is pure: no mutation, no I/O. The sole precondition is balanced weights.
func ComposeReport(state *models.AppState) (*models.ReportData, error) {
	if !models.ObjectivesComplete(state.Objectives) {
		return nil, ErrWeightsUnbalanced
	}

	report := &models.ReportData{
		Header: models.ReportHeader{
			Name:        state.Profile.Name,
			JobTitle:    state.Profile.JobTitle,
			Institution: state.Profile.Institution,
			ManagerName: state.Profile.ManagerName,
			Directorate: models.DirectorateName(state.Profile.Governorate),
			PeriodLabel: state.Profile.Period.Label(),
			Year:        state.Profile.Year,
			SchoolLogo:  state.Profile.SchoolLogo,
		},
		Objectives: make([]models.ReportObjective, 0, len(state.Objectives)),
	}

	for i, obj := range state.Objectives {
		row := models.ReportObjective{
			Index:               i + 1,
			Text:                obj.Text,
			ClassificationLabel: models.ClassificationLabels[obj.Classification],
			Weight:              obj.Weight,
			Results:             make([]models.ReportResult, 0, len(obj.Results)),
		}
		for _, res := range obj.Results {
			resRow := models.ReportResult{
				Name:              res.Name,
				Weight:            res.Weight,
				TargetLow:         res.TargetLow,
				TargetExpected:    res.TargetExpected,
				TargetHigh:        res.TargetHigh,
				ActualPerformance: res.ActualPerformance,
				Evidence:          make([]models.ReportEvidence, 0, len(res.Evidence)),
			}
			for _, ev := range res.Evidence {
				entry := models.ReportEvidence{
					Type:    ev.Type,
					Content: ev.Content,
					Notes:   ev.Notes,
				}
				if ev.Type == models.EvidenceLink || ev.Type == models.EvidenceVideo {
					entry.URL = utils.EnsureURLProtocol(ev.Content)
				}
				resRow.Evidence = append(resRow.Evidence, entry)
			}
			row.Results = append(row.Results, resRow)
		}
		report.Objectives = append(report.Objectives, row)
	}

	return report, nil
}

// ReportService builds the full report view: the composed projection plus
// the performance narrative.
type ReportService interface {
	View(ctx context.Context) (*models.ReportView, error)
}

type reportService struct {
	state     StateService
	narrative NarrativeService
}

func NewReportService(state StateService, narrative NarrativeService) ReportService {
	return &reportService{
		state:     state,
		narrative: narrative,
	}
}

func (s *reportService) View(ctx context.Context) (*models.ReportView, error) {
	snapshot := s.state.Snapshot()

	report, err := ComposeReport(snapshot)
	if err != nil {
		return nil, err
	}

	return &models.ReportView{
		Report:    *report,
		Narrative: s.narrative.Generate(ctx, snapshot.Profile, snapshot.Objectives),
	}, nil
}
