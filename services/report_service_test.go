package services

import (
	"context"
	"testing"

	"tawthiqproject/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func stateWithWeights(weights ...int) *models.AppState {
	state := models.NewAppState()
	for _, w := range weights {
		state.Objectives = append(state.Objectives, models.Objective{Weight: w})
	}
	return state
}

func TestComposeReportBlockedOnUnbalancedWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights []int
	}{
		{name: "no objectives", weights: nil},
		{name: "total 0", weights: []int{0, 0}},
		{name: "total 99", weights: []int{50, 49}},
		{name: "total 101", weights: []int{50, 51}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComposeReport(stateWithWeights(tt.weights...))
			assert.ErrorIs(t, err, ErrWeightsUnbalanced)
		})
	}
}

func TestComposeReportAtExactly100(t *testing.T) {
	state := stateWithWeights(60, 40)
	state.Profile = models.EmployeeProfile{
		Name:        "محمد",
		JobTitle:    "معلم",
		Governorate: "ظفار",
		Period:      models.PeriodSecond,
		Year:        "2026",
	}
	state.Objectives[0].Text = "الهدف الأول"
	state.Objectives[0].Classification = models.ClassificationAnnualPlan
	state.Objectives[1].Text = "الهدف الثاني"
	state.Objectives[1].Classification = models.ClassificationDevelopment

	report, err := ComposeReport(state)
	require.NoError(t, err)

	assert.Equal(t, "المديرية العامة للتربية والتعليم بمحافظة ظفار", report.Header.Directorate)
	assert.Equal(t, "الثانية", report.Header.PeriodLabel)

	require.Len(t, report.Objectives, 2)
	assert.Equal(t, 1, report.Objectives[0].Index)
	assert.Equal(t, 2, report.Objectives[1].Index)
	assert.Equal(t, "الخطة السنوية", report.Objectives[0].ClassificationLabel)
	assert.Equal(t, "تطوير وتحسين العمل", report.Objectives[1].ClassificationLabel)
}

func TestComposeReportNormalizesEvidenceURLs(t *testing.T) {
	state := stateWithWeights(100)
	state.Objectives[0].Results = []models.Result{
		{
			ID: "res-1",
			Evidence: []models.Evidence{
				{ID: "ev-1", Type: models.EvidenceLink, Content: "example.com"},
				{ID: "ev-2", Type: models.EvidenceVideo, Content: "http://x"},
				{ID: "ev-3", Type: models.EvidenceImage, Content: "data:image/png;base64,AAAA"},
				{ID: "ev-4", Type: models.EvidenceText, Content: "transcript"},
			},
		},
	}

	report, err := ComposeReport(state)
	require.NoError(t, err)

	evidence := report.Objectives[0].Results[0].Evidence
	require.Len(t, evidence, 4)
	assert.Equal(t, "https://example.com", evidence[0].URL)
	assert.Equal(t, "http://x", evidence[1].URL)
	// Only link and video evidence carries a URL.
	assert.Empty(t, evidence[2].URL)
	assert.Empty(t, evidence[3].URL)
	// Stored content stays as saved.
	assert.Equal(t, "example.com", evidence[0].Content)
}

func TestComposeReportDoesNotMutateState(t *testing.T) {
	state := stateWithWeights(100)
	state.Objectives[0].Results = []models.Result{
		{ID: "res-1", Evidence: []models.Evidence{{ID: "ev-1", Type: models.EvidenceLink, Content: "example.com"}}},
	}

	_, err := ComposeReport(state)
	require.NoError(t, err)

	assert.Equal(t, "example.com", state.Objectives[0].Results[0].Evidence[0].Content)
}

// Full scenario: one objective at 100 with one result and one link evidence
// produces a report whose rendered link carries the secure scheme.
func TestReportEndToEnd(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	obj, err := svc.AddObjective(ctx)
	require.NoError(t, err)
	_, err = svc.UpdateObjective(ctx, obj.ID, models.ObjectiveUpdate{Text: strPtr("Goal A"), Weight: intPtr(100)})
	require.NoError(t, err)

	res, err := svc.AddResult(ctx, obj.ID)
	require.NoError(t, err)
	_, err = svc.UpdateResult(ctx, obj.ID, res.ID, models.ResultUpdate{
		Name:              strPtr("Result A"),
		Weight:            intPtr(100),
		ActualPerformance: strPtr("95%"),
	})
	require.NoError(t, err)

	_, err = svc.AddEvidence(ctx, obj.ID, res.ID, models.EvidenceInput{Type: models.EvidenceLink, Content: "example.org/proof"})
	require.NoError(t, err)

	state := svc.Snapshot()
	assert.Equal(t, 100, models.TotalWeight(state.Objectives))

	reports := NewReportService(svc, NewNarrativeService(nil, zap.NewNop()))
	view, err := reports.View(ctx)
	require.NoError(t, err)

	require.Len(t, view.Report.Objectives, 1)
	row := view.Report.Objectives[0]
	assert.Equal(t, "Goal A", row.Text)
	require.Len(t, row.Results, 1)
	assert.Equal(t, "Result A", row.Results[0].Name)
	assert.Equal(t, "95%", row.Results[0].ActualPerformance)
	require.Len(t, row.Results[0].Evidence, 1)
	assert.Equal(t, "https://example.org/proof", row.Results[0].Evidence[0].URL)
	assert.NotEmpty(t, view.Narrative)
}

func TestReportServiceBlockedPropagates(t *testing.T) {
	svc, _ := newTestService(t)

	reports := NewReportService(svc, NewNarrativeService(nil, zap.NewNop()))
	_, err := reports.View(context.Background())
	assert.ErrorIs(t, err, ErrWeightsUnbalanced)
}
