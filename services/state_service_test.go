package services

import (
	"context"
	"path/filepath"
	"testing"

	"tawthiqproject/models"
	repository "tawthiqproject/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func newTestService(t *testing.T) (StateService, repository.StateRepository) {
	t.Helper()
	repo := repository.NewFileStateRepository(filepath.Join(t.TempDir(), "state.json"))
	svc, err := NewStateService(context.Background(), repo, zap.NewNop())
	require.NoError(t, err)
	return svc, repo
}

// addWeightedObjective creates an objective and sets its weight.
func addWeightedObjective(t *testing.T, svc StateService, weight int) *models.Objective {
	t.Helper()
	ctx := context.Background()
	obj, err := svc.AddObjective(ctx)
	require.NoError(t, err)
	obj, err = svc.UpdateObjective(ctx, obj.ID, models.ObjectiveUpdate{Weight: intPtr(weight)})
	require.NoError(t, err)
	return obj
}

func TestAddObjectiveDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	obj, err := svc.AddObjective(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, obj.ID)
	assert.Empty(t, obj.Text)
	assert.Equal(t, models.ClassificationTasks, obj.Classification)
	assert.Zero(t, obj.Weight)
	assert.Empty(t, obj.Results)
}

func TestAddObjectiveUniqueIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.AddObjective(ctx)
	require.NoError(t, err)
	b, err := svc.AddObjective(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestAddObjectiveBlockedAtFullWeight(t *testing.T) {
	svc, _ := newTestService(t)

	addWeightedObjective(t, svc, 100)

	_, err := svc.AddObjective(context.Background())
	assert.ErrorIs(t, err, ErrWeightLimit)
	assert.Len(t, svc.Snapshot().Objectives, 1)
}

func TestUpdateObjectiveMergesPartialFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	obj := addWeightedObjective(t, svc, 50)

	updated, err := svc.UpdateObjective(ctx, obj.ID, models.ObjectiveUpdate{Text: strPtr("هدف تجريبي")})
	require.NoError(t, err)

	// Text changed, weight untouched.
	assert.Equal(t, "هدف تجريبي", updated.Text)
	assert.Equal(t, 50, updated.Weight)
}

func TestUpdateObjectiveUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateObjective(context.Background(), "missing", models.ObjectiveUpdate{Weight: intPtr(10)})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, svc.Snapshot().Objectives)
}

func TestAddResultBlockedWhenWeightsMatch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	obj := addWeightedObjective(t, svc, 40)

	res, err := svc.AddResult(ctx, obj.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IndicatorNumber, res.IndicatorType)

	_, err = svc.UpdateResult(ctx, obj.ID, res.ID, models.ResultUpdate{Weight: intPtr(40)})
	require.NoError(t, err)

	_, err = svc.AddResult(ctx, obj.ID)
	assert.ErrorIs(t, err, ErrResultWeightLimit)
	assert.Len(t, svc.Snapshot().Objectives[0].Results, 1)
}

func TestAddResultBlockedOnZeroWeightObjective(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	obj, err := svc.AddObjective(ctx)
	require.NoError(t, err)

	_, err = svc.AddResult(ctx, obj.ID)
	assert.ErrorIs(t, err, ErrResultWeightLimit)
}

func TestDeleteObjectiveCascades(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	obj := addWeightedObjective(t, svc, 50)
	res, err := svc.AddResult(ctx, obj.ID)
	require.NoError(t, err)
	_, err = svc.AddEvidence(ctx, obj.ID, res.ID, models.EvidenceInput{Type: models.EvidenceLink, Content: "example.com"})
	require.NoError(t, err)

	keep := addWeightedObjective(t, svc, 50)

	require.NoError(t, svc.DeleteObjective(ctx, obj.ID))

	state := svc.Snapshot()
	require.Len(t, state.Objectives, 1)
	assert.Equal(t, keep.ID, state.Objectives[0].ID)

	// Nothing under the deleted objective is reachable anymore.
	_, err = svc.UpdateResult(ctx, obj.ID, res.ID, models.ResultUpdate{Name: strPtr("orphan")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteResultRemovesEvidence(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	obj := addWeightedObjective(t, svc, 30)
	res, err := svc.AddResult(ctx, obj.ID)
	require.NoError(t, err)
	ev, err := svc.AddEvidence(ctx, obj.ID, res.ID, models.EvidenceInput{Type: models.EvidenceText, Content: "transcript"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteResult(ctx, obj.ID, res.ID))

	assert.Empty(t, svc.Snapshot().Objectives[0].Results)
	err = svc.RemoveEvidence(ctx, obj.ID, res.ID, ev.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEvidenceAppendAndRemove(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	obj := addWeightedObjective(t, svc, 30)
	res, err := svc.AddResult(ctx, obj.ID)
	require.NoError(t, err)

	link, err := svc.AddEvidence(ctx, obj.ID, res.ID, models.EvidenceInput{Type: models.EvidenceLink, Content: "example.com", Notes: "homepage"})
	require.NoError(t, err)
	pdf, err := svc.AddBinaryEvidence(ctx, obj.ID, res.ID, models.EvidencePDF, "data:application/pdf;base64,JVBERi0=", "report.pdf")
	require.NoError(t, err)

	evidence := svc.Snapshot().Objectives[0].Results[0].Evidence
	require.Len(t, evidence, 2)
	assert.Equal(t, link.ID, evidence[0].ID)
	assert.Equal(t, pdf.ID, evidence[1].ID)
	assert.Equal(t, "report.pdf", evidence[1].Notes)

	require.NoError(t, svc.RemoveEvidence(ctx, obj.ID, res.ID, link.ID))
	evidence = svc.Snapshot().Objectives[0].Results[0].Evidence
	require.Len(t, evidence, 1)
	assert.Equal(t, pdf.ID, evidence[0].ID)
}

func TestUpdateProfileFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, "name", "محمد بن سعيد")
	require.NoError(t, err)
	_, err = svc.UpdateProfile(ctx, "governorate", "مسقط")
	require.NoError(t, err)
	profile, err := svc.UpdateProfile(ctx, "period", "SECOND")
	require.NoError(t, err)

	assert.Equal(t, "محمد بن سعيد", profile.Name)
	assert.Equal(t, "مسقط", profile.Governorate)
	assert.Equal(t, models.PeriodSecond, profile.Period)

	_, err = svc.UpdateProfile(ctx, "unknown", "value")
	assert.Error(t, err)
}

func TestEveryCommandPersists(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	obj := addWeightedObjective(t, svc, 100)
	res, err := svc.AddResult(ctx, obj.ID)
	require.NoError(t, err)
	_, err = svc.UpdateResult(ctx, obj.ID, res.ID, models.ResultUpdate{Name: strPtr("Result A"), Weight: intPtr(100)})
	require.NoError(t, err)

	// A fresh load must see exactly what the last command left behind.
	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Objectives, 1)
	require.Len(t, loaded.Objectives[0].Results, 1)
	assert.Equal(t, "Result A", loaded.Objectives[0].Results[0].Name)
	assert.Equal(t, 100, loaded.Objectives[0].Results[0].Weight)
}

func TestSnapshotDoesNotExposeLiveState(t *testing.T) {
	svc, _ := newTestService(t)

	addWeightedObjective(t, svc, 10)

	snap := svc.Snapshot()
	snap.Objectives[0].Weight = 99

	assert.Equal(t, 10, svc.Snapshot().Objectives[0].Weight)
}
