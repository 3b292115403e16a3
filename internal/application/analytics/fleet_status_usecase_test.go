package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-analytics/internal/application/analytics"
	"github.com/jhoicas/estoque-analytics/internal/domain"
	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
	"github.com/jhoicas/estoque-analytics/pkg/logger"
)

var now = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

func fleetFixture() *fakeFleetRepo {
	started := now.Add(-2 * time.Hour)
	badStart := now.Add(-1 * time.Hour)
	badEnd := now.Add(-3 * time.Hour)
	wsStart := now.AddDate(0, 0, -1)
	return &fakeFleetRepo{
		assets: []entity.Asset{
			{ID: "A1", Plate: "ABC-1", Category: "camion", Active: true, Blocked: true},
			{ID: "A2", Plate: "ABC-2", Category: "camion", Active: true},
			{ID: "A3", Plate: "ABC-3", Category: "grua", Active: true},
			{ID: "A4", Plate: "ABC-4", Category: "grua", Active: true},
			{ID: "A5", Plate: "ABC-5", Category: "grua", Active: true},
		},
		schedules: []entity.ScheduleInterval{
			entity.NewScheduleInterval("S1", "A2", now.Add(-3*time.Hour), entity.WithExecutionStart(started)),
			entity.NewScheduleInterval("S2", "A3", now.Add(4*time.Hour)),
			entity.NewScheduleInterval("S3", "A3", now.Add(2*time.Hour), entity.WithRework(true)),
			entity.NewScheduleInterval("S4", "A5", now.Add(-4*time.Hour),
				entity.WithExecutionStart(badStart), entity.WithExecutionEnd(badEnd)),
			entity.NewScheduleInterval("S9", "GHOST", now),
		},
		maintenance: []entity.MaintenanceInterval{
			{ID: "M1", AssetID: "A4", Status: entity.MaintenanceOpen, StartDate: &wsStart},
		},
	}
}

func newFleetUC(repo *fakeFleetRepo) (*analytics.FleetStatusUseCase, *recorder) {
	rec := newRecorder()
	return analytics.NewFleetStatusUseCase(repo, nil, rec, logger.Nop(), analytics.DefaultSettings()), rec
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluate
// ──────────────────────────────────────────────────────────────────────────────

func TestFleetStatus_EstadoPorActivo(t *testing.T) {
	uc, rec := newFleetUC(fleetFixture())

	report, err := uc.Evaluate(context.Background(), "", now)
	require.NoError(t, err)
	require.Len(t, report.Items, 5)

	want := []string{"STOPPED", "IN_USE", "SCHEDULED", "MAINTENANCE", analytics.StatusUndefined}
	for i, status := range want {
		assert.Equal(t, status, report.Items[i].Status, "activo %s", report.Items[i].AssetID)
	}

	a3 := report.Items[2]
	assert.Equal(t, "S2", a3.DrivingIntervalID, "S3 es un servicio cancelado (retrabajo sin horas)")
	assert.Equal(t, 1, a3.CancelledIntervals)
	assert.Equal(t, 1, a3.ActiveIntervals)
	require.NotNil(t, a3.NextScheduledStart)
	assert.True(t, a3.NextScheduledStart.Equal(now.Add(4*time.Hour)))

	assert.Contains(t, report.Items[4].Error, "S4", "el intervalo inválido se informa")

	assert.Equal(t, 5, report.Summary.Total)
	assert.Equal(t, 0, report.Summary.Counts["AVAILABLE"])
	assert.Equal(t, 1, report.Summary.Counts[analytics.StatusUndefined])
	assert.Equal(t, 5, rec.batches["fleet"])
}

func TestFleetStatus_AgrupadoPorCategoria(t *testing.T) {
	uc, _ := newFleetUC(fleetFixture())

	report, err := uc.Evaluate(context.Background(), analytics.GroupByCategory, now)
	require.NoError(t, err)
	require.Len(t, report.Groups, 2)
	assert.Equal(t, "camion", report.Groups[0].Key)
	assert.Equal(t, 2, report.Groups[0].Total)
	assert.Equal(t, "grua", report.Groups[1].Key)
	assert.Equal(t, 1, report.Groups[1].Counts["MAINTENANCE"])
	assert.True(t, report.Groups[1].Sums["active_intervals"].Equal(dec("1")))
}

func TestFleetStatus_GroupByInvalido(t *testing.T) {
	uc, _ := newFleetUC(fleetFixture())
	_, err := uc.Evaluate(context.Background(), "location", now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFleetStatus_SinActivos(t *testing.T) {
	uc, _ := newFleetUC(&fakeFleetRepo{})
	report, err := uc.Evaluate(context.Background(), "", now)
	require.NoError(t, err)
	assert.Empty(t, report.Items)
	assert.Equal(t, 0, report.Summary.Total)
	assert.True(t, report.Summary.Percentages["AVAILABLE"].IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// GetAsset
// ──────────────────────────────────────────────────────────────────────────────

func TestFleetStatus_GetAsset(t *testing.T) {
	uc, _ := newFleetUC(fleetFixture())
	ctx := context.Background()

	item, err := uc.GetAsset(ctx, "A2", now)
	require.NoError(t, err)
	assert.Equal(t, "IN_USE", item.Status)
	assert.Equal(t, "ABC-2", item.Plate)

	_, err = uc.GetAsset(ctx, "A5", now)
	assert.ErrorIs(t, err, domain.ErrInvalidInterval, "en consulta individual el error se propaga")

	_, err = uc.GetAsset(ctx, "NOPE", now)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
