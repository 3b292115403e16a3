package analytics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-analytics/internal/domain"
	"github.com/jhoicas/estoque-analytics/internal/domain/analytics"
	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
)

var now = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

func openMaintenance() entity.MaintenanceInterval {
	return entity.MaintenanceInterval{ID: "M1", AssetID: "V1", Status: entity.MaintenanceOpen}
}

func cancelled(id string, start time.Time) entity.ScheduleInterval {
	return entity.NewScheduleInterval(id, "V1", start, entity.WithHours(0, 0), entity.WithBillable(false), entity.WithRework(true))
}

func classifyFleet(t *testing.T, in analytics.FleetInput) analytics.FleetClassification {
	t.Helper()
	if in.AssetID == "" {
		in.AssetID = "V1"
	}
	if in.Reference.IsZero() {
		in.Reference = now
	}
	res, err := analytics.ClassifyFleet(in)
	require.NoError(t, err)
	return res
}

func TestClassifyFleet_BloqueadoDominaTodo(t *testing.T) {
	res := classifyFleet(t, analytics.FleetInput{
		Blocked:     true,
		Maintenance: []entity.MaintenanceInterval{openMaintenance()},
		Schedules: []entity.ScheduleInterval{
			entity.NewScheduleInterval("S1", "V1", now.Add(-time.Hour), entity.WithExecutionStart(now.Add(-time.Hour))),
		},
	})
	assert.Equal(t, string(analytics.FleetStopped), res.Status)
	assert.Equal(t, 1, res.Priority)
	assert.Empty(t, res.DrivingIntervalID)
}

func TestClassifyFleet_Mantenimiento(t *testing.T) {
	res := classifyFleet(t, analytics.FleetInput{
		Maintenance: []entity.MaintenanceInterval{openMaintenance()},
		Schedules:   []entity.ScheduleInterval{entity.NewScheduleInterval("S1", "V1", now.Add(-time.Hour))},
	})
	assert.Equal(t, string(analytics.FleetMaintenance), res.Status)
	assert.Equal(t, "M1", res.DrivingIntervalID)
}

func TestClassifyFleet_MantenimientoCerradoNoCuenta(t *testing.T) {
	end := now.Add(-time.Hour)
	start := now.Add(-48 * time.Hour)
	res := classifyFleet(t, analytics.FleetInput{
		Maintenance: []entity.MaintenanceInterval{
			{ID: "M1", AssetID: "V1", Status: entity.MaintenanceInProgress, StartDate: &start, EndDate: &end},
			{ID: "M2", AssetID: "V1", Status: entity.MaintenanceCancelled},
		},
	})
	assert.Equal(t, string(analytics.FleetAvailable), res.Status)
}

func TestClassifyFleet_EnUso(t *testing.T) {
	t.Run("ejecución iniciada sin terminar", func(t *testing.T) {
		res := classifyFleet(t, analytics.FleetInput{Schedules: []entity.ScheduleInterval{
			entity.NewScheduleInterval("S1", "V1", now.Add(2*time.Hour), entity.WithExecutionStart(now.Add(-time.Minute))),
		}})
		assert.Equal(t, string(analytics.FleetInUse), res.Status)
		assert.Equal(t, "S1", res.DrivingIntervalID)
	})

	t.Run("inicio previsto alcanzado", func(t *testing.T) {
		res := classifyFleet(t, analytics.FleetInput{Schedules: []entity.ScheduleInterval{
			entity.NewScheduleInterval("S1", "V1", now),
		}})
		assert.Equal(t, string(analytics.FleetInUse), res.Status)
	})

	t.Run("ejecución terminada libera el activo", func(t *testing.T) {
		res := classifyFleet(t, analytics.FleetInput{Schedules: []entity.ScheduleInterval{
			entity.NewScheduleInterval("S1", "V1", now.Add(-3*time.Hour),
				entity.WithExecutionStart(now.Add(-3*time.Hour)), entity.WithExecutionEnd(now.Add(-time.Hour))),
		}})
		assert.Equal(t, string(analytics.FleetAvailable), res.Status)
	})
}

func TestClassifyFleet_Agendado(t *testing.T) {
	res := classifyFleet(t, analytics.FleetInput{Schedules: []entity.ScheduleInterval{
		entity.NewScheduleInterval("S2", "V1", now.Add(48*time.Hour)),
		entity.NewScheduleInterval("S1", "V1", now.Add(24*time.Hour)),
	}})
	assert.Equal(t, string(analytics.FleetScheduled), res.Status)
	assert.Equal(t, "S1", res.DrivingIntervalID, "el más próximo")
	require.NotNil(t, res.NextScheduledStart)
	assert.True(t, res.NextScheduledStart.Equal(now.Add(24*time.Hour)))
	assert.Equal(t, 2, res.ActiveIntervals)
}

func TestClassifyFleet_CanceladosNoCuentan(t *testing.T) {
	res := classifyFleet(t, analytics.FleetInput{Schedules: []entity.ScheduleInterval{
		cancelled("S1", now.Add(-time.Hour)),
		cancelled("S2", now.Add(time.Hour)),
	}})
	assert.Equal(t, string(analytics.FleetAvailable), res.Status)
	assert.Nil(t, res.NextScheduledStart)
	assert.Equal(t, 2, res.CancelledIntervals)
	assert.Equal(t, 0, res.ActiveIntervals)
	assert.Equal(t, 2, res.ServiceTypes[analytics.ServiceCancelled])
}

func TestClassifyFleet_CancelacionRequiereLasTresMarcas(t *testing.T) {
	billable := entity.NewScheduleInterval("S1", "V1", now.Add(-time.Hour), entity.WithHours(0, 0), entity.WithBillable(true), entity.WithRework(true))
	withHours := entity.NewScheduleInterval("S2", "V1", now.Add(-time.Hour), entity.WithHours(800, 1700), entity.WithRework(true))

	assert.False(t, analytics.DefaultCancellation(billable))
	assert.False(t, analytics.DefaultCancellation(withHours))
	assert.True(t, analytics.DefaultCancellation(entity.NewScheduleInterval("S3", "V1", now, entity.WithRework(true))), "horas ausentes equivalen a cero")
}

func TestFleetResolver_PredicadoInyectable(t *testing.T) {
	resolver := analytics.NewFleetResolver(func(s entity.ScheduleInterval) bool { return s.ID == "skip" })

	res, err := resolver.Classify(analytics.FleetInput{
		AssetID:   "V1",
		Reference: now,
		Schedules: []entity.ScheduleInterval{
			entity.NewScheduleInterval("skip", "V1", now.Add(-time.Hour)),
			cancelled("S1", now.Add(time.Hour)),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, string(analytics.FleetScheduled), res.Status, "la convención por defecto ya no aplica")
	assert.Equal(t, "S1", res.DrivingIntervalID)
}

func TestClassifyFleet_IntervaloInvalido(t *testing.T) {
	_, err := analytics.ClassifyFleet(analytics.FleetInput{
		AssetID:   "V1",
		Reference: now,
		Schedules: []entity.ScheduleInterval{
			entity.NewScheduleInterval("S1", "V1", now, entity.WithExecutionStart(now), entity.WithExecutionEnd(now.Add(-time.Hour))),
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInterval))

	var iie *domain.InvalidIntervalError
	require.True(t, errors.As(err, &iie))
	assert.Equal(t, "S1", iie.IntervalID)
}

func TestClassifyFleet_IntervaloDeOtroActivo(t *testing.T) {
	_, err := analytics.ClassifyFleet(analytics.FleetInput{
		AssetID:   "V1",
		Reference: now,
		Schedules: []entity.ScheduleInterval{entity.NewScheduleInterval("S1", "V2", now)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClassifyService(t *testing.T) {
	cases := []struct {
		billable, rework bool
		want             analytics.ServiceType
	}{
		{false, false, analytics.ServiceConformity},
		{true, false, analytics.ServiceComplementary},
		{true, true, analytics.ServiceIrregular},
	}
	for _, tc := range cases {
		s := entity.NewScheduleInterval("S", "V1", now, entity.WithHours(800, 1000), entity.WithBillable(tc.billable), entity.WithRework(tc.rework))
		assert.Equal(t, tc.want, analytics.ClassifyService(s, nil))
	}

	withHours := entity.NewScheduleInterval("S", "V1", now, entity.WithHours(800, 1000), entity.WithRework(true))
	assert.Equal(t, analytics.ServiceNonConformity, analytics.ClassifyService(withHours, nil))
	assert.Equal(t, analytics.ServiceCancelled, analytics.ClassifyService(cancelled("S", now), nil))
}

func TestClassifyFleet_Idempotente(t *testing.T) {
	in := analytics.FleetInput{
		AssetID:     "V1",
		Reference:   now,
		Maintenance: []entity.MaintenanceInterval{openMaintenance()},
		Schedules:   []entity.ScheduleInterval{entity.NewScheduleInterval("S1", "V1", now.Add(time.Hour))},
	}
	a, err := analytics.ClassifyFleet(in)
	require.NoError(t, err)
	b, err := analytics.ClassifyFleet(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
