package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/estoque-analytics/internal/domain"
	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
)

// FleetStatus estado exclusivo de un activo en un instante de referencia.
type FleetStatus string

const (
	FleetStopped     FleetStatus = "STOPPED"
	FleetMaintenance FleetStatus = "MAINTENANCE"
	FleetInUse       FleetStatus = "IN_USE"
	FleetScheduled   FleetStatus = "SCHEDULED"
	FleetAvailable   FleetStatus = "AVAILABLE"
)

// FleetStatuses en orden de prioridad.
var FleetStatuses = []FleetStatus{FleetStopped, FleetMaintenance, FleetInUse, FleetScheduled, FleetAvailable}

// Priority número de prioridad: menor = más grave.
func (s FleetStatus) Priority() int {
	switch s {
	case FleetStopped:
		return 1
	case FleetMaintenance:
		return 2
	case FleetInUse:
		return 3
	case FleetScheduled:
		return 4
	case FleetAvailable:
		return 5
	}
	return 99
}

// ── Cancelación y tipo de servicio ───────────────────────────────────────────

// CancellationPredicate decide si un intervalo está cancelado y debe ignorarse.
type CancellationPredicate func(entity.ScheduleInterval) bool

// DefaultCancellation convención del origen: horas en cero (o ausentes), no facturable y retrabajo.
func DefaultCancellation(s entity.ScheduleInterval) bool {
	zeroHours := (s.StartHour == nil || *s.StartHour == 0) && (s.EndHour == nil || *s.EndHour == 0)
	return zeroHours && !s.Billable && s.Rework
}

// ServiceType clasificación de una orden según facturación y retrabajo.
type ServiceType string

const (
	ServiceCancelled     ServiceType = "CANCELLED"
	ServiceConformity    ServiceType = "CONFORMITY"
	ServiceNonConformity ServiceType = "NON_CONFORMITY"
	ServiceComplementary ServiceType = "COMPLEMENTARY"
	ServiceIrregular     ServiceType = "IRREGULAR"
)

// ClassifyService clasifica una orden: no facturable sin retrabajo es conformidad,
// no facturable con retrabajo es no conformidad, facturable sin retrabajo es servicio complementario.
func ClassifyService(s entity.ScheduleInterval, isCancelled CancellationPredicate) ServiceType {
	if isCancelled == nil {
		isCancelled = DefaultCancellation
	}
	switch {
	case isCancelled(s):
		return ServiceCancelled
	case !s.Billable && !s.Rework:
		return ServiceConformity
	case !s.Billable && s.Rework:
		return ServiceNonConformity
	case s.Billable && !s.Rework:
		return ServiceComplementary
	}
	return ServiceIrregular
}

// ── Resolvedor ────────────────────────────────────────────────────────────────

// FleetInput datos de un activo para una evaluación.
type FleetInput struct {
	AssetID     string
	Blocked     bool // bloqueado o inactivo
	Schedules   []entity.ScheduleInterval
	Maintenance []entity.MaintenanceInterval
	Reference   time.Time
}

// FleetClassification resultado por activo.
type FleetClassification struct {
	entity.ClassificationResult
	DrivingIntervalID  string // intervalo que definió IN_USE / SCHEDULED / MAINTENANCE
	NextScheduledStart *time.Time
	ActiveIntervals    int // intervalos no cancelados
	CancelledIntervals int
	ServiceTypes       map[ServiceType]int
}

// FleetResolver clasifica activos con un predicado de cancelación intercambiable.
type FleetResolver struct {
	isCancelled CancellationPredicate
}

// NewFleetResolver crea el resolvedor; nil usa DefaultCancellation.
func NewFleetResolver(isCancelled CancellationPredicate) *FleetResolver {
	if isCancelled == nil {
		isCancelled = DefaultCancellation
	}
	return &FleetResolver{isCancelled: isCancelled}
}

// ClassifyFleet clasifica con el predicado por defecto.
func ClassifyFleet(in FleetInput) (FleetClassification, error) {
	return NewFleetResolver(nil).Classify(in)
}

// Classify evalúa en orden STOPPED, MAINTENANCE, IN_USE, SCHEDULED, AVAILABLE.
// Los intervalos cancelados se descartan antes de cualquier condición.
// Un intervalo con fin anterior al inicio devuelve *domain.InvalidIntervalError.
func (r *FleetResolver) Classify(in FleetInput) (FleetClassification, error) {
	if in.AssetID == "" {
		return FleetClassification{}, fmt.Errorf("activo sin identificador: %w", domain.ErrInvalidInput)
	}
	for _, m := range in.Maintenance {
		if m.AssetID != in.AssetID {
			return FleetClassification{}, fmt.Errorf("mantenimiento %s de otro activo: %w", m.ID, domain.ErrInvalidInput)
		}
		if err := m.Validate(); err != nil {
			return FleetClassification{}, err
		}
	}

	res := FleetClassification{
		ClassificationResult: entity.ClassificationResult{EntityID: in.AssetID},
		ServiceTypes:         make(map[ServiceType]int),
	}

	live := make([]entity.ScheduleInterval, 0, len(in.Schedules))
	for _, s := range in.Schedules {
		if s.AssetID != in.AssetID {
			return FleetClassification{}, fmt.Errorf("agenda %s de otro activo: %w", s.ID, domain.ErrInvalidInput)
		}
		if err := s.Validate(); err != nil {
			return FleetClassification{}, err
		}
		res.ServiceTypes[ClassifyService(s, r.isCancelled)]++
		if r.isCancelled(s) {
			res.CancelledIntervals++
			continue
		}
		live = append(live, s)
	}
	res.ActiveIntervals = len(live)
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].IntendedStart.Before(live[j].IntendedStart)
	})

	ref := in.Reference
	var maintenanceID, inUseID, scheduledID string
	for _, m := range in.Maintenance {
		if m.Active() {
			maintenanceID = m.ID
			break
		}
	}
	for _, s := range live {
		if s.ExecutionEnd != nil {
			continue
		}
		started := s.ExecutionStart != nil
		if inUseID == "" && (started || !s.IntendedStart.After(ref)) {
			inUseID = s.ID
		}
		if !started && s.IntendedStart.After(ref) {
			if scheduledID == "" {
				scheduledID = s.ID
			}
			if res.NextScheduledStart == nil {
				next := s.IntendedStart
				res.NextScheduledStart = &next
			}
		}
	}

	res.Signals = []entity.Signal{
		{Code: string(FleetStopped), Matched: in.Blocked, Detail: "bloqueado o inactivo"},
		{Code: string(FleetMaintenance), Matched: maintenanceID != "", Detail: intervalDetail(maintenanceID)},
		{Code: string(FleetInUse), Matched: inUseID != "", Detail: intervalDetail(inUseID)},
		{Code: string(FleetScheduled), Matched: scheduledID != "", Detail: intervalDetail(scheduledID)},
	}
	drivers := []string{"", maintenanceID, inUseID, scheduledID}

	status := FleetAvailable
	for i, s := range res.Signals {
		if s.Matched {
			status = FleetStatus(s.Code)
			res.DrivingIntervalID = drivers[i]
			break
		}
	}
	res.Signals = append(res.Signals, entity.Signal{Code: string(FleetAvailable), Matched: status == FleetAvailable})
	res.Status = string(status)
	res.Priority = status.Priority()
	return res, nil
}

func intervalDetail(id string) string {
	if id == "" {
		return ""
	}
	return "intervalo=" + id
}
