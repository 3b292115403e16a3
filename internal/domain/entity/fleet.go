package entity

import (
	"time"

	"github.com/jhoicas/estoque-analytics/internal/domain"
)

// Asset representa un vehículo o equipo de la flota.
type Asset struct {
	ID          string
	Plate       string
	Description string
	Category    string
	Blocked     bool
	Active      bool
}

// Inoperative indica que el activo está bloqueado o inactivo.
func (a Asset) Inoperative() bool {
	return a.Blocked || !a.Active
}

// ScheduleInterval es una orden de servicio (diaria) agendada para un activo.
// StartHour/EndHour siguen el formato HHMM del origen; nil cuando no se informaron.
type ScheduleInterval struct {
	ID             string
	AssetID        string
	IntendedStart  time.Time
	ExecutionStart *time.Time
	ExecutionEnd   *time.Time
	StartHour      *int
	EndHour        *int
	Billable       bool
	Rework         bool
}

// ScheduleOption completa los campos opcionales de un ScheduleInterval.
type ScheduleOption func(*ScheduleInterval)

// NewScheduleInterval construye un intervalo con sus campos obligatorios.
func NewScheduleInterval(id, assetID string, intendedStart time.Time, opts ...ScheduleOption) ScheduleInterval {
	s := ScheduleInterval{ID: id, AssetID: assetID, IntendedStart: intendedStart}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func WithExecutionStart(t time.Time) ScheduleOption {
	return func(s *ScheduleInterval) { s.ExecutionStart = &t }
}

func WithExecutionEnd(t time.Time) ScheduleOption {
	return func(s *ScheduleInterval) { s.ExecutionEnd = &t }
}

func WithHours(start, end int) ScheduleOption {
	return func(s *ScheduleInterval) {
		s.StartHour = &start
		s.EndHour = &end
	}
}

func WithBillable(billable bool) ScheduleOption {
	return func(s *ScheduleInterval) { s.Billable = billable }
}

func WithRework(rework bool) ScheduleOption {
	return func(s *ScheduleInterval) { s.Rework = rework }
}

// Validate rechaza ejecuciones que terminan antes de empezar.
func (s ScheduleInterval) Validate() error {
	if s.ExecutionStart != nil && s.ExecutionEnd != nil && s.ExecutionEnd.Before(*s.ExecutionStart) {
		return &domain.InvalidIntervalError{IntervalID: s.ID, Start: *s.ExecutionStart, End: *s.ExecutionEnd}
	}
	return nil
}

// Estados de una orden de mantenimiento.
const (
	MaintenanceOpen       = "OPEN"
	MaintenanceInProgress = "IN_PROGRESS"
	MaintenanceClosed     = "CLOSED"
	MaintenanceCancelled  = "CANCELLED"
)

// MaintenanceInterval es una orden de mantenimiento de un activo.
type MaintenanceInterval struct {
	ID        string
	AssetID   string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time // nil mientras está abierta
}

// Active indica si la orden mantiene el activo en taller: abierta/en curso y sin fecha de fin.
func (m MaintenanceInterval) Active() bool {
	return (m.Status == MaintenanceOpen || m.Status == MaintenanceInProgress) && m.EndDate == nil
}

// Validate rechaza órdenes con fin anterior al inicio.
func (m MaintenanceInterval) Validate() error {
	if m.StartDate != nil && m.EndDate != nil && m.EndDate.Before(*m.StartDate) {
		return &domain.InvalidIntervalError{IntervalID: m.ID, Start: *m.StartDate, End: *m.EndDate}
	}
	return nil
}
