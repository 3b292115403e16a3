package dto

import "time"

// FleetStatusQuery filtros de GET /api/fleet/status.
type FleetStatusQuery struct {
	At      string `query:"at"`       // RFC3339; vacío = ahora
	GroupBy string `query:"group_by"` // "" | category
}

// FleetClassificationDTO estado de un activo. Status UNDEFINED lleva Error.
type FleetClassificationDTO struct {
	AssetID            string         `json:"asset_id"`
	Plate              string         `json:"plate,omitempty"`
	Description        string         `json:"description,omitempty"`
	Category           string         `json:"category,omitempty"`
	Status             string         `json:"status"`
	Priority           int            `json:"priority"`
	DrivingIntervalID  string         `json:"driving_interval_id,omitempty"`
	NextScheduledStart *time.Time     `json:"next_scheduled_start"`
	ActiveIntervals    int            `json:"active_intervals"`
	CancelledIntervals int            `json:"cancelled_intervals"`
	ServiceTypes       map[string]int `json:"service_types,omitempty"`
	Signals            []SignalDTO    `json:"signals,omitempty"`
	Error              string         `json:"error,omitempty"`
}

// FleetStatusDTO respuesta de GET /api/fleet/status.
type FleetStatusDTO struct {
	Reference time.Time                `json:"reference"`
	GroupBy   string                   `json:"group_by,omitempty"`
	Items     []FleetClassificationDTO `json:"items"`
	Summary   GroupSummaryDTO          `json:"summary"`
	Groups    []GroupSummaryDTO        `json:"groups,omitempty"`
}
