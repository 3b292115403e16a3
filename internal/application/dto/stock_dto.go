package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockHealthQuery filtros de GET /api/stock/health.
type StockHealthQuery struct {
	LocationID string `query:"location_id"`
	GroupBy    string `query:"group_by"` // "" | location
}

// LocationStatusDTO estado de una ubicación del producto.
type LocationStatusDTO struct {
	LocationID        string           `json:"location_id"`
	Status            string           `json:"status"`
	Quantity          *decimal.Decimal `json:"quantity"`      // null = no informada
	MinimumPct        *decimal.Decimal `json:"minimum_pct"`   // cantidad / mínimo * 100
	OccupancyPct      *decimal.Decimal `json:"occupancy_pct"` // cantidad / máximo * 100
	DaysSinceMovement *int             `json:"days_since_movement"`
	Signals           []SignalDTO      `json:"signals"`
}

// StockClassificationDTO estado de un producto. Status UNDEFINED lleva Error.
type StockClassificationDTO struct {
	ProductID     string              `json:"product_id"`
	Status        string              `json:"status"`
	Priority      int                 `json:"priority"`
	TotalQuantity *decimal.Decimal    `json:"total_quantity"`
	TotalValue    decimal.Decimal     `json:"total_value"`
	Locations     []LocationStatusDTO `json:"locations,omitempty"`
	Signals       []SignalDTO         `json:"signals,omitempty"`
	Error         string              `json:"error,omitempty"`
}

// StockHealthDTO respuesta de GET /api/stock/health.
type StockHealthDTO struct {
	ReportID      string                   `json:"report_id"`
	ReferenceDate time.Time                `json:"reference_date"`
	GroupBy       string                   `json:"group_by,omitempty"`
	Items         []StockClassificationDTO `json:"items"`
	Summary       GroupSummaryDTO          `json:"summary"`
	Groups        []GroupSummaryDTO        `json:"groups,omitempty"`
}
