package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Precio ────────────────────────────────────────────────────────────────────

// PriceAnalysisDTO respuesta de GET /api/products/:id/price.
// Con HasData=false los agregados van en null: "sin compras" no es precio cero.
type PriceAnalysisDTO struct {
	ProductID       string           `json:"product_id"`
	Window          WindowDTO        `json:"window"`
	HasData         bool             `json:"has_data"`
	Purchases       int              `json:"purchases"`
	WeightedAverage *decimal.Decimal `json:"weighted_average"`
	MinPrice        *decimal.Decimal `json:"min_price"`
	MaxPrice        *decimal.Decimal `json:"max_price"`
	LastPrice       *decimal.Decimal `json:"last_price"`
	LastPurchaseAt  *time.Time       `json:"last_purchase_at"`
	TrendLabel      string           `json:"trend_label"`
	VariationPct    *decimal.Decimal `json:"variation_pct"`
}

// ── Consumo ───────────────────────────────────────────────────────────────────

// MonthlyConsumptionDTO consumo de un mes "YYYY-MM".
type MonthlyConsumptionDTO struct {
	Month    string          `json:"month"`
	Quantity decimal.Decimal `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// TurnoverDTO giro del producto en la ventana.
type TurnoverDTO struct {
	PeriodDays         int              `json:"period_days"`
	Rotations          decimal.Decimal  `json:"rotations"`
	AnnualRotations    decimal.Decimal  `json:"annual_rotations"`
	AverageDaysInStock *decimal.Decimal `json:"average_days_in_stock"`
	Class              string           `json:"class"`
}

// ConsumptionForecastDTO respuesta de GET /api/products/:id/consumption.
type ConsumptionForecastDTO struct {
	ProductID      string                  `json:"product_id"`
	Window         WindowDTO               `json:"window"`
	Months         int                     `json:"months"`
	OnHand         decimal.Decimal         `json:"on_hand"`
	TotalQuantity  decimal.Decimal         `json:"total_quantity"`
	TotalValue     decimal.Decimal         `json:"total_value"`
	MonthlyAverage decimal.Decimal         `json:"monthly_average"`
	DailyAverage   decimal.Decimal         `json:"daily_average"`
	DaysOfStock    *decimal.Decimal        `json:"days_of_stock"` // null = nunca se agota
	ForecastDate   *string                 `json:"forecast_date"` // YYYY-MM-DD o null
	AverageCost    decimal.Decimal         `json:"average_cost"`  // PMM del kardex
	StockValue     decimal.Decimal         `json:"stock_value"`   // saldo * PMM
	Breakdown      []MonthlyConsumptionDTO `json:"breakdown"`
	Turnover       TurnoverDTO             `json:"turnover"`
}

// ── Curva ABC ─────────────────────────────────────────────────────────────────

// ABCEntryDTO posición de un producto en la curva ABC.
type ABCEntryDTO struct {
	ProductID       string          `json:"product_id"`
	Description     string          `json:"description"`
	Rank            int             `json:"rank"`
	Value           decimal.Decimal `json:"value"`
	Share           decimal.Decimal `json:"share"`
	CumulativeShare decimal.Decimal `json:"cumulative_share"`
	Class           string          `json:"class"`
	Turnover        TurnoverDTO     `json:"turnover"`
}

// ABCReportDTO respuesta de GET /api/turnover/abc.
type ABCReportDTO struct {
	Window  WindowDTO       `json:"window"`
	Items   []ABCEntryDTO   `json:"items"`
	Summary GroupSummaryDTO `json:"summary"`
}
