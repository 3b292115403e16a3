package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-analytics/internal/application/dto"
	engine "github.com/jhoicas/estoque-analytics/internal/domain/analytics"
	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
)

func toSignalDTOs(signals []entity.Signal) []dto.SignalDTO {
	out := make([]dto.SignalDTO, len(signals))
	for i, s := range signals {
		out[i] = dto.SignalDTO{Code: s.Code, Matched: s.Matched, Detail: s.Detail}
	}
	return out
}

// nullable convierte "sin dato" en null para JSON.
func nullable(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func toGroupDTO(g engine.GroupSummary) dto.GroupSummaryDTO {
	return dto.GroupSummaryDTO{
		Key:         g.Key,
		Total:       g.Total,
		Counts:      g.Counts,
		Percentages: g.Percentages,
		Sums:        g.Sums,
	}
}

func toGroupDTOs(groups []engine.GroupSummary) []dto.GroupSummaryDTO {
	out := make([]dto.GroupSummaryDTO, len(groups))
	for i, g := range groups {
		out[i] = toGroupDTO(g)
	}
	return out
}

func toWindowDTO(w engine.Window) dto.WindowDTO {
	return dto.WindowDTO{Start: w.Start, End: w.End}
}

func toTurnoverDTO(t engine.Turnover) dto.TurnoverDTO {
	return dto.TurnoverDTO{
		PeriodDays:         t.PeriodDays,
		Rotations:          t.Rotations,
		AnnualRotations:    t.AnnualRotations,
		AverageDaysInStock: nullable(t.AverageDaysInStock),
		Class:              string(t.Class),
	}
}

func toStockDTO(res engine.StockClassification) dto.StockClassificationDTO {
	locations := make([]dto.LocationStatusDTO, len(res.Locations))
	for i, l := range res.Locations {
		locations[i] = dto.LocationStatusDTO{
			LocationID:        l.LocationID,
			Status:            string(l.Status),
			Quantity:          nullable(l.Quantity),
			MinimumPct:        nullable(l.MinimumPct),
			OccupancyPct:      nullable(l.OccupancyPct),
			DaysSinceMovement: l.DaysSinceMovement,
			Signals:           toSignalDTOs(l.Signals),
		}
	}
	return dto.StockClassificationDTO{
		ProductID:     res.EntityID,
		Status:        res.Status,
		Priority:      res.Priority,
		TotalQuantity: nullable(res.TotalQuantity),
		TotalValue:    res.TotalValue,
		Locations:     locations,
		Signals:       toSignalDTOs(res.Signals),
	}
}

func toFleetDTO(asset entity.Asset, res engine.FleetClassification) dto.FleetClassificationDTO {
	types := make(map[string]int, len(res.ServiceTypes))
	for k, v := range res.ServiceTypes {
		types[string(k)] = v
	}
	return dto.FleetClassificationDTO{
		AssetID:            asset.ID,
		Plate:              asset.Plate,
		Description:        asset.Description,
		Category:           asset.Category,
		Status:             res.Status,
		Priority:           res.Priority,
		DrivingIntervalID:  res.DrivingIntervalID,
		NextScheduledStart: res.NextScheduledStart,
		ActiveIntervals:    res.ActiveIntervals,
		CancelledIntervals: res.CancelledIntervals,
		ServiceTypes:       types,
		Signals:            toSignalDTOs(res.Signals),
	}
}
