package analytics_test

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-analytics/internal/domain/entity"
	"github.com/jhoicas/estoque-analytics/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: repositorios en memoria, cache y métricas
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

var today = day(2026, 10, 19)

type fakeStockRepo struct {
	records []entity.StockRecord
	calls   int
	err     error
}

func (r *fakeStockRepo) ListStockRecords(_ context.Context, f repository.StockFilter) ([]entity.StockRecord, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	var out []entity.StockRecord
	for _, rec := range r.records {
		if f.LocationID == "" || rec.LocationID == f.LocationID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) ListByProduct(_ context.Context, productID string) ([]entity.StockRecord, error) {
	var out []entity.StockRecord
	for _, rec := range r.records {
		if rec.ProductID == productID {
			out = append(out, rec)
		}
	}
	return out, r.err
}

type fakeMovementRepo struct {
	purchases    []entity.PurchaseEvent
	consumptions []entity.ConsumptionEvent
	movements    []entity.InventoryMovement
	openingQty   decimal.Decimal
	openingValue decimal.Decimal
	byProduct    []repository.ProductConsumptionResult
	calls        int
	err          error
}

func (r *fakeMovementRepo) ListPurchases(_ context.Context, productID string, from, to time.Time) ([]entity.PurchaseEvent, error) {
	var out []entity.PurchaseEvent
	for _, e := range r.purchases {
		if e.ProductID == productID && !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, r.err
}

func (r *fakeMovementRepo) ListConsumptions(_ context.Context, productID string, _, _ time.Time) ([]entity.ConsumptionEvent, error) {
	var out []entity.ConsumptionEvent
	for _, e := range r.consumptions {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out, r.err
}

func (r *fakeMovementRepo) ListMovements(_ context.Context, _ string, _, _ time.Time) ([]entity.InventoryMovement, error) {
	return r.movements, r.err
}

func (r *fakeMovementRepo) OpeningBalance(_ context.Context, _ string, _ time.Time) (decimal.Decimal, decimal.Decimal, error) {
	return r.openingQty, r.openingValue, r.err
}

func (r *fakeMovementRepo) ConsumptionByProduct(_ context.Context, _, _ time.Time) ([]repository.ProductConsumptionResult, error) {
	r.calls++
	return r.byProduct, r.err
}

type fakeFleetRepo struct {
	assets      []entity.Asset
	schedules   []entity.ScheduleInterval
	maintenance []entity.MaintenanceInterval
}

func (r *fakeFleetRepo) ListAssets(context.Context) ([]entity.Asset, error) { return r.assets, nil }

func (r *fakeFleetRepo) GetAsset(_ context.Context, id string) (*entity.Asset, error) {
	for _, a := range r.assets {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *fakeFleetRepo) ListSchedules(_ context.Context, assetID string, _ time.Time) ([]entity.ScheduleInterval, error) {
	var out []entity.ScheduleInterval
	for _, s := range r.schedules {
		if assetID == "" || s.AssetID == assetID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeFleetRepo) ListMaintenance(_ context.Context, assetID string, _ time.Time) ([]entity.MaintenanceInterval, error) {
	var out []entity.MaintenanceInterval
	for _, m := range r.maintenance {
		if assetID == "" || m.AssetID == assetID {
			out = append(out, m)
		}
	}
	return out, nil
}

// memCache serializa a JSON igual que el adaptador Redis.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: make(map[string][]byte)} }

func (c *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *memCache) Set(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	return nil
}

func (c *memCache) InvalidatePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

type recorder struct {
	mu       sync.Mutex
	batches  map[string]int
	statuses map[string]int
}

func newRecorder() *recorder {
	return &recorder{batches: make(map[string]int), statuses: make(map[string]int)}
}

func (r *recorder) ObserveBatch(kind string, _ time.Duration, entities int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches[kind] += entities
}

func (r *recorder) CountStatus(kind, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[kind+":"+status]++
}
