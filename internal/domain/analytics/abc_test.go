package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-analytics/internal/domain/analytics"
)

func classes(entries []analytics.ABCEntry) map[string]analytics.ABCClass {
	out := make(map[string]analytics.ABCClass, len(entries))
	for _, e := range entries {
		out[e.EntityID] = e.Class
	}
	return out
}

func TestClassifyTurnover_OchentaQuinceCinco(t *testing.T) {
	entries := analytics.ClassifyTurnover([]analytics.ValuedEntity{
		{EntityID: "c", Value: dec("5")},
		{EntityID: "a", Value: dec("80")},
		{EntityID: "b", Value: dec("15")},
	}, analytics.DefaultABCThresholds)

	require.Len(t, entries, 3)
	assert.Equal(t, map[string]analytics.ABCClass{"a": analytics.ClassA, "b": analytics.ClassB, "c": analytics.ClassC}, classes(entries))

	assert.Equal(t, "a", entries[0].EntityID, "ordenado de mayor a menor")
	assert.Equal(t, 1, entries[0].Rank)
	assert.True(t, entries[0].CumulativeShare.Equal(dec("80")))
	assert.True(t, entries[1].CumulativeShare.Equal(dec("95")))
	assert.True(t, entries[2].CumulativeShare.Equal(dec("100")))
	assert.True(t, entries[2].Share.Equal(dec("5")))
}

func TestClassifyTurnover_FronteraQuedaEnClaseEstricta(t *testing.T) {
	entries := analytics.ClassifyTurnover([]analytics.ValuedEntity{
		{EntityID: "p1", Value: dec("50")},
		{EntityID: "p2", Value: dec("30")},
		{EntityID: "p3", Value: dec("15")},
		{EntityID: "p4", Value: dec("5")},
	}, analytics.DefaultABCThresholds)

	got := classes(entries)
	assert.Equal(t, analytics.ClassA, got["p1"])
	assert.Equal(t, analytics.ClassA, got["p2"], "acumulado 80% exacto es A")
	assert.Equal(t, analytics.ClassB, got["p3"], "acumulado 95% exacto es B")
	assert.Equal(t, analytics.ClassC, got["p4"])
}

func TestClassifyTurnover_TotalCeroTodoC(t *testing.T) {
	entries := analytics.ClassifyTurnover([]analytics.ValuedEntity{
		{EntityID: "x", Value: dec("0")},
		{EntityID: "y", Value: dec("-3")},
	}, analytics.DefaultABCThresholds)

	for _, e := range entries {
		assert.Equal(t, analytics.ClassC, e.Class, e.EntityID)
		assert.True(t, e.Share.IsZero())
	}
}

func TestClassifyTurnover_EmpatesConservanOrden(t *testing.T) {
	entries := analytics.ClassifyTurnover([]analytics.ValuedEntity{
		{EntityID: "first", Value: dec("10")},
		{EntityID: "second", Value: dec("10")},
	}, analytics.DefaultABCThresholds)

	assert.Equal(t, "first", entries[0].EntityID)
	assert.Equal(t, "second", entries[1].EntityID)
}

func TestClassifyTurnover_Vacio(t *testing.T) {
	assert.Empty(t, analytics.ClassifyTurnover(nil, analytics.DefaultABCThresholds))
}
