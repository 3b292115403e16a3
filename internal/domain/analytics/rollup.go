package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RollupItem resultado ya clasificado con su clave de partición y sumas a acumular.
type RollupItem struct {
	Partition string
	Status    string
	Sums      map[string]decimal.Decimal
}

// GroupSummary totales de una partición (o del conjunto completo).
type GroupSummary struct {
	Key         string
	Total       int
	Counts      map[string]int
	Percentages map[string]decimal.Decimal
	Sums        map[string]decimal.Decimal
}

// Rollup resumen general más uno por partición, ordenados por clave.
type Rollup struct {
	Overall GroupSummary
	Groups  []GroupSummary
}

// RollupResults pliega resultados ya resueltos: cuenta por estado, calcula porcentajes
// y acumula las sumas informadas. No reclasifica. Los estados de `labels` aparecen siempre,
// aunque su conteo sea cero.
func RollupResults(items []RollupItem, labels []string) Rollup {
	overall := newGroupSummary("", labels)
	groups := make(map[string]*GroupSummary)

	for _, it := range items {
		g, ok := groups[it.Partition]
		if !ok {
			g = newGroupSummary(it.Partition, labels)
			groups[it.Partition] = g
		}
		g.add(it)
		overall.add(it)
	}

	out := Rollup{Overall: overall.finish(), Groups: make([]GroupSummary, 0, len(groups))}
	for _, g := range groups {
		out.Groups = append(out.Groups, g.finish())
	}
	sort.Slice(out.Groups, func(i, j int) bool { return out.Groups[i].Key < out.Groups[j].Key })
	return out
}

func newGroupSummary(key string, labels []string) *GroupSummary {
	g := &GroupSummary{
		Key:         key,
		Counts:      make(map[string]int, len(labels)),
		Percentages: make(map[string]decimal.Decimal, len(labels)),
		Sums:        make(map[string]decimal.Decimal),
	}
	for _, l := range labels {
		g.Counts[l] = 0
	}
	return g
}

func (g *GroupSummary) add(it RollupItem) {
	g.Total++
	g.Counts[it.Status]++
	for k, v := range it.Sums {
		g.Sums[k] = g.Sums[k].Add(v)
	}
}

func (g *GroupSummary) finish() GroupSummary {
	for label, n := range g.Counts {
		if g.Total == 0 {
			g.Percentages[label] = decimal.Zero
			continue
		}
		g.Percentages[label] = decimal.NewFromInt(int64(n)).Div(decimal.NewFromInt(int64(g.Total))).Mul(hundred).Round(2)
	}
	return *g
}
