package xlsx

import (
	"sort"

	"github.com/shopspring/decimal"
)

// optional deja la celda vacía cuando el dato no existe.
func optional(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	f, _ := d.Float64()
	return f
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
