// Package analytics contiene el motor puro de clasificación y métricas de ventana móvil:
// estado de stock, estado de flota, precio ponderado, tendencia, pronóstico de consumo,
// curva ABC y consolidación para tableros. No hace I/O ni guarda estado.
package analytics

import (
	"fmt"
	"time"
)

// Window es un intervalo cerrado [Start, End]. Un extremo en cero es abierto.
type Window struct {
	Start time.Time
	End   time.Time
}

// ── Días y ventanas ───────────────────────────────────────────────────────────

// civil descarta hora y zona: dos instantes del mismo día calendario valen lo mismo.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween devuelve la diferencia absoluta en días calendario entre a y b.
func DaysBetween(a, b time.Time) int {
	days := int(civil(b).Sub(civil(a)) / (24 * time.Hour))
	if days < 0 {
		return -days
	}
	return days
}

// daysSince devuelve los días desde t hasta ref; 0 si t es posterior a ref.
func daysSince(t, ref time.Time) int {
	if civil(t).After(civil(ref)) {
		return 0
	}
	return DaysBetween(t, ref)
}

// startOfDay y endOfDay acotan el día calendario de t en su propia zona.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// RollingWindow devuelve los días calendario [ref - days, ref] completos:
// un movimiento de las 18:00 del día de referencia queda dentro.
func RollingWindow(ref time.Time, days int) Window {
	return Window{Start: startOfDay(ref.AddDate(0, 0, -days)), End: endOfDay(ref)}
}

// MonthsWindow devuelve [ref - months meses, ref] en días completos. El día de inicio se
// recorta al último día del mes destino (31-ago menos 6 meses = 28-feb, no 3-mar) para
// que MonthsElapsed sea siempre months.
func MonthsWindow(ref time.Time, months int) Window {
	y, m, d := ref.Date()
	first := time.Date(y, m-time.Month(months), 1, 0, 0, 0, 0, ref.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return Window{Start: first.AddDate(0, 0, d-1), End: endOfDay(ref)}
}

// Contains indica si t cae dentro de la ventana (extremos incluidos).
func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && t.After(w.End) {
		return false
	}
	return true
}

// MonthsElapsed devuelve los meses calendario transcurridos entre Start y End (mínimo 1).
// Un mes sin movimientos cuenta igual como mes del denominador.
func (w Window) MonthsElapsed() int {
	n := monthIndex(w.End) - monthIndex(w.Start)
	if n < 1 {
		return 1
	}
	return n
}

// MonthLabels devuelve "YYYY-MM" para cada mes calendario que toca la ventana, en orden.
func (w Window) MonthLabels() []string {
	first, last := monthIndex(w.Start), monthIndex(w.End)
	if last < first {
		return nil
	}
	labels := make([]string, 0, last-first+1)
	for i := first; i <= last; i++ {
		labels = append(labels, fmt.Sprintf("%04d-%02d", i/12, i%12+1))
	}
	return labels
}

func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

func monthLabel(t time.Time) string {
	return t.Format("2006-01")
}

// ── Solapamiento ──────────────────────────────────────────────────────────────

// IntervalsOverlap indica si [aStart, aEnd] y [bStart, bEnd] se solapan.
// Un extremo nil es abierto (pasado o futuro sin límite) y siempre satisface su lado.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd *time.Time) bool {
	left := aStart == nil || bEnd == nil || !aStart.After(*bEnd)
	right := bStart == nil || aEnd == nil || !bStart.After(*aEnd)
	return left && right
}
