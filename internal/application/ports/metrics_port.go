package ports

import "time"

// EvaluationRecorder registra métricas de las evaluaciones por lote.
type EvaluationRecorder interface {
	// ObserveBatch duración y cantidad de entidades de un lote ("stock", "fleet", "abc").
	ObserveBatch(kind string, elapsed time.Duration, entities int)
	// CountStatus incrementa el contador del estado resuelto.
	CountStatus(kind, status string)
}

// NopRecorder descarta las métricas.
type NopRecorder struct{}

func (NopRecorder) ObserveBatch(string, time.Duration, int) {}
func (NopRecorder) CountStatus(string, string)             {}
