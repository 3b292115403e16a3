package domain

import (
	"errors"
	"fmt"
	"time"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInsufficientData = errors.New("datos insuficientes")
	ErrInvalidInterval  = errors.New("intervalo inválido")
)

// InsufficientDataError indica que un agregado necesitaba al menos un dato y no lo tuvo.
// "Sin datos" no es lo mismo que cero: el llamador debe poder distinguirlos.
type InsufficientDataError struct {
	Metric string // ej: "weighted_average", "trend"
	Points int    // puntos válidos recibidos
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: datos insuficientes (%d puntos)", e.Metric, e.Points)
}

// Is permite errors.Is(err, ErrInsufficientData).
func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// InvalidIntervalError indica un intervalo de agenda o mantenimiento con fin anterior al inicio.
type InvalidIntervalError struct {
	IntervalID string
	Start      time.Time
	End        time.Time
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("intervalo %s inválido: fin %s anterior al inicio %s",
		e.IntervalID, e.End.Format(time.RFC3339), e.Start.Format(time.RFC3339))
}

// Is permite errors.Is(err, ErrInvalidInterval).
func (e *InvalidIntervalError) Is(target error) bool {
	return target == ErrInvalidInterval
}
