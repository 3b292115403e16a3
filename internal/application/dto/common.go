package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SignalDTO condición evaluada por un clasificador.
type SignalDTO struct {
	Code    string `json:"code"`
	Matched bool   `json:"matched"`
	Detail  string `json:"detail,omitempty"`
}

// GroupSummaryDTO consolidado para tableros: conteos, porcentajes y sumas por estado.
type GroupSummaryDTO struct {
	Key         string                     `json:"key,omitempty"`
	Total       int                        `json:"total"`
	Counts      map[string]int             `json:"counts"`
	Percentages map[string]decimal.Decimal `json:"percentages"`
	Sums        map[string]decimal.Decimal `json:"sums,omitempty"`
}

// WindowDTO ventana de tiempo usada en un cálculo.
type WindowDTO struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
