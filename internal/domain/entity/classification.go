package entity

// Signal es una condición evaluada por un clasificador, en el orden en que se evaluó.
type Signal struct {
	Code    string `json:"code"`
	Matched bool   `json:"matched"`
	Detail  string `json:"detail,omitempty"`
}

// ClassificationResult es el estado exclusivo resuelto para una entidad.
// Se produce en cada evaluación; el motor no lo persiste.
type ClassificationResult struct {
	EntityID string
	Status   string
	Priority int
	Signals  []Signal
}
