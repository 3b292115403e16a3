package ports

import "context"

// ReportCache puerto de salida para cachear consolidados ya calculados.
// Es un objeto explícito inyectado en los casos de uso; el motor no guarda estado propio.
// Un adaptador deshabilitado responde siempre "no encontrado".
type ReportCache interface {
	// Get decodifica en dst el valor guardado bajo key. false si no existe.
	Get(ctx context.Context, key string, dst any) (bool, error)
	// Set guarda v bajo key con el TTL del adaptador.
	Set(ctx context.Context, key string, v any) error
	// InvalidatePrefix borra todas las claves que empiezan por prefix.
	InvalidatePrefix(ctx context.Context, prefix string) error
}
