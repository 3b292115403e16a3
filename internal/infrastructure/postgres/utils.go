package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier abstrae pool y tx para las consultas de lectura.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// nonNil evita que un slice nil viaje como NULL y anule el filtro `cardinality($n) = 0`.
func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// collect recorre rows aplicando scan y cierra el cursor.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()
	var list []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, rows.Err()
}
