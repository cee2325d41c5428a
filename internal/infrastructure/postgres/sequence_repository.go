package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo implementación de SequenceRepository sobre PostgreSQL (usable con pool o tx).
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next devuelve el siguiente valor de la secuencia (kind, year) en una sola
// sentencia atómica: el upsert serializa llamadores concurrentes sobre la misma
// fila, por lo que dos llamadas nunca devuelven el mismo número.
func (r *SequenceRepo) Next(kind string, year int) (int, error) {
	query := `
		INSERT INTO sequences (kind, year, value)
		VALUES ($1, $2, 1)
		ON CONFLICT (kind, year)
		DO UPDATE SET value = sequences.value + 1
		RETURNING value`
	var value int
	if err := r.q.QueryRow(context.Background(), query, kind, year).Scan(&value); err != nil {
		return 0, fmt.Errorf("next sequence %s/%d: %w", kind, year, err)
	}
	return value, nil
}
