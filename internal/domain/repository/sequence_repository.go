package repository

// SequenceRepository entrega el siguiente valor de una secuencia por (kind, año).
// La implementación debe ser atómica: dos llamadas concurrentes sobre el mismo
// (kind, año) nunca devuelven el mismo valor. Usar dentro de la transacción que
// crea la entidad para que identificador y registro se confirmen juntos.
type SequenceRepository interface {
	Next(kind string, year int) (int, error)
}
