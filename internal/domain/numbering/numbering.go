// Package numbering define la forma de los identificadores legibles del sistema:
// <PREFIJO>-<año>-<secuencia de 4 dígitos>, ej. HW-2025-0007.
//
// Aquí solo vive el formato; la atomicidad del "siguiente número" la garantiza
// el SequenceRepository (upsert atómico por (kind, año) en la misma transacción
// que crea la entidad).
package numbering

import (
	"fmt"
	"time"

	"github.com/jhoicas/Activos-api/internal/domain"
)

// Espacios de nombres de secuencia.
const (
	KindAssetTag       = "asset_tag"
	KindTransferNumber = "transfer_number"
)

var prefixes = map[string]string{
	KindAssetTag:       "HW",
	KindTransferNumber: "TRF",
}

// Prefix devuelve el prefijo del identificador para un kind conocido.
func Prefix(kind string) (string, error) {
	p, ok := prefixes[kind]
	if !ok {
		return "", domain.ErrInvalidInput
	}
	return p, nil
}

// Format construye el identificador con secuencia de 4 dígitos rellenada con ceros.
func Format(kind string, year, seq int) (string, error) {
	p, err := Prefix(kind)
	if err != nil {
		return "", err
	}
	if year <= 0 || seq <= 0 {
		return "", domain.ErrInvalidInput
	}
	return fmt.Sprintf("%s-%d-%04d", p, year, seq), nil
}

// Year devuelve el año calendario que delimita cada secuencia.
func Year(now time.Time) int {
	return now.Year()
}
