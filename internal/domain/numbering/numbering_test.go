package numbering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/domain"
)

func TestFormat_PlacaDeActivo(t *testing.T) {
	got, err := Format(KindAssetTag, 2025, 7)
	require.NoError(t, err)
	assert.Equal(t, "HW-2025-0007", got)
}

func TestFormat_NumeroDeTraslado(t *testing.T) {
	got, err := Format(KindTransferNumber, 2025, 1)
	require.NoError(t, err)
	assert.Equal(t, "TRF-2025-0001", got)
}

func TestFormat_SecuenciaLarga(t *testing.T) {
	// Más de 4 dígitos no se trunca.
	got, err := Format(KindAssetTag, 2026, 12345)
	require.NoError(t, err)
	assert.Equal(t, "HW-2026-12345", got)
}

func TestFormat_KindDesconocido(t *testing.T) {
	_, err := Format("purchase_order", 2025, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFormat_ValoresInvalidos(t *testing.T) {
	_, err := Format(KindAssetTag, 0, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = Format(KindAssetTag, 2025, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPrefix(t *testing.T) {
	p, err := Prefix(KindAssetTag)
	require.NoError(t, err)
	assert.Equal(t, "HW", p)

	p, err = Prefix(KindTransferNumber)
	require.NoError(t, err)
	assert.Equal(t, "TRF", p)
}

func TestYear(t *testing.T) {
	assert.Equal(t, 2025, Year(time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)))
}
