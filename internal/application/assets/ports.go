package assets

import (
	"context"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a la tx.
// Commit si fn devuelve nil, Rollback en cualquier otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		assetRepo repository.AssetRepository,
		transferRepo repository.TransferRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}
