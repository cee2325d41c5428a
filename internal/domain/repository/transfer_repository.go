package repository

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// TransferRepository define el puerto de persistencia de traslados (DIP).
// GetByID y GetActiveByAsset devuelven (nil, nil) cuando no hay fila.
type TransferRepository interface {
	Create(transfer *entity.AssetTransfer) error
	GetByID(id string) (*entity.AssetTransfer, error)
	// GetForUpdate bloquea la fila del traslado (SELECT FOR UPDATE) dentro de una tx,
	// serializando transiciones concurrentes sobre el mismo traslado.
	GetForUpdate(id string) (*entity.AssetTransfer, error)
	// GetActiveByAsset devuelve el traslado no terminal (PENDING/APPROVED/ACCEPTED)
	// que referencia al activo, si existe. A lo sumo hay uno.
	GetActiveByAsset(assetID string) (*entity.AssetTransfer, error)
	Update(transfer *entity.AssetTransfer) error
	List(status string, limit, offset int) ([]*entity.AssetTransfer, error)
}
