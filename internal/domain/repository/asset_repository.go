package repository

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// AssetFilter filtros opcionales para listar activos (vacío = sin filtro).
type AssetFilter struct {
	Status   string
	Category string
}

// AssetRepository define el puerto de persistencia de activos (DIP).
// GetByID devuelve (nil, nil) si el activo no existe.
type AssetRepository interface {
	Create(asset *entity.Asset) error
	GetByID(id string) (*entity.Asset, error)
	// GetForUpdate bloquea la fila del activo (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(id string) (*entity.Asset, error)
	Update(asset *entity.Asset) error
	List(filter AssetFilter, limit, offset int) ([]*entity.Asset, error)
}
