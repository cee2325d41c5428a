package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un activo.
// DECOMMISSIONED es terminal: no se permite ninguna transición posterior.
const (
	AssetStatusInStock         = "IN_STOCK"
	AssetStatusAssigned        = "ASSIGNED"
	AssetStatusMaintenance     = "MAINTENANCE"
	AssetStatusTransferPending = "TRANSFER_PENDING"
	AssetStatusSold            = "SOLD"
	AssetStatusDisposed        = "DISPOSED"
	AssetStatusLost            = "LOST"
	AssetStatusDecommissioned  = "DECOMMISSIONED"
)

// Asset representa un activo físico de la empresa (laptop, vehículo, mobiliario).
// AssetTag se genera una sola vez en el registro y nunca cambia.
// AssignedToEmployeeID es una referencia débil: el registro del empleado vive fuera de este módulo.
type Asset struct {
	ID            string
	AssetTag      string
	Name          string
	Category      string
	Manufacturer  string
	Model         string
	SerialNumber  string
	Condition     string
	PurchaseValue decimal.Decimal
	CurrentValue  decimal.Decimal

	Status               string
	AssignedToEmployeeID *string
	AssignedAt           *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidAssetStatus indica si s es un estado de activo conocido.
func ValidAssetStatus(s string) bool {
	switch s {
	case AssetStatusInStock, AssetStatusAssigned, AssetStatusMaintenance,
		AssetStatusTransferPending, AssetStatusSold, AssetStatusDisposed,
		AssetStatusLost, AssetStatusDecommissioned:
		return true
	}
	return false
}
