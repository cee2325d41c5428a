package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// CreateAssetRequest entrada para registrar un activo.
type CreateAssetRequest struct {
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Manufacturer  string          `json:"manufacturer"`
	Model         string          `json:"model"`
	SerialNumber  string          `json:"serial_number"`
	Condition     string          `json:"condition"`
	PurchaseValue decimal.Decimal `json:"purchase_value"`
	CurrentValue  decimal.Decimal `json:"current_value"`
}

// AssignAssetRequest entrada para asignar un activo a un empleado.
type AssignAssetRequest struct {
	EmployeeID string `json:"employee_id"`
}

// MarkAssetStatusRequest entrada para mover un activo entre estados operativos
// simples (MAINTENANCE, LOST, DISPOSED, IN_STOCK).
type MarkAssetStatusRequest struct {
	Status string `json:"status"`
}

// UpdateAssetValueRequest entrada para actualizar el valor actual de un activo.
type UpdateAssetValueRequest struct {
	CurrentValue decimal.Decimal `json:"current_value"`
}

// AssetResponse representación HTTP de un activo.
type AssetResponse struct {
	ID                   string          `json:"id"`
	AssetTag             string          `json:"asset_tag"`
	Name                 string          `json:"name"`
	Category             string          `json:"category"`
	Manufacturer         string          `json:"manufacturer,omitempty"`
	Model                string          `json:"model,omitempty"`
	SerialNumber         string          `json:"serial_number,omitempty"`
	Condition            string          `json:"condition,omitempty"`
	PurchaseValue        decimal.Decimal `json:"purchase_value"`
	CurrentValue         decimal.Decimal `json:"current_value"`
	Status               string          `json:"status"`
	AssignedToEmployeeID *string         `json:"assigned_to_employee_id,omitempty"`
	AssignedAt           *time.Time      `json:"assigned_at,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// NewAssetResponse mapea la entidad al DTO de respuesta.
func NewAssetResponse(a *entity.Asset) AssetResponse {
	return AssetResponse{
		ID:                   a.ID,
		AssetTag:             a.AssetTag,
		Name:                 a.Name,
		Category:             a.Category,
		Manufacturer:         a.Manufacturer,
		Model:                a.Model,
		SerialNumber:         a.SerialNumber,
		Condition:            a.Condition,
		PurchaseValue:        a.PurchaseValue,
		CurrentValue:         a.CurrentValue,
		Status:               a.Status,
		AssignedToEmployeeID: a.AssignedToEmployeeID,
		AssignedAt:           a.AssignedAt,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

// NewAssetResponseList mapea una lista de entidades.
func NewAssetResponseList(assets []*entity.Asset) []AssetResponse {
	out := make([]AssetResponse, 0, len(assets))
	for _, a := range assets {
		out = append(out, NewAssetResponse(a))
	}
	return out
}
