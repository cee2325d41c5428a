package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// RequestTransferRequest entrada para solicitar un traslado.
// SalePrice solo aplica (y es obligatorio) cuando Type es SALE.
type RequestTransferRequest struct {
	AssetID    string           `json:"asset_id"`
	EmployeeID string           `json:"employee_id"`
	Type       string           `json:"type"`
	SalePrice  *decimal.Decimal `json:"sale_price,omitempty"`
	Reason     string           `json:"reason,omitempty"`
	Notes      string           `json:"notes,omitempty"`
}

// RejectTransferRequest entrada para rechazar un traslado.
type RejectTransferRequest struct {
	Reason string `json:"reason"`
}

// AcceptTransferRequest entrada para la aceptación del empleado destinatario.
type AcceptTransferRequest struct {
	Signature string `json:"signature"`
}

// TransferResponse representación HTTP de un traslado.
type TransferResponse struct {
	ID                 string           `json:"id"`
	TransferNumber     string           `json:"transfer_number"`
	AssetID            string           `json:"asset_id"`
	EmployeeID         string           `json:"employee_id"`
	RequestedByID      string           `json:"requested_by_id"`
	ApprovedByID       *string          `json:"approved_by_id,omitempty"`
	RejectedByID       *string          `json:"rejected_by_id,omitempty"`
	Type               string           `json:"type"`
	Status             string           `json:"status"`
	OriginalValue      decimal.Decimal  `json:"original_value"`
	DepreciatedValue   decimal.Decimal  `json:"depreciated_value"`
	SalePrice          *decimal.Decimal `json:"sale_price,omitempty"`
	Reason             string           `json:"reason,omitempty"`
	Notes              string           `json:"notes,omitempty"`
	RejectionReason    string           `json:"rejection_reason,omitempty"`
	EmployeeAccepted   bool             `json:"employee_accepted"`
	EmployeeAcceptedAt *time.Time       `json:"employee_accepted_at,omitempty"`
	EmployeeSignature  string           `json:"employee_signature,omitempty"`
	RequestedAt        time.Time        `json:"requested_at"`
	ApprovedAt         *time.Time       `json:"approved_at,omitempty"`
	RejectedAt         *time.Time       `json:"rejected_at,omitempty"`
	CompletedAt        *time.Time       `json:"completed_at,omitempty"`
}

// NewTransferResponse mapea la entidad al DTO de respuesta.
func NewTransferResponse(t *entity.AssetTransfer) TransferResponse {
	return TransferResponse{
		ID:                 t.ID,
		TransferNumber:     t.TransferNumber,
		AssetID:            t.AssetID,
		EmployeeID:         t.EmployeeID,
		RequestedByID:      t.RequestedByID,
		ApprovedByID:       t.ApprovedByID,
		RejectedByID:       t.RejectedByID,
		Type:               t.Type,
		Status:             t.Status,
		OriginalValue:      t.OriginalValue,
		DepreciatedValue:   t.DepreciatedValue,
		SalePrice:          t.SalePrice,
		Reason:             t.Reason,
		Notes:              t.Notes,
		RejectionReason:    t.RejectionReason,
		EmployeeAccepted:   t.EmployeeAccepted,
		EmployeeAcceptedAt: t.EmployeeAcceptedAt,
		EmployeeSignature:  t.EmployeeSignature,
		RequestedAt:        t.RequestedAt,
		ApprovedAt:         t.ApprovedAt,
		RejectedAt:         t.RejectedAt,
		CompletedAt:        t.CompletedAt,
	}
}

// NewTransferResponseList mapea una lista de entidades.
func NewTransferResponseList(transfers []*entity.AssetTransfer) []TransferResponse {
	out := make([]TransferResponse, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, NewTransferResponse(t))
	}
	return out
}
