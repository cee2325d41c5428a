package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de traslado. El tipo se fija al crear la solicitud y nunca cambia.
const (
	TransferTypeSale         = "SALE"
	TransferTypeGift         = "GIFT"
	TransferTypeReturn       = "RETURN"
	TransferTypeReassignment = "REASSIGNMENT"
)

// Estados de un traslado. REJECTED, CANCELLED y COMPLETED son terminales.
const (
	TransferStatusPending   = "PENDING"
	TransferStatusApproved  = "APPROVED"
	TransferStatusRejected  = "REJECTED"
	TransferStatusAccepted  = "ACCEPTED"
	TransferStatusCompleted = "COMPLETED"
	TransferStatusCancelled = "CANCELLED"
)

// AssetTransfer representa la solicitud de traslado de un activo hacia un empleado
// (venta, regalo, devolución o reasignación) sujeta a aprobación.
//
// OriginalValue y DepreciatedValue son una fotografía de los valores del activo
// al momento de la solicitud: ediciones posteriores del activo no alteran
// retroactivamente el registro histórico del traslado.
type AssetTransfer struct {
	ID             string
	TransferNumber string

	AssetID       string
	EmployeeID    string
	RequestedByID string
	ApprovedByID  *string
	RejectedByID  *string

	Type   string
	Status string

	OriginalValue    decimal.Decimal
	DepreciatedValue decimal.Decimal
	SalePrice        *decimal.Decimal

	Reason          string
	Notes           string
	RejectionReason string

	EmployeeAccepted    bool
	EmployeeAcceptedAt  *time.Time
	EmployeeSignature   string

	RequestedAt time.Time
	ApprovedAt  *time.Time
	RejectedAt  *time.Time
	CompletedAt *time.Time
}

// ValidTransferType indica si t es un tipo de traslado conocido.
func ValidTransferType(t string) bool {
	switch t {
	case TransferTypeSale, TransferTypeGift, TransferTypeReturn, TransferTypeReassignment:
		return true
	}
	return false
}
