// Package workflow define la máquina de estados de los traslados de activos.
//
// Todas las transiciones válidas viven en una sola tabla: cada operación del
// caso de uso la consulta en lugar de repetir chequeos de estado ad hoc, de modo
// que agregar o auditar una transición toca un solo lugar.
package workflow

import (
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// Event es un evento sobre un traslado.
type Event string

const (
	EventApprove  Event = "approve"
	EventReject   Event = "reject"
	EventCancel   Event = "cancel"
	EventAccept   Event = "accept"
	EventComplete Event = "complete"
)

// AssetEffect describe el efecto colateral que una transición produce sobre el activo.
// El estado del activo es siempre una proyección derivada de la decisión del traslado.
type AssetEffect int

const (
	// EffectNone no toca el activo.
	EffectNone AssetEffect = iota
	// EffectRestoreAssigned devuelve el activo a ASSIGNED sin tocar la asignación
	// (rechazo o cancelación de un traslado creado sobre un activo asignado).
	EffectRestoreAssigned
	// EffectApplyOutcome aplica el desenlace según el tipo de traslado (ver CompletionOutcome).
	EffectApplyOutcome
)

// Transition es la entrada de la tabla: estado siguiente + efecto sobre el activo.
type Transition struct {
	Next   string
	Effect AssetEffect
}

type transitionKey struct {
	from  string
	event Event
}

// Tabla única de transiciones. Todo par (estado, evento) ausente es ilegal.
// complete solo se admite desde APPROVED o ACCEPTED: completar directo desde
// PENDING saltaría la aprobación.
var transitions = map[transitionKey]Transition{
	{entity.TransferStatusPending, EventApprove}:  {Next: entity.TransferStatusApproved, Effect: EffectNone},
	{entity.TransferStatusPending, EventReject}:   {Next: entity.TransferStatusRejected, Effect: EffectRestoreAssigned},
	{entity.TransferStatusPending, EventCancel}:   {Next: entity.TransferStatusCancelled, Effect: EffectRestoreAssigned},
	{entity.TransferStatusApproved, EventCancel}:  {Next: entity.TransferStatusCancelled, Effect: EffectRestoreAssigned},
	{entity.TransferStatusApproved, EventAccept}:  {Next: entity.TransferStatusAccepted, Effect: EffectNone},
	{entity.TransferStatusApproved, EventComplete}: {Next: entity.TransferStatusCompleted, Effect: EffectApplyOutcome},
	{entity.TransferStatusAccepted, EventCancel}:  {Next: entity.TransferStatusCancelled, Effect: EffectRestoreAssigned},
	{entity.TransferStatusAccepted, EventComplete}: {Next: entity.TransferStatusCompleted, Effect: EffectApplyOutcome},
}

// Next devuelve la transición para (current, ev) o ErrInvalidState si el par no
// está en la tabla. Nunca muta nada: el caso de uso aplica el resultado.
func Next(current string, ev Event) (Transition, error) {
	t, ok := transitions[transitionKey{current, ev}]
	if !ok {
		return Transition{}, domain.ErrInvalidState
	}
	return t, nil
}

// Terminal indica si un estado de traslado no admite más transiciones.
func Terminal(status string) bool {
	switch status {
	case entity.TransferStatusRejected, entity.TransferStatusCancelled, entity.TransferStatusCompleted:
		return true
	}
	return false
}

// Outcome es el desenlace sobre el activo al completar un traslado.
type Outcome struct {
	AssetStatus     string
	ClearAssignee   bool // RETURN: el activo vuelve a stock sin asignación
	AssignRecipient bool // SALE/GIFT/REASSIGNMENT: el destinatario queda como asignado
}

// CompletionOutcome mapea el tipo de traslado al desenlace del activo.
// En SALE y GIFT el destinatario se conserva como asignado aunque el bien salga
// de la custodia de la empresa: queda como rastro de auditoría.
func CompletionOutcome(transferType string) (Outcome, error) {
	switch transferType {
	case entity.TransferTypeSale, entity.TransferTypeGift:
		return Outcome{AssetStatus: entity.AssetStatusSold, AssignRecipient: true}, nil
	case entity.TransferTypeReturn:
		return Outcome{AssetStatus: entity.AssetStatusInStock, ClearAssignee: true}, nil
	case entity.TransferTypeReassignment:
		return Outcome{AssetStatus: entity.AssetStatusAssigned, AssignRecipient: true}, nil
	}
	return Outcome{}, domain.ErrInvalidInput
}
