package transfers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/numbering"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
	"github.com/jhoicas/Activos-api/internal/domain/workflow"
)

// UseCase implementa el flujo de traslados de activos: solicitud, aprobación,
// rechazo, aceptación del empleado, completado y cancelación.
//
// Cada evento consulta la tabla de transiciones (workflow) y aplica en la misma
// transacción el cambio de estado del traslado y su efecto sobre el activo:
// el estado del activo es siempre una proyección de lo que el traslado decidió,
// nunca un campo que se mueva por su cuenta.
type UseCase struct {
	txRunner     TxRunner
	transferRepo repository.TransferRepository
	employees    repository.EmployeeDirectory
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	transferRepo repository.TransferRepository,
	employees repository.EmployeeDirectory,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		transferRepo: transferRepo,
		employees:    employees,
	}
}

// RequestInput entrada para solicitar un traslado.
type RequestInput struct {
	AssetID       string
	EmployeeID    string
	RequestedByID string
	Type          string
	SalePrice     *decimal.Decimal
	Reason        string
	Notes         string
}

// Request crea un traslado en PENDING sobre un activo ASSIGNED y lo pasa a
// TRANSFER_PENDING, todo en una sola transacción. Los valores del activo se
// fotografían aquí y no se recalculan nunca.
func (uc *UseCase) Request(ctx context.Context, input RequestInput) (*entity.AssetTransfer, error) {
	if input.AssetID == "" || input.EmployeeID == "" || input.RequestedByID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidTransferType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	// SalePrice obligatorio y no negativo en SALE; prohibido en el resto.
	if input.Type == entity.TransferTypeSale {
		if input.SalePrice == nil || input.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	} else if input.SalePrice != nil {
		return nil, domain.ErrInvalidInput
	}
	ok, err := uc.employees.Exists(input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	transfer := &entity.AssetTransfer{
		ID:            uuid.New().String(),
		AssetID:       input.AssetID,
		EmployeeID:    input.EmployeeID,
		RequestedByID: input.RequestedByID,
		Type:          input.Type,
		Status:        entity.TransferStatusPending,
		SalePrice:     input.SalePrice,
		Reason:        input.Reason,
		Notes:         input.Notes,
		RequestedAt:   now,
	}

	err = uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		transferRepo repository.TransferRepository,
		seqRepo repository.SequenceRepository,
	) error {
		// Bloquear el activo primero: dos solicitudes concurrentes sobre el
		// mismo activo se serializan aquí y la segunda ve el estado ya movido.
		asset, err := assetRepo.GetForUpdate(input.AssetID)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrNotFound
		}
		if asset.Status != entity.AssetStatusAssigned {
			return domain.ErrInvalidState
		}
		// Cinturón y tirantes: el estado ASSIGNED ya implica que no hay traslado
		// activo, pero un desfase entre ambos registros debe cortar aquí.
		active, err := transferRepo.GetActiveByAsset(input.AssetID)
		if err != nil {
			return err
		}
		if active != nil {
			return domain.ErrConflict
		}

		seq, err := seqRepo.Next(numbering.KindTransferNumber, numbering.Year(now))
		if err != nil {
			return err
		}
		number, err := numbering.Format(numbering.KindTransferNumber, numbering.Year(now), seq)
		if err != nil {
			return err
		}
		transfer.TransferNumber = number

		// Fotografía de valores al momento de la solicitud.
		transfer.OriginalValue = asset.PurchaseValue
		transfer.DepreciatedValue = asset.CurrentValue

		if err := transferRepo.Create(transfer); err != nil {
			return err
		}
		asset.Status = entity.AssetStatusTransferPending
		asset.UpdatedAt = now
		return assetRepo.Update(asset)
	})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}

// Approve aprueba un traslado PENDING. El rol aprobador lo garantiza el middleware.
func (uc *UseCase) Approve(ctx context.Context, id, approverID string) (*entity.AssetTransfer, error) {
	return uc.applyEvent(ctx, id, workflow.EventApprove, func(t *entity.AssetTransfer, now time.Time) {
		t.ApprovedByID = &approverID
		t.ApprovedAt = &now
	})
}

// Reject rechaza un traslado PENDING con motivo obligatorio y restaura el activo
// a ASSIGNED sin tocar la asignación.
func (uc *UseCase) Reject(ctx context.Context, id, approverID, reason string) (*entity.AssetTransfer, error) {
	if reason == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.applyEvent(ctx, id, workflow.EventReject, func(t *entity.AssetTransfer, now time.Time) {
		t.RejectedByID = &approverID
		t.RejectedAt = &now
		t.RejectionReason = reason
	})
}

// Accept registra la aceptación del empleado destinatario sobre un traslado
// APPROVED. Solo el destinatario puede aceptar y la firma es obligatoria.
func (uc *UseCase) Accept(ctx context.Context, id string, actor Actor, signature string) (*entity.AssetTransfer, error) {
	if signature == "" {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.AssetTransfer
	err := uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		transferRepo repository.TransferRepository,
		_ repository.SequenceRepository,
	) error {
		transfer, err := transferRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		if actor.EmployeeID == "" || actor.EmployeeID != transfer.EmployeeID {
			return domain.ErrForbidden
		}
		tr, err := workflow.Next(transfer.Status, workflow.EventAccept)
		if err != nil {
			return err
		}
		now := time.Now()
		transfer.Status = tr.Next
		transfer.EmployeeAccepted = true
		transfer.EmployeeAcceptedAt = &now
		transfer.EmployeeSignature = signature
		updated = transfer
		return transferRepo.Update(transfer)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Complete cierra un traslado APPROVED o ACCEPTED y aplica el desenlace sobre el
// activo según el tipo: SALE/GIFT → SOLD, RETURN → IN_STOCK sin asignación,
// REASSIGNMENT → ASSIGNED al destinatario.
func (uc *UseCase) Complete(ctx context.Context, id, actorID string) (*entity.AssetTransfer, error) {
	return uc.applyEvent(ctx, id, workflow.EventComplete, func(t *entity.AssetTransfer, now time.Time) {
		t.CompletedAt = &now
	})
}

// Cancel cancela un traslado no terminal. Autorizados: el solicitante, el
// empleado destinatario o un rol aprobador.
func (uc *UseCase) Cancel(ctx context.Context, id string, actor Actor) error {
	err := uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		transferRepo repository.TransferRepository,
		_ repository.SequenceRepository,
	) error {
		transfer, err := transferRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		if !actor.Privileged && actor.UserID != transfer.RequestedByID &&
			(actor.EmployeeID == "" || actor.EmployeeID != transfer.EmployeeID) {
			return domain.ErrForbidden
		}
		tr, err := workflow.Next(transfer.Status, workflow.EventCancel)
		if err != nil {
			return err
		}
		transfer.Status = tr.Next
		if err := transferRepo.Update(transfer); err != nil {
			return err
		}
		return uc.applyAssetEffect(assetRepo, transfer, tr.Effect)
	})
	return err
}

// List lista traslados con filtro opcional por estado.
func (uc *UseCase) List(ctx context.Context, status string, limit, offset int) ([]*entity.AssetTransfer, error) {
	if status != "" {
		switch status {
		case entity.TransferStatusPending, entity.TransferStatusApproved, entity.TransferStatusRejected,
			entity.TransferStatusAccepted, entity.TransferStatusCompleted, entity.TransferStatusCancelled:
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	return uc.transferRepo.List(status, limit, offset)
}

// Get obtiene un traslado por ID.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.AssetTransfer, error) {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, domain.ErrNotFound
	}
	return transfer, nil
}

// applyEvent carga y bloquea el traslado, consulta la tabla de transiciones,
// muta los campos de auditoría vía stamp y aplica el efecto sobre el activo,
// todo dentro de una transacción.
func (uc *UseCase) applyEvent(
	ctx context.Context,
	id string,
	ev workflow.Event,
	stamp func(t *entity.AssetTransfer, now time.Time),
) (*entity.AssetTransfer, error) {
	var updated *entity.AssetTransfer
	err := uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		transferRepo repository.TransferRepository,
		_ repository.SequenceRepository,
	) error {
		transfer, err := transferRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		tr, err := workflow.Next(transfer.Status, ev)
		if err != nil {
			return err
		}
		now := time.Now()
		transfer.Status = tr.Next
		stamp(transfer, now)
		if err := transferRepo.Update(transfer); err != nil {
			return err
		}
		if err := uc.applyAssetEffect(assetRepo, transfer, tr.Effect); err != nil {
			return err
		}
		updated = transfer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// applyAssetEffect materializa sobre el activo el efecto decidido por la tabla.
func (uc *UseCase) applyAssetEffect(
	assetRepo repository.AssetRepository,
	transfer *entity.AssetTransfer,
	effect workflow.AssetEffect,
) error {
	if effect == workflow.EffectNone {
		return nil
	}
	asset, err := assetRepo.GetForUpdate(transfer.AssetID)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	now := time.Now()
	switch effect {
	case workflow.EffectRestoreAssigned:
		// Volver a ASSIGNED; la asignación nunca se tocó durante el traslado.
		asset.Status = entity.AssetStatusAssigned
	case workflow.EffectApplyOutcome:
		outcome, err := workflow.CompletionOutcome(transfer.Type)
		if err != nil {
			return err
		}
		asset.Status = outcome.AssetStatus
		if outcome.ClearAssignee {
			asset.AssignedToEmployeeID = nil
			asset.AssignedAt = nil
		}
		if outcome.AssignRecipient {
			employeeID := transfer.EmployeeID
			asset.AssignedToEmployeeID = &employeeID
			asset.AssignedAt = &now
		}
	}
	asset.UpdatedAt = now
	return assetRepo.Update(asset)
}
