package assets

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/numbering"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// UseCase implementa el registro y ciclo de vida de activos: alta con placa
// generada, asignación/desasignación a empleados y baja (soft delete).
// Toda mutación corre dentro de una transacción con la fila bloqueada
// (SELECT FOR UPDATE) para que lectores concurrentes nunca vean estados a medias.
type UseCase struct {
	txRunner     TxRunner
	assetRepo    repository.AssetRepository
	transferRepo repository.TransferRepository
	employees    repository.EmployeeDirectory
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	assetRepo repository.AssetRepository,
	transferRepo repository.TransferRepository,
	employees repository.EmployeeDirectory,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		assetRepo:    assetRepo,
		transferRepo: transferRepo,
		employees:    employees,
	}
}

// RegisterInput atributos para registrar un activo nuevo.
type RegisterInput struct {
	Name          string
	Category      string
	Manufacturer  string
	Model         string
	SerialNumber  string
	Condition     string
	PurchaseValue decimal.Decimal
	CurrentValue  decimal.Decimal
}

// Register crea un activo en IN_STOCK, sin asignación, con placa recién generada.
// Placa e inserción se confirman en la misma transacción: o ambas o ninguna.
func (uc *UseCase) Register(ctx context.Context, input RegisterInput) (*entity.Asset, error) {
	if input.Name == "" || input.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.PurchaseValue.IsNegative() || input.CurrentValue.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	asset := &entity.Asset{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Category:      input.Category,
		Manufacturer:  input.Manufacturer,
		Model:         input.Model,
		SerialNumber:  input.SerialNumber,
		Condition:     input.Condition,
		PurchaseValue: input.PurchaseValue,
		CurrentValue:  input.CurrentValue,
		Status:        entity.AssetStatusInStock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		_ repository.TransferRepository,
		seqRepo repository.SequenceRepository,
	) error {
		seq, err := seqRepo.Next(numbering.KindAssetTag, numbering.Year(now))
		if err != nil {
			return err
		}
		tag, err := numbering.Format(numbering.KindAssetTag, numbering.Year(now), seq)
		if err != nil {
			return err
		}
		asset.AssetTag = tag
		return assetRepo.Create(asset)
	})
	if err != nil {
		return nil, err
	}
	return asset, nil
}

// Assign asigna un activo IN_STOCK a un empleado. Cualquier otro estado es
// transición ilegal.
func (uc *UseCase) Assign(ctx context.Context, assetID, employeeID string) (*entity.Asset, error) {
	if assetID == "" || employeeID == "" {
		return nil, domain.ErrInvalidInput
	}
	ok, err := uc.employees.Exists(employeeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}

	var updated *entity.Asset
	err = uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		_ repository.TransferRepository,
		_ repository.SequenceRepository,
	) error {
		asset, err := assetRepo.GetForUpdate(assetID)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrNotFound
		}
		if asset.Status != entity.AssetStatusInStock {
			return domain.ErrInvalidState
		}
		now := time.Now()
		asset.Status = entity.AssetStatusAssigned
		asset.AssignedToEmployeeID = &employeeID
		asset.AssignedAt = &now
		asset.UpdatedAt = now
		updated = asset
		return assetRepo.Update(asset)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Unassign devuelve un activo ASSIGNED a stock y limpia los campos de asignación.
func (uc *UseCase) Unassign(ctx context.Context, assetID string) (*entity.Asset, error) {
	if assetID == "" {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Asset
	err := uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		_ repository.TransferRepository,
		_ repository.SequenceRepository,
	) error {
		asset, err := assetRepo.GetForUpdate(assetID)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrNotFound
		}
		if asset.Status != entity.AssetStatusAssigned {
			return domain.ErrInvalidState
		}
		asset.Status = entity.AssetStatusInStock
		asset.AssignedToEmployeeID = nil
		asset.AssignedAt = nil
		asset.UpdatedAt = time.Now()
		updated = asset
		return assetRepo.Update(asset)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Decommission da de baja un activo (soft delete, estado terminal).
// Se rechaza si el activo ya está dado de baja o si existe un traslado no
// terminal que lo referencia: dar de baja un bien con traslado en curso dejaría
// el traslado apuntando a un activo inerte. También limpia la asignación para
// conservar el invariante asignado-sii-ASSIGNED.
func (uc *UseCase) Decommission(ctx context.Context, assetID string) error {
	if assetID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		transferRepo repository.TransferRepository,
		_ repository.SequenceRepository,
	) error {
		asset, err := assetRepo.GetForUpdate(assetID)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrNotFound
		}
		if asset.Status == entity.AssetStatusDecommissioned {
			return domain.ErrInvalidState
		}
		active, err := transferRepo.GetActiveByAsset(assetID)
		if err != nil {
			return err
		}
		if active != nil {
			return domain.ErrConflict
		}
		asset.Status = entity.AssetStatusDecommissioned
		asset.AssignedToEmployeeID = nil
		asset.AssignedAt = nil
		asset.UpdatedAt = time.Now()
		return assetRepo.Update(asset)
	})
}

// MarkStatus mueve un activo entre IN_STOCK y los estados operativos simples
// (MAINTENANCE, LOST, DISPOSED) sin pasar por el flujo de traslados.
// No aplica a estados gobernados por traslados ni a activos dados de baja.
func (uc *UseCase) MarkStatus(ctx context.Context, assetID, status string) (*entity.Asset, error) {
	switch status {
	case entity.AssetStatusMaintenance, entity.AssetStatusLost, entity.AssetStatusDisposed, entity.AssetStatusInStock:
	default:
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Asset
	err := uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		_ repository.TransferRepository,
		_ repository.SequenceRepository,
	) error {
		asset, err := assetRepo.GetForUpdate(assetID)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrNotFound
		}
		switch asset.Status {
		case entity.AssetStatusInStock, entity.AssetStatusMaintenance, entity.AssetStatusLost, entity.AssetStatusDisposed:
		default:
			return domain.ErrInvalidState
		}
		asset.Status = status
		asset.UpdatedAt = time.Now()
		updated = asset
		return assetRepo.Update(asset)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateValue actualiza el valor actual (depreciado) de un activo. Los traslados
// ya solicitados conservan su fotografía de valores: esta edición no los toca.
func (uc *UseCase) UpdateValue(ctx context.Context, assetID string, currentValue decimal.Decimal) (*entity.Asset, error) {
	if assetID == "" || currentValue.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Asset
	err := uc.txRunner.Run(ctx, func(
		assetRepo repository.AssetRepository,
		_ repository.TransferRepository,
		_ repository.SequenceRepository,
	) error {
		asset, err := assetRepo.GetForUpdate(assetID)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrNotFound
		}
		if asset.Status == entity.AssetStatusDecommissioned {
			return domain.ErrInvalidState
		}
		asset.CurrentValue = currentValue
		asset.UpdatedAt = time.Now()
		updated = asset
		return assetRepo.Update(asset)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// List lista activos con filtros opcionales por estado y categoría.
func (uc *UseCase) List(ctx context.Context, filter repository.AssetFilter, limit, offset int) ([]*entity.Asset, error) {
	if filter.Status != "" && !entity.ValidAssetStatus(filter.Status) {
		return nil, domain.ErrInvalidInput
	}
	return uc.assetRepo.List(filter, limit, offset)
}

// Get obtiene un activo por ID.
func (uc *UseCase) Get(ctx context.Context, id string) (*entity.Asset, error) {
	asset, err := uc.assetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrNotFound
	}
	return asset, nil
}
