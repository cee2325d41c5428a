package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación del puerto AssetRepository sobre PostgreSQL (usable con pool o tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de persistencia de activos. Pasar pool o tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

const assetColumns = `id, asset_tag, name, category, manufacturer, model, serial_number, condition,
		purchase_value, current_value, status, assigned_to_employee_id, assigned_at, created_at, updated_at`

// Create persiste un activo nuevo. La placa tiene constraint único: una colisión
// (generación concurrente fuera de la secuencia atómica) sale como ErrConflict.
func (r *AssetRepo) Create(asset *entity.Asset) error {
	query := `
		INSERT INTO assets (id, asset_tag, name, category, manufacturer, model, serial_number, condition,
			purchase_value, current_value, status, assigned_to_employee_id, assigned_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.AssetTag, asset.Name, asset.Category, asset.Manufacturer, asset.Model,
		asset.SerialNumber, asset.Condition, asset.PurchaseValue, asset.CurrentValue,
		asset.Status, asset.AssignedToEmployeeID, asset.AssignedAt, asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByID obtiene un activo por ID. Devuelve (nil, nil) si no existe.
func (r *AssetRepo) GetByID(id string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get asset")
}

// GetForUpdate obtiene un activo y bloquea la fila (SELECT FOR UPDATE).
func (r *AssetRepo) GetForUpdate(id string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get asset for update")
}

// Update persiste los campos mutables de un activo.
func (r *AssetRepo) Update(asset *entity.Asset) error {
	query := `
		UPDATE assets
		SET name = $2, category = $3, manufacturer = $4, model = $5, serial_number = $6,
			condition = $7, purchase_value = $8, current_value = $9, status = $10,
			assigned_to_employee_id = $11, assigned_at = $12, updated_at = $13
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.Name, asset.Category, asset.Manufacturer, asset.Model, asset.SerialNumber,
		asset.Condition, asset.PurchaseValue, asset.CurrentValue, asset.Status,
		asset.AssignedToEmployeeID, asset.AssignedAt, asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista activos con filtros opcionales por estado y categoría.
func (r *AssetRepo) List(filter repository.AssetFilter, limit, offset int) ([]*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", pos)
		args = append(args, filter.Category)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Asset
	for rows.Next() {
		var a entity.Asset
		if err := rows.Scan(
			&a.ID, &a.AssetTag, &a.Name, &a.Category, &a.Manufacturer, &a.Model,
			&a.SerialNumber, &a.Condition, &a.PurchaseValue, &a.CurrentValue,
			&a.Status, &a.AssignedToEmployeeID, &a.AssignedAt, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *AssetRepo) scanOne(row pgx.Row, op string) (*entity.Asset, error) {
	var a entity.Asset
	err := row.Scan(
		&a.ID, &a.AssetTag, &a.Name, &a.Category, &a.Manufacturer, &a.Model,
		&a.SerialNumber, &a.Condition, &a.PurchaseValue, &a.CurrentValue,
		&a.Status, &a.AssignedToEmployeeID, &a.AssignedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}
