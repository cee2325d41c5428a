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

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación del puerto TransferRepository sobre PostgreSQL (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de persistencia de traslados. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

const transferColumns = `id, transfer_number, asset_id, employee_id, requested_by_id, approved_by_id,
		rejected_by_id, type, status, original_value, depreciated_value, sale_price, reason, notes,
		rejection_reason, employee_accepted, employee_accepted_at, employee_signature,
		requested_at, approved_at, rejected_at, completed_at`

// Create persiste un traslado nuevo. El número de traslado tiene constraint único.
func (r *TransferRepo) Create(t *entity.AssetTransfer) error {
	query := `
		INSERT INTO asset_transfers (id, transfer_number, asset_id, employee_id, requested_by_id,
			approved_by_id, rejected_by_id, type, status, original_value, depreciated_value, sale_price,
			reason, notes, rejection_reason, employee_accepted, employee_accepted_at, employee_signature,
			requested_at, approved_at, rejected_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.TransferNumber, t.AssetID, t.EmployeeID, t.RequestedByID,
		t.ApprovedByID, t.RejectedByID, t.Type, t.Status, t.OriginalValue, t.DepreciatedValue, t.SalePrice,
		t.Reason, t.Notes, t.RejectionReason, t.EmployeeAccepted, t.EmployeeAcceptedAt, t.EmployeeSignature,
		t.RequestedAt, t.ApprovedAt, t.RejectedAt, t.CompletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// GetByID obtiene un traslado por ID. Devuelve (nil, nil) si no existe.
func (r *TransferRepo) GetByID(id string) (*entity.AssetTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM asset_transfers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get transfer")
}

// GetForUpdate obtiene un traslado y bloquea la fila (SELECT FOR UPDATE):
// de dos transiciones concurrentes sobre el mismo traslado gana exactamente una.
func (r *TransferRepo) GetForUpdate(id string) (*entity.AssetTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM asset_transfers WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get transfer for update")
}

// GetActiveByAsset devuelve el traslado no terminal que referencia al activo, si existe.
func (r *TransferRepo) GetActiveByAsset(assetID string) (*entity.AssetTransfer, error) {
	query := `SELECT ` + transferColumns + `
		FROM asset_transfers
		WHERE asset_id = $1 AND status IN ('PENDING', 'APPROVED', 'ACCEPTED')
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, assetID), "get active transfer")
}

// Update persiste los campos mutables de un traslado.
func (r *TransferRepo) Update(t *entity.AssetTransfer) error {
	query := `
		UPDATE asset_transfers
		SET status = $2, approved_by_id = $3, rejected_by_id = $4, rejection_reason = $5,
			employee_accepted = $6, employee_accepted_at = $7, employee_signature = $8,
			approved_at = $9, rejected_at = $10, completed_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		t.ID, t.Status, t.ApprovedByID, t.RejectedByID, t.RejectionReason,
		t.EmployeeAccepted, t.EmployeeAcceptedAt, t.EmployeeSignature,
		t.ApprovedAt, t.RejectedAt, t.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update transfer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista traslados con filtro opcional por estado.
func (r *TransferRepo) List(status string, limit, offset int) ([]*entity.AssetTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM asset_transfers`
	args := []any{}
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY requested_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.AssetTransfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *TransferRepo) scanOne(row pgx.Row, op string) (*entity.AssetTransfer, error) {
	t, err := scanTransfer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

func scanTransfer(row pgx.Row) (*entity.AssetTransfer, error) {
	var t entity.AssetTransfer
	err := row.Scan(
		&t.ID, &t.TransferNumber, &t.AssetID, &t.EmployeeID, &t.RequestedByID, &t.ApprovedByID,
		&t.RejectedByID, &t.Type, &t.Status, &t.OriginalValue, &t.DepreciatedValue, &t.SalePrice,
		&t.Reason, &t.Notes, &t.RejectionReason, &t.EmployeeAccepted, &t.EmployeeAcceptedAt,
		&t.EmployeeSignature, &t.RequestedAt, &t.ApprovedAt, &t.RejectedAt, &t.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
