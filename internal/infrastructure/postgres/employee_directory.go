package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.EmployeeDirectory = (*EmployeeDirectory)(nil)

// EmployeeDirectory consulta existencia de empleados contra la tabla employees,
// que administra otro sistema. Aquí solo se lee.
type EmployeeDirectory struct {
	q Querier
}

// NewEmployeeDirectory construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeDirectory(q Querier) *EmployeeDirectory {
	return &EmployeeDirectory{q: q}
}

// Exists indica si el empleado existe y está activo.
func (d *EmployeeDirectory) Exists(employeeID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1 AND active)`
	var exists bool
	if err := d.q.QueryRow(context.Background(), query, employeeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("employee exists: %w", err)
	}
	return exists, nil
}
