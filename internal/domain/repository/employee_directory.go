package repository

// EmployeeDirectory es el puerto mínimo hacia el registro de personas, que vive
// fuera de este módulo. Solo se consulta existencia: aquí no hay CRUD de empleados.
type EmployeeDirectory interface {
	Exists(employeeID string) (bool, error)
}
