package entity

import "time"

// Supplier representa un proveedor del catálogo.
type Supplier struct {
	ID          string
	Name        string
	ContactInfo string // vacío si no se registró contacto
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
