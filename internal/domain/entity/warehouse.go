package entity

import "time"

// Warehouse representa una bodega desde la que se despachan pedidos.
type Warehouse struct {
	ID        string
	Name      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
