package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// SellingPrice es el precio vigente; los pedidos congelan su propio unit_price
// al momento de crearse, así que cambiarlo aquí nunca afecta pedidos pasados.
type Product struct {
	ID           string
	SKU          string // código único
	Name         string
	Description  string
	SupplierID   string // vacío = sin proveedor asociado
	UnitCost     decimal.Decimal
	SellingPrice decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
