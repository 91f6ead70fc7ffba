package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa la existencia disponible de un producto en una bodega.
// La fila se crea de forma perezosa en el primer ajuste; ausencia significa
// cantidad cero, no error. La cantidad puede quedar negativa: el libro no
// impone piso (política permisiva heredada del flujo de pedidos).
type Stock struct {
	ProductID   string
	WarehouseID string
	Quantity    int64
	UpdatedAt   time.Time
}

// StockLevel es la vista de existencias para administración: la fila de stock
// junto con los datos de producto y bodega que la pantalla necesita.
type StockLevel struct {
	Stock
	ProductName   string
	SKU           string
	WarehouseName string
	UnitCost      decimal.Decimal
	SellingPrice  decimal.Decimal
}
