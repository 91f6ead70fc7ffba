package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa la cabecera de un pedido.
// SupplierID es opcional y se interpreta como "pedido de compra contra este
// proveedor".
type Order struct {
	ID              string
	OrderDate       time.Time
	CustomerName    string
	ShippingAddress string // vacío si no aplica
	SupplierID      string // vacío = pedido de venta normal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderLineItem es una línea de pedido. UnitPrice es la foto del precio de
// venta al momento de crear el pedido, inmutable aunque el catálogo cambie.
// WarehouseID es la bodega de despacho de la línea; se usa para restaurar
// stock a la bodega correcta al cancelar.
type OrderLineItem struct {
	ID          string
	OrderID     string
	ProductID   string
	WarehouseID string
	Quantity    int64
	UnitPrice   decimal.Decimal
}

// Subtotal devuelve quantity × unit_price de la línea.
func (li *OrderLineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))
}

// OrderTotal calcula el valor total de un pedido a partir de sus líneas.
// Nunca se almacena; siempre se deriva al leer.
func OrderTotal(lines []*OrderLineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range lines {
		total = total.Add(li.Subtotal())
	}
	return total
}
