package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// OrderSummary es la fila del listado de pedidos: cabecera más agregados
// derivados de las líneas (conteo y valor total, nunca almacenados).
type OrderSummary struct {
	OrderID      string
	OrderDate    time.Time
	CustomerName string
	SupplierID   string
	ItemCount    int
	TotalValue   decimal.Decimal
}

// OrderDetailLine es una línea de pedido unida con los datos de catálogo
// que la pantalla de detalle muestra.
type OrderDetailLine struct {
	entity.OrderLineItem
	ProductName string
	SKU         string
}

// OrderRepository define el puerto de persistencia para pedidos y sus líneas.
// Las líneas pertenecen exclusivamente a su pedido: Delete las borra en cascada.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateLineItem(line *entity.OrderLineItem) error
	GetByID(id string) (*entity.Order, error)
	GetLineItems(orderID string) ([]*entity.OrderLineItem, error)
	Delete(id string) error
	// DeleteLineItemsByProduct borra líneas huérfanas al dar de baja un producto.
	DeleteLineItemsByProduct(productID string) error
	CountBySupplier(supplierID string) (int, error)
	// ListSummaries devuelve todos los pedidos con item_count y total_value,
	// ordenados por fecha descendente.
	ListSummaries() ([]*OrderSummary, error)
	// GetDetailLines devuelve las líneas unidas con nombre y SKU del producto.
	GetDetailLines(orderID string) ([]*OrderDetailLine, error)
}
