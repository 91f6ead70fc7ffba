package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest una línea solicitada al crear un pedido.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest entrada para crear un pedido.
// WarehouseID es la bodega de despacho de todas las líneas.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" validate:"required,min=1,max=200"`
	ShippingAddress string             `json:"shipping_address"`
	SupplierID      string             `json:"supplier_id"` // opcional: pedido de compra
	WarehouseID     string             `json:"warehouse_id" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1"`
}

// CreateOrderResponse salida de la creación de un pedido.
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
}

// OrderSummaryResponse fila del listado de pedidos.
type OrderSummaryResponse struct {
	OrderID      string          `json:"order_id"`
	OrderDate    time.Time       `json:"order_date"`
	CustomerName string          `json:"customer_name"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	ItemCount    int             `json:"item_count"`
	TotalValue   decimal.Decimal `json:"total_value"`
}

// OrderListResponse listado de pedidos, más reciente primero.
type OrderListResponse struct {
	Items []OrderSummaryResponse `json:"items"`
}

// OrderLineResponse línea de pedido para la pantalla de detalle.
type OrderLineResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	WarehouseID string          `json:"warehouse_id"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderDetailResponse cabecera del pedido con sus líneas y total derivado.
type OrderDetailResponse struct {
	OrderID         string              `json:"order_id"`
	OrderDate       time.Time           `json:"order_date"`
	CustomerName    string              `json:"customer_name"`
	ShippingAddress string              `json:"shipping_address,omitempty"`
	SupplierID      string              `json:"supplier_id,omitempty"`
	Lines           []OrderLineResponse `json:"lines"`
	TotalValue      decimal.Decimal     `json:"total_value"`
}
