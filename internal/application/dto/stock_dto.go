package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest entrada para un ajuste con signo sobre una llave (producto, bodega).
type AdjustStockRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Delta       int64  `json:"delta" validate:"required"`
}

// SetStockRequest entrada para sobrescribir la cantidad (corrección manual).
type SetStockRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Quantity    int64  `json:"quantity" validate:"min=0"`
}

// StockQuantityResponse cantidad disponible de una llave (producto, bodega).
type StockQuantityResponse struct {
	ProductID   string `json:"product_id"`
	WarehouseID string `json:"warehouse_id"`
	Quantity    int64  `json:"quantity"`
}

// StockLevelResponse fila de la pantalla de administración de stock.
type StockLevelResponse struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	SKU           string          `json:"sku"`
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	Quantity      int64           `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	TotalValue    decimal.Decimal `json:"total_value"` // quantity × unit_cost
	Status        string          `json:"status"`      // out_of_stock, low, medium, good
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StockLevelListResponse listado de existencias con el valor total del inventario.
type StockLevelListResponse struct {
	Items           []StockLevelResponse `json:"items"`
	TotalStockValue decimal.Decimal      `json:"total_stock_value"`
}
