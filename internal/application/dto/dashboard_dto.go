package dto

import "github.com/shopspring/decimal"

// LowStockResponse fila de existencias bajas del tablero.
type LowStockResponse struct {
	ProductName   string `json:"product_name"`
	WarehouseName string `json:"warehouse_name"`
	Quantity      int64  `json:"quantity"`
}

// DashboardResponse datos del tablero principal.
type DashboardResponse struct {
	TotalProducts            int                    `json:"total_products"`
	TotalSuppliers           int                    `json:"total_suppliers"`
	TotalWarehouses          int                    `json:"total_warehouses"`
	TotalStockValue          decimal.Decimal        `json:"total_stock_value"`
	TotalStockValueFormatted string                 `json:"total_stock_value_formatted"`
	RecentOrders             []OrderSummaryResponse `json:"recent_orders"`
	LowStock                 []LowStockResponse     `json:"low_stock"`
}
