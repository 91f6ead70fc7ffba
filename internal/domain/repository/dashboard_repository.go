package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// LowStockItem es una fila del listado de existencias bajas del tablero.
type LowStockItem struct {
	ProductName   string
	WarehouseName string
	Quantity      int64
}

// DashboardStats agrupa los contadores del tablero principal.
type DashboardStats struct {
	TotalProducts   int
	TotalSuppliers  int
	TotalWarehouses int
	TotalStockValue decimal.Decimal // Σ quantity_on_hand × unit_cost
}

// DashboardRepository define consultas de solo lectura para el tablero.
// Sin acoplamiento transaccional: lee únicamente estado ya confirmado.
type DashboardRepository interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
	RecentOrders(ctx context.Context, limit int) ([]*OrderSummary, error)
	LowStock(ctx context.Context, threshold int64) ([]*LowStockItem, error)
}
