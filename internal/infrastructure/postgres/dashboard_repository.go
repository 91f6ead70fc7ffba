package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el tablero principal.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del tablero.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetStats devuelve los contadores del tablero y el valor total del inventario
// (Σ quantity_on_hand × unit_cost sobre todas las filas de stock).
func (r *DashboardRepo) GetStats(ctx context.Context) (*repository.DashboardStats, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM products)                                       AS total_products,
	    (SELECT COUNT(*) FROM suppliers)                                      AS total_suppliers,
	    (SELECT COUNT(*) FROM warehouses)                                     AS total_warehouses,
	    COALESCE((SELECT SUM(s.quantity_on_hand * p.unit_cost)
	              FROM stocks s JOIN products p ON p.id = s.product_id), 0)   AS total_stock_value`
	var stats repository.DashboardStats
	err := r.q.QueryRow(ctx, query).Scan(
		&stats.TotalProducts, &stats.TotalSuppliers, &stats.TotalWarehouses, &stats.TotalStockValue,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}

// RecentOrders devuelve los últimos pedidos con sus agregados, más reciente primero.
func (r *DashboardRepo) RecentOrders(ctx context.Context, limit int) ([]*repository.OrderSummary, error) {
	const query = `
	SELECT o.id, o.order_date, o.customer_name, COALESCE(o.supplier_id::TEXT, ''),
	       COUNT(li.id)                                  AS item_count,
	       COALESCE(SUM(li.quantity * li.unit_price), 0) AS total_value
	FROM orders o
	LEFT JOIN order_line_items li ON li.order_id = o.id
	GROUP BY o.id
	ORDER BY o.order_date DESC
	LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	defer rows.Close()
	var list []*repository.OrderSummary
	for rows.Next() {
		var s repository.OrderSummary
		if err := rows.Scan(&s.OrderID, &s.OrderDate, &s.CustomerName, &s.SupplierID,
			&s.ItemCount, &s.TotalValue); err != nil {
			return nil, fmt.Errorf("scan recent order: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// LowStock lista existencias por debajo del umbral, las más bajas primero.
func (r *DashboardRepo) LowStock(ctx context.Context, threshold int64) ([]*repository.LowStockItem, error) {
	const query = `
	SELECT p.name, w.name, s.quantity_on_hand
	FROM stocks s
	JOIN products p ON p.id = s.product_id
	JOIN warehouses w ON w.id = s.warehouse_id
	WHERE s.quantity_on_hand < $1
	ORDER BY s.quantity_on_hand ASC`
	rows, err := r.q.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()
	var list []*repository.LowStockItem
	for rows.Next() {
		var item repository.LowStockItem
		if err := rows.Scan(&item.ProductName, &item.WarehouseName, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
