package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera del pedido.
func (r *OrderRepo) Create(order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO orders (id, order_date, customer_name, shipping_address, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderDate, order.CustomerName, order.ShippingAddress,
		nullIfEmpty(order.SupplierID), order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateLineItem persiste una línea del pedido con su foto de precio y bodega de despacho.
func (r *OrderRepo) CreateLineItem(line *entity.OrderLineItem) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO order_line_items (id, order_id, product_id, warehouse_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.OrderID, line.ProductID, line.WarehouseID, line.Quantity, line.UnitPrice,
	)
	if err != nil {
		return fmt.Errorf("insert order line item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido. Devuelve nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, order_date, customer_name, shipping_address, supplier_id, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	var supplierID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.OrderDate, &o.CustomerName, &o.ShippingAddress, &supplierID,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if supplierID != nil {
		o.SupplierID = *supplierID
	}
	return &o, nil
}

// GetLineItems obtiene las líneas de un pedido.
func (r *OrderRepo) GetLineItems(orderID string) ([]*entity.OrderLineItem, error) {
	query := `
		SELECT id, order_id, product_id, warehouse_id, quantity, unit_price
		FROM order_line_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order line items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderLineItem
	for rows.Next() {
		var li entity.OrderLineItem
		if err := rows.Scan(&li.ID, &li.OrderID, &li.ProductID, &li.WarehouseID, &li.Quantity, &li.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		list = append(list, &li)
	}
	return list, rows.Err()
}

// Delete elimina el pedido; las líneas caen por el ON DELETE CASCADE del esquema.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// DeleteLineItemsByProduct borra líneas que referencian un producto (baja de catálogo).
func (r *OrderRepo) DeleteLineItemsByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM order_line_items WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete line items by product: %w", err)
	}
	return nil
}

// CountBySupplier cuenta pedidos de compra contra un proveedor.
func (r *OrderRepo) CountBySupplier(supplierID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM orders WHERE supplier_id = $1`, supplierID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders by supplier: %w", err)
	}
	return count, nil
}

// ListSummaries devuelve todos los pedidos con conteo de líneas y valor total,
// ordenados por fecha descendente. Los agregados se derivan siempre de las
// líneas: total_value nunca se almacena.
func (r *OrderRepo) ListSummaries() ([]*repository.OrderSummary, error) {
	query := `
		SELECT o.id, o.order_date, o.customer_name, COALESCE(o.supplier_id::TEXT, ''),
		       COUNT(li.id) AS item_count,
		       COALESCE(SUM(li.quantity * li.unit_price), 0) AS total_value
		FROM orders o
		LEFT JOIN order_line_items li ON li.order_id = o.id
		GROUP BY o.id
		ORDER BY o.order_date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*repository.OrderSummary
	for rows.Next() {
		var s repository.OrderSummary
		if err := rows.Scan(&s.OrderID, &s.OrderDate, &s.CustomerName, &s.SupplierID,
			&s.ItemCount, &s.TotalValue); err != nil {
			return nil, fmt.Errorf("scan order summary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetDetailLines devuelve las líneas unidas con nombre y SKU del producto para la pantalla de detalle.
func (r *OrderRepo) GetDetailLines(orderID string) ([]*repository.OrderDetailLine, error) {
	query := `
		SELECT li.id, li.order_id, li.product_id, li.warehouse_id, li.quantity, li.unit_price,
		       p.name, p.sku
		FROM order_line_items li
		JOIN products p ON p.id = li.product_id
		WHERE li.order_id = $1 ORDER BY li.id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order detail: %w", err)
	}
	defer rows.Close()
	var list []*repository.OrderDetailLine
	for rows.Next() {
		var d repository.OrderDetailLine
		if err := rows.Scan(&d.ID, &d.OrderID, &d.ProductID, &d.WarehouseID,
			&d.Quantity, &d.UnitPrice, &d.ProductName, &d.SKU); err != nil {
			return nil, fmt.Errorf("scan order detail line: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
