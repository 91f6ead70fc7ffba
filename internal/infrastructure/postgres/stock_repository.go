package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador del libro de existencias. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// GetQuantity obtiene la cantidad disponible de un producto en una bodega.
// La ausencia de fila significa cero, no error.
func (r *StockRepo) GetQuantity(productID, warehouseID string) (int64, error) {
	query := `
		SELECT quantity_on_hand
		FROM stocks WHERE product_id = $1 AND warehouse_id = $2`
	var qty int64
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get stock quantity: %w", err)
	}
	return qty, nil
}

// Adjust aplica un delta con signo en un solo statement atómico: el upsert
// incrementa sobre el valor actual de la fila bloqueada, así dos llamadas
// concurrentes sobre la misma llave se serializan en la base y ninguna
// actualización se pierde. Crea la fila contra baseline cero si no existe.
// No recorta en cero: un resultado negativo se acepta y se almacena.
// La bodega no se valida (warehouse_id no lleva llave foránea); un producto
// que no existe en el catálogo devuelve UnknownProductError.
func (r *StockRepo) Adjust(productID, warehouseID string, delta int64) error {
	query := `
		INSERT INTO stocks (product_id, warehouse_id, quantity_on_hand, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity_on_hand = stocks.quantity_on_hand + EXCLUDED.quantity_on_hand, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productID, warehouseID, delta)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.UnknownProductError{ProductID: productID}
		}
		return fmt.Errorf("adjust stock: %w", err)
	}
	return nil
}

// Set sobrescribe la cantidad (corrección manual desde la pantalla de stock).
func (r *StockRepo) Set(productID, warehouseID string, quantity int64) error {
	query := `
		INSERT INTO stocks (product_id, warehouse_id, quantity_on_hand, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity_on_hand = EXCLUDED.quantity_on_hand, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productID, warehouseID, quantity)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.UnknownProductError{ProductID: productID}
		}
		return fmt.Errorf("set stock: %w", err)
	}
	return nil
}

// Remove elimina la fila de existencias por completo.
func (r *StockRepo) Remove(productID, warehouseID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stocks WHERE product_id = $1 AND warehouse_id = $2`, productID, warehouseID)
	if err != nil {
		return fmt.Errorf("remove stock: %w", err)
	}
	return nil
}

// RemoveByProduct elimina todas las filas de un producto (baja de catálogo).
func (r *StockRepo) RemoveByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM stocks WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("remove stock by product: %w", err)
	}
	return nil
}

// CountPositiveByWarehouse cuenta filas con existencia > 0 en una bodega
// (bloquea la eliminación de bodegas con inventario).
func (r *StockRepo) CountPositiveByWarehouse(warehouseID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM stocks WHERE warehouse_id = $1 AND quantity_on_hand > 0`,
		warehouseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count stock by warehouse: %w", err)
	}
	return count, nil
}

// ListLevels lista existencias con datos de producto y bodega para la pantalla de administración.
func (r *StockRepo) ListLevels() ([]*entity.StockLevel, error) {
	query := `
		SELECT s.product_id, s.warehouse_id, s.quantity_on_hand, s.updated_at,
		       p.name, p.sku, w.name, p.unit_cost, p.selling_price
		FROM stocks s
		JOIN products p ON p.id = s.product_id
		JOIN warehouses w ON w.id = s.warehouse_id
		ORDER BY p.name, w.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLevel
	for rows.Next() {
		var lv entity.StockLevel
		if err := rows.Scan(
			&lv.ProductID, &lv.WarehouseID, &lv.Quantity, &lv.UpdatedAt,
			&lv.ProductName, &lv.SKU, &lv.WarehouseName, &lv.UnitCost, &lv.SellingPrice,
		); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, &lv)
	}
	return list, rows.Err()
}
