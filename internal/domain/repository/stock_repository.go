package repository

import "github.com/jhoicas/Pedidos-api/internal/domain/entity"

// StockRepository define el puerto del libro de existencias por (producto, bodega).
// Adjust debe ser un incremento atómico en la capa de almacenamiento: nada de
// leer-y-escribir por separado, o dos llamadas concurrentes perderían actualizaciones.
type StockRepository interface {
	// GetQuantity devuelve la cantidad disponible; 0 si la fila no existe.
	GetQuantity(productID, warehouseID string) (int64, error)
	// Adjust aplica un delta con signo sobre el valor actual (baseline 0 si la
	// fila no existe). No recorta en cero: un resultado negativo se acepta.
	Adjust(productID, warehouseID string, delta int64) error
	// Set sobrescribe la cantidad (corrección manual de inventario).
	Set(productID, warehouseID string, quantity int64) error
	// Remove elimina la fila por completo.
	Remove(productID, warehouseID string) error
	// RemoveByProduct elimina todas las filas de un producto (baja de catálogo).
	RemoveByProduct(productID string) error
	// CountPositiveByWarehouse cuenta filas con existencia > 0 en una bodega.
	CountPositiveByWarehouse(warehouseID string) (int, error)
	// ListLevels lista existencias con nombres de producto y bodega para administración.
	ListLevels() ([]*entity.StockLevel, error)
}
