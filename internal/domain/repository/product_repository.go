package repository

import "github.com/jhoicas/Pedidos-api/internal/domain/entity"

// ProductWithSupplier es la fila del listado de productos, con el nombre del
// proveedor resuelto (vacío si el producto no tiene proveedor).
type ProductWithSupplier struct {
	entity.Product
	SupplierName string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*ProductWithSupplier, error)
	Delete(id string) error
	CountBySupplier(supplierID string) (int, error)
}
