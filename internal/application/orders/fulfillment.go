package orders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// FulfillmentUseCase crea y cancela pedidos con ajuste de stock atómico.
// Cada operación corre completa dentro de una transacción: o el pedido y
// todos sus descuentos de stock quedan, o no queda nada.
type FulfillmentUseCase struct {
	tx TxRunner
}

// NewFulfillmentUseCase construye el caso de uso.
func NewFulfillmentUseCase(tx TxRunner) *FulfillmentUseCase {
	return &FulfillmentUseCase{tx: tx}
}

// CreateOrder crea la cabecera, una línea por ítem con el precio de venta
// vigente como foto, y descuenta la cantidad de cada línea de la bodega de
// despacho. La validación de forma ocurre antes de tocar la base de datos;
// un producto inexistente dentro de la transacción la revierte entera.
// No valida disponibilidad: el stock puede quedar negativo.
func (uc *FulfillmentUseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if in.CustomerName == "" || in.WarehouseID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	orderID := uuid.New().String()
	now := time.Now()

	err := uc.tx.Run(ctx, func(orderRepo repository.OrderRepository, stockRepo repository.StockRepository, productRepo repository.ProductRepository) error {
		order := &entity.Order{
			ID:              orderID,
			OrderDate:       now,
			CustomerName:    in.CustomerName,
			ShippingAddress: in.ShippingAddress,
			SupplierID:      in.SupplierID,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for _, it := range in.Items {
			product, err := productRepo.GetByID(it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return &domain.UnknownProductError{ProductID: it.ProductID}
			}
			line := &entity.OrderLineItem{
				ID:          uuid.New().String(),
				OrderID:     orderID,
				ProductID:   it.ProductID,
				WarehouseID: in.WarehouseID,
				Quantity:    it.Quantity,
				UnitPrice:   product.SellingPrice,
			}
			if err := orderRepo.CreateLineItem(line); err != nil {
				return err
			}
			if err := stockRepo.Adjust(it.ProductID, in.WarehouseID, -it.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateOrderResponse{OrderID: orderID}, nil
}

// CancelOrder devuelve la cantidad de cada línea a su bodega de despacho y
// borra el pedido con sus líneas, todo en una transacción. La restauración
// no depende del catálogo: funciona aunque el producto ya no exista.
func (uc *FulfillmentUseCase) CancelOrder(ctx context.Context, orderID string) error {
	if orderID == "" {
		return domain.ErrInvalidInput
	}
	return uc.tx.Run(ctx, func(orderRepo repository.OrderRepository, stockRepo repository.StockRepository, _ repository.ProductRepository) error {
		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return &domain.UnknownOrderError{OrderID: orderID}
		}
		lines, err := orderRepo.GetLineItems(orderID)
		if err != nil {
			return err
		}
		for _, li := range lines {
			if err := stockRepo.Adjust(li.ProductID, li.WarehouseID, li.Quantity); err != nil {
				return err
			}
		}
		return orderRepo.Delete(orderID)
	})
}
