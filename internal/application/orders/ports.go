package orders

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de base de datos. Los
// repositorios que recibe fn están ligados a la transacción: todo lo que fn
// escriba se confirma junto, o se revierte junto si fn devuelve error.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// PackingSlipGenerator genera la guía de despacho de un pedido en PDF.
type PackingSlipGenerator interface {
	GeneratePackingSlip(ctx context.Context, detail *dto.OrderDetailResponse) ([]byte, error)
}
