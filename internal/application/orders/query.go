package orders

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// QueryUseCase lecturas de pedidos: listado y detalle. Los totales se derivan
// de las líneas al leer, nunca se almacenan.
type QueryUseCase struct {
	orderRepo repository.OrderRepository
	pdfGen    PackingSlipGenerator
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(orderRepo repository.OrderRepository, pdfGen PackingSlipGenerator) *QueryUseCase {
	return &QueryUseCase{orderRepo: orderRepo, pdfGen: pdfGen}
}

// ListOrders lista todos los pedidos, más reciente primero, con conteo de
// ítems y valor total por pedido.
func (uc *QueryUseCase) ListOrders(ctx context.Context) (*dto.OrderListResponse, error) {
	summaries, err := uc.orderRepo.ListSummaries()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, dto.OrderSummaryResponse{
			OrderID:      s.OrderID,
			OrderDate:    s.OrderDate,
			CustomerName: s.CustomerName,
			SupplierID:   s.SupplierID,
			ItemCount:    s.ItemCount,
			TotalValue:   s.TotalValue,
		})
	}
	return &dto.OrderListResponse{Items: items}, nil
}

// GetOrderDetail devuelve la cabecera con sus líneas (nombre y SKU del
// producto incluidos) y el total derivado.
func (uc *QueryUseCase) GetOrderDetail(ctx context.Context, orderID string) (*dto.OrderDetailResponse, error) {
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, &domain.UnknownOrderError{OrderID: orderID}
	}
	detail, err := uc.orderRepo.GetDetailLines(orderID)
	if err != nil {
		return nil, err
	}
	lines := make([]dto.OrderLineResponse, 0, len(detail))
	raw := make([]*entity.OrderLineItem, 0, len(detail))
	for _, dl := range detail {
		li := dl.OrderLineItem
		raw = append(raw, &li)
		lines = append(lines, dto.OrderLineResponse{
			ID:          li.ID,
			ProductID:   li.ProductID,
			ProductName: dl.ProductName,
			SKU:         dl.SKU,
			WarehouseID: li.WarehouseID,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Subtotal:    li.Subtotal(),
		})
	}
	return &dto.OrderDetailResponse{
		OrderID:         order.ID,
		OrderDate:       order.OrderDate,
		CustomerName:    order.CustomerName,
		ShippingAddress: order.ShippingAddress,
		SupplierID:      order.SupplierID,
		Lines:           lines,
		TotalValue:      entity.OrderTotal(raw),
	}, nil
}

// GetPackingSlipPDF genera la guía de despacho del pedido en PDF.
func (uc *QueryUseCase) GetPackingSlipPDF(ctx context.Context, orderID string) ([]byte, error) {
	detail, err := uc.GetOrderDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GeneratePackingSlip(ctx, detail)
}
