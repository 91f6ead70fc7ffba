package usecase

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
	"github.com/jhoicas/Pedidos-api/pkg/money"
)

// Parámetros del tablero principal.
const (
	recentOrdersLimit = 5
	lowStockThreshold = 10
)

// DashboardUseCase arma el tablero principal: contadores, valor total del
// inventario, pedidos recientes y existencias bajas.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Get devuelve los datos del tablero.
func (uc *DashboardUseCase) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := uc.repo.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.repo.RecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}
	low, err := uc.repo.LowStock(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}

	recentOut := make([]dto.OrderSummaryResponse, 0, len(recent))
	for _, s := range recent {
		recentOut = append(recentOut, dto.OrderSummaryResponse{
			OrderID:      s.OrderID,
			OrderDate:    s.OrderDate,
			CustomerName: s.CustomerName,
			SupplierID:   s.SupplierID,
			ItemCount:    s.ItemCount,
			TotalValue:   s.TotalValue,
		})
	}
	lowOut := make([]dto.LowStockResponse, 0, len(low))
	for _, it := range low {
		lowOut = append(lowOut, dto.LowStockResponse{
			ProductName:   it.ProductName,
			WarehouseName: it.WarehouseName,
			Quantity:      it.Quantity,
		})
	}
	return &dto.DashboardResponse{
		TotalProducts:            stats.TotalProducts,
		TotalSuppliers:           stats.TotalSuppliers,
		TotalWarehouses:          stats.TotalWarehouses,
		TotalStockValue:          stats.TotalStockValue,
		TotalStockValueFormatted: money.Format(stats.TotalStockValue),
		RecentOrders:             recentOut,
		LowStock:                 lowOut,
	}, nil
}
