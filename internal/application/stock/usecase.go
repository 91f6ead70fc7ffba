package stock

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// Umbrales de la pantalla de administración de stock.
const (
	lowStockThreshold    = 5
	mediumStockThreshold = 20
)

// UseCase operaciones administrativas sobre el libro de existencias:
// consulta, ajuste con signo, corrección manual y baja de llaves.
type UseCase struct {
	stockRepo repository.StockRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(stockRepo repository.StockRepository) *UseCase {
	return &UseCase{stockRepo: stockRepo}
}

// GetQuantity devuelve la cantidad disponible de una llave; 0 si nunca se
// ha registrado movimiento.
func (uc *UseCase) GetQuantity(ctx context.Context, productID, warehouseID string) (*dto.StockQuantityResponse, error) {
	if productID == "" || warehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	qty, err := uc.stockRepo.GetQuantity(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	return &dto.StockQuantityResponse{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    qty,
	}, nil
}

// Adjust aplica un delta con signo. Un delta cero no tiene efecto y se
// rechaza como entrada inválida.
func (uc *UseCase) Adjust(ctx context.Context, in dto.AdjustStockRequest) (*dto.StockQuantityResponse, error) {
	if in.ProductID == "" || in.WarehouseID == "" || in.Delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.stockRepo.Adjust(in.ProductID, in.WarehouseID, in.Delta); err != nil {
		return nil, err
	}
	return uc.GetQuantity(ctx, in.ProductID, in.WarehouseID)
}

// Set sobrescribe la cantidad de una llave (corrección manual de inventario).
func (uc *UseCase) Set(ctx context.Context, in dto.SetStockRequest) (*dto.StockQuantityResponse, error) {
	if in.ProductID == "" || in.WarehouseID == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.stockRepo.Set(in.ProductID, in.WarehouseID, in.Quantity); err != nil {
		return nil, err
	}
	return uc.GetQuantity(ctx, in.ProductID, in.WarehouseID)
}

// Remove elimina la fila de la llave. Equivale a cantidad cero.
func (uc *UseCase) Remove(ctx context.Context, productID, warehouseID string) error {
	if productID == "" || warehouseID == "" {
		return domain.ErrInvalidInput
	}
	return uc.stockRepo.Remove(productID, warehouseID)
}

// ListLevels lista las existencias con datos de catálogo, el valor de cada
// fila a costo y el valor total del inventario.
func (uc *UseCase) ListLevels(ctx context.Context) (*dto.StockLevelListResponse, error) {
	levels, err := uc.stockRepo.ListLevels()
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockLevelResponse, 0, len(levels))
	total := decimal.Zero
	for _, lv := range levels {
		rowValue := lv.UnitCost.Mul(decimal.NewFromInt(lv.Quantity))
		if lv.Quantity > 0 {
			total = total.Add(rowValue)
		}
		items = append(items, dto.StockLevelResponse{
			ProductID:     lv.ProductID,
			ProductName:   lv.ProductName,
			SKU:           lv.SKU,
			WarehouseID:   lv.WarehouseID,
			WarehouseName: lv.WarehouseName,
			Quantity:      lv.Quantity,
			UnitCost:      lv.UnitCost,
			SellingPrice:  lv.SellingPrice,
			TotalValue:    rowValue,
			Status:        statusFor(lv.Quantity),
			UpdatedAt:     lv.UpdatedAt,
		})
	}
	return &dto.StockLevelListResponse{Items: items, TotalStockValue: total}, nil
}

// statusFor clasifica la cantidad para la pantalla de administración.
func statusFor(qty int64) string {
	switch {
	case qty <= 0:
		return "out_of_stock"
	case qty < lowStockThreshold:
		return "low"
	case qty < mediumStockThreshold:
		return "medium"
	default:
		return "good"
	}
}
