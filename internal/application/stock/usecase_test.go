package stock_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/stock"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	mu     sync.Mutex
	qty    map[string]int64
	levels []*entity.StockLevel
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{qty: map[string]int64{}}
}

func key(p, w string) string { return p + "|" + w }

func (r *fakeStockRepo) GetQuantity(p, w string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.qty[key(p, w)], nil
}

// Adjust imita el incremento atómico del upsert real: leer-sumar-escribir
// bajo el mismo candado.
func (r *fakeStockRepo) Adjust(p, w string, delta int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.qty[key(p, w)] += delta
	return nil
}

func (r *fakeStockRepo) Set(p, w string, quantity int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.qty[key(p, w)] = quantity
	return nil
}

func (r *fakeStockRepo) Remove(p, w string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.qty, key(p, w))
	return nil
}
func (r *fakeStockRepo) RemoveByProduct(string) error                 { return nil }
func (r *fakeStockRepo) CountPositiveByWarehouse(string) (int, error) { return 0, nil }
func (r *fakeStockRepo) ListLevels() ([]*entity.StockLevel, error)    { return r.levels, nil }

func level(name string, qty int64, cost string) *entity.StockLevel {
	return &entity.StockLevel{
		Stock: entity.Stock{
			ProductID:   "p-" + name,
			WarehouseID: "w-1",
			Quantity:    qty,
			UpdatedAt:   time.Now(),
		},
		ProductName: name,
		SKU:         "SKU-" + name,
		UnitCost:    decimal.RequireFromString(cost),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGetQuantityLlaveSinMovimientosEsCero(t *testing.T) {
	uc := stock.NewUseCase(newFakeStockRepo())

	resp, err := uc.GetQuantity(context.Background(), "p-1", "w-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Quantity, "ausencia de fila significa cero, no error")
}

func TestAdjustAcumulaSobreLaMismaLlave(t *testing.T) {
	repo := newFakeStockRepo()
	uc := stock.NewUseCase(repo)

	_, err := uc.Adjust(context.Background(), dto.AdjustStockRequest{ProductID: "p-1", WarehouseID: "w-1", Delta: 10})
	require.NoError(t, err)
	resp, err := uc.Adjust(context.Background(), dto.AdjustStockRequest{ProductID: "p-1", WarehouseID: "w-1", Delta: -3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Quantity)

	// Misma llave compuesta: otra bodega es otra fila
	other, err := uc.GetQuantity(context.Background(), "p-1", "w-2")
	require.NoError(t, err)
	assert.Equal(t, int64(0), other.Quantity)
}

func TestAdjustDeltaCeroEsInvalido(t *testing.T) {
	uc := stock.NewUseCase(newFakeStockRepo())

	_, err := uc.Adjust(context.Background(), dto.AdjustStockRequest{ProductID: "p-1", WarehouseID: "w-1", Delta: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetSobrescribeYRemoveElimina(t *testing.T) {
	repo := newFakeStockRepo()
	uc := stock.NewUseCase(repo)

	resp, err := uc.Set(context.Background(), dto.SetStockRequest{ProductID: "p-1", WarehouseID: "w-1", Quantity: 42})
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.Quantity)

	require.NoError(t, uc.Remove(context.Background(), "p-1", "w-1"))
	after, err := uc.GetQuantity(context.Background(), "p-1", "w-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), after.Quantity)
}

func TestSetCantidadNegativaEsInvalida(t *testing.T) {
	uc := stock.NewUseCase(newFakeStockRepo())

	_, err := uc.Set(context.Background(), dto.SetStockRequest{ProductID: "p-1", WarehouseID: "w-1", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustConcurrenteConvergeAlTotalNeto(t *testing.T) {
	repo := newFakeStockRepo()
	uc := stock.NewUseCase(repo)

	// 50 ajustes de +2 y 50 de -1 en paralelo sobre la misma llave:
	// ninguna actualización debe perderse.
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = uc.Adjust(context.Background(), dto.AdjustStockRequest{ProductID: "p-1", WarehouseID: "w-1", Delta: 2})
		}()
		go func() {
			defer wg.Done()
			_, _ = uc.Adjust(context.Background(), dto.AdjustStockRequest{ProductID: "p-1", WarehouseID: "w-1", Delta: -1})
		}()
	}
	wg.Wait()

	resp, err := uc.GetQuantity(context.Background(), "p-1", "w-1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), resp.Quantity)
}

func TestListLevelsClasificaYValoriza(t *testing.T) {
	repo := newFakeStockRepo()
	repo.levels = []*entity.StockLevel{
		level("agotado", 0, "10.00"),
		level("bajo", 4, "10.00"),
		level("medio", 19, "2.00"),
		level("bueno", 20, "1.50"),
		level("negativo", -3, "5.00"),
	}
	uc := stock.NewUseCase(repo)

	resp, err := uc.ListLevels(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Items, 5)

	byName := map[string]dto.StockLevelResponse{}
	for _, it := range resp.Items {
		byName[it.ProductName] = it
	}
	assert.Equal(t, "out_of_stock", byName["agotado"].Status)
	assert.Equal(t, "low", byName["bajo"].Status)
	assert.Equal(t, "medium", byName["medio"].Status)
	assert.Equal(t, "good", byName["bueno"].Status)
	assert.Equal(t, "out_of_stock", byName["negativo"].Status)

	// Valor por fila = cantidad × costo
	assert.True(t, byName["bajo"].TotalValue.Equal(decimal.RequireFromString("40.00")))
	// El total del inventario solo suma filas con existencia positiva
	want := decimal.RequireFromString("40.00").
		Add(decimal.RequireFromString("38.00")).
		Add(decimal.RequireFromString("30.00"))
	assert.True(t, resp.TotalStockValue.Equal(want), "total esperado %s, obtenido %s", want, resp.TotalStockValue)
}
