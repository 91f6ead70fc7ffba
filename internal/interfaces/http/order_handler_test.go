package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/orders"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Pedidos-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products map[string]*entity.Product
	orders   map[string]*entity.Order
	lines    map[string][]*entity.OrderLineItem
	stock    map[string]int64
}

func newMemStore() *memStore {
	return &memStore{
		products: map[string]*entity.Product{},
		orders:   map[string]*entity.Order{},
		lines:    map[string][]*entity.OrderLineItem{},
		stock:    map[string]int64{},
	}
}

func stockKey(p, w string) string { return p + "|" + w }

// fakeTxRunner ejecuta fn directamente sobre el estado; suficiente para
// probar el mapeo HTTP (la semántica transaccional se prueba en la capa de
// aplicación).
type fakeTxRunner struct{ s *memStore }

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	repository.OrderRepository,
	repository.StockRepository,
	repository.ProductRepository,
) error) error {
	return fn(&fakeOrderRepo{s: f.s}, &fakeStockRepo{s: f.s}, &fakeProductRepo{s: f.s})
}

type fakeOrderRepo struct{ s *memStore }

func (r *fakeOrderRepo) Create(o *entity.Order) error { r.s.orders[o.ID] = o; return nil }
func (r *fakeOrderRepo) CreateLineItem(li *entity.OrderLineItem) error {
	r.s.lines[li.OrderID] = append(r.s.lines[li.OrderID], li)
	return nil
}
func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) { return r.s.orders[id], nil }
func (r *fakeOrderRepo) GetLineItems(orderID string) ([]*entity.OrderLineItem, error) {
	return r.s.lines[orderID], nil
}
func (r *fakeOrderRepo) Delete(id string) error {
	delete(r.s.orders, id)
	delete(r.s.lines, id)
	return nil
}
func (r *fakeOrderRepo) DeleteLineItemsByProduct(string) error { return nil }
func (r *fakeOrderRepo) CountBySupplier(string) (int, error)   { return 0, nil }
func (r *fakeOrderRepo) ListSummaries() ([]*repository.OrderSummary, error) {
	out := make([]*repository.OrderSummary, 0, len(r.s.orders))
	for id, o := range r.s.orders {
		lines := r.s.lines[id]
		out = append(out, &repository.OrderSummary{
			OrderID:      o.ID,
			OrderDate:    o.OrderDate,
			CustomerName: o.CustomerName,
			SupplierID:   o.SupplierID,
			ItemCount:    len(lines),
			TotalValue:   entity.OrderTotal(lines),
		})
	}
	return out, nil
}
func (r *fakeOrderRepo) GetDetailLines(orderID string) ([]*repository.OrderDetailLine, error) {
	out := make([]*repository.OrderDetailLine, 0)
	for _, li := range r.s.lines[orderID] {
		name, sku := "", ""
		if p := r.s.products[li.ProductID]; p != nil {
			name, sku = p.Name, p.SKU
		}
		out = append(out, &repository.OrderDetailLine{
			OrderLineItem: *li,
			ProductName:   name,
			SKU:           sku,
		})
	}
	return out, nil
}

type fakeStockRepo struct{ s *memStore }

func (r *fakeStockRepo) GetQuantity(p, w string) (int64, error) { return r.s.stock[stockKey(p, w)], nil }
func (r *fakeStockRepo) Adjust(p, w string, delta int64) error {
	r.s.stock[stockKey(p, w)] += delta
	return nil
}
func (r *fakeStockRepo) Set(p, w string, q int64) error { r.s.stock[stockKey(p, w)] = q; return nil }
func (r *fakeStockRepo) Remove(p, w string) error {
	delete(r.s.stock, stockKey(p, w))
	return nil
}
func (r *fakeStockRepo) RemoveByProduct(string) error                 { return nil }
func (r *fakeStockRepo) CountPositiveByWarehouse(string) (int, error) { return 0, nil }
func (r *fakeStockRepo) ListLevels() ([]*entity.StockLevel, error)    { return nil, nil }

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error             { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.s.products[id], nil }
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error)   { return nil, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error             { r.s.products[p.ID] = p; return nil }
func (r *fakeProductRepo) List() ([]*repository.ProductWithSupplier, error) { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}
func (r *fakeProductRepo) CountBySupplier(string) (int, error) { return 0, nil }

// fakePDFGen devuelve bytes fijos: el contenido real lo prueba el generador.
type fakePDFGen struct{}

func (fakePDFGen) GeneratePackingSlip(context.Context, *dto.OrderDetailResponse) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testWarehouseID = "11111111-1111-1111-1111-111111111111"
	testProductID   = "aaaaaaaa-0000-0000-0000-000000000001"
)

func buildTestApp(store *memStore) *fiber.App {
	app := fiber.New()
	fulfillment := orders.NewFulfillmentUseCase(&fakeTxRunner{s: store})
	query := orders.NewQueryUseCase(&fakeOrderRepo{s: store}, fakePDFGen{})
	apphttp.Router(app, apphttp.RouterDeps{
		FulfillmentUC: fulfillment,
		OrderQueryUC:  query,
	})
	return app
}

func seedStore(store *memStore) {
	now := time.Now()
	store.products[testProductID] = &entity.Product{
		ID:           testProductID,
		SKU:          "SKU-001",
		Name:         "Tornillo",
		SellingPrice: decimal.RequireFromString("2.50"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	store.stock[stockKey(testProductID, testWarehouseID)] = 100
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearPedidoDevuelve201YDescuentaStock(t *testing.T) {
	store := newMemStore()
	seedStore(store)
	app := buildTestApp(store)

	status, raw := doJSON(t, app, "POST", "/api/orders/", dto.CreateOrderRequest{
		CustomerName: "Acme S.A.S.",
		WarehouseID:  testWarehouseID,
		Items:        []dto.OrderItemRequest{{ProductID: testProductID, Quantity: 10}},
	})
	require.Equal(t, fiber.StatusCreated, status, string(raw))

	var out dto.CreateOrderResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.NotEmpty(t, out.OrderID)
	assert.Equal(t, int64(90), store.stock[stockKey(testProductID, testWarehouseID)])
}

func TestCrearPedidoSinItemsDevuelve400(t *testing.T) {
	app := buildTestApp(newMemStore())

	status, raw := doJSON(t, app, "POST", "/api/orders/", dto.CreateOrderRequest{
		CustomerName: "Acme S.A.S.",
		WarehouseID:  testWarehouseID,
	})
	require.Equal(t, fiber.StatusBadRequest, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestCrearPedidoConProductoDesconocidoDevuelve404(t *testing.T) {
	store := newMemStore()
	seedStore(store)
	app := buildTestApp(store)

	status, raw := doJSON(t, app, "POST", "/api/orders/", dto.CreateOrderRequest{
		CustomerName: "Acme S.A.S.",
		WarehouseID:  testWarehouseID,
		Items:        []dto.OrderItemRequest{{ProductID: "no-existe", Quantity: 1}},
	})
	require.Equal(t, fiber.StatusNotFound, status)

	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestDetalleYListadoDePedidos(t *testing.T) {
	store := newMemStore()
	seedStore(store)
	app := buildTestApp(store)

	status, raw := doJSON(t, app, "POST", "/api/orders/", dto.CreateOrderRequest{
		CustomerName: "Acme S.A.S.",
		WarehouseID:  testWarehouseID,
		Items:        []dto.OrderItemRequest{{ProductID: testProductID, Quantity: 4}},
	})
	require.Equal(t, fiber.StatusCreated, status)
	var created dto.CreateOrderResponse
	require.NoError(t, json.Unmarshal(raw, &created))

	// Listado con agregados derivados
	status, raw = doJSON(t, app, "GET", "/api/orders/", nil)
	require.Equal(t, fiber.StatusOK, status)
	var list dto.OrderListResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Items[0].ItemCount)
	assert.True(t, list.Items[0].TotalValue.Equal(decimal.RequireFromString("10.00")))

	// Detalle con foto de precio y subtotales
	status, raw = doJSON(t, app, "GET", "/api/orders/"+created.OrderID, nil)
	require.Equal(t, fiber.StatusOK, status)
	var detail dto.OrderDetailResponse
	require.NoError(t, json.Unmarshal(raw, &detail))
	require.Len(t, detail.Lines, 1)
	assert.Equal(t, "Tornillo", detail.Lines[0].ProductName)
	assert.True(t, detail.Lines[0].UnitPrice.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, detail.TotalValue.Equal(decimal.RequireFromString("10.00")))
}

func TestCancelarPedidoDevuelve204YRestauraStock(t *testing.T) {
	store := newMemStore()
	seedStore(store)
	app := buildTestApp(store)

	status, raw := doJSON(t, app, "POST", "/api/orders/", dto.CreateOrderRequest{
		CustomerName: "Acme S.A.S.",
		WarehouseID:  testWarehouseID,
		Items:        []dto.OrderItemRequest{{ProductID: testProductID, Quantity: 10}},
	})
	require.Equal(t, fiber.StatusCreated, status)
	var created dto.CreateOrderResponse
	require.NoError(t, json.Unmarshal(raw, &created))

	status, _ = doJSON(t, app, "DELETE", "/api/orders/"+created.OrderID, nil)
	require.Equal(t, fiber.StatusNoContent, status)
	assert.Equal(t, int64(100), store.stock[stockKey(testProductID, testWarehouseID)])

	// Cancelar dos veces: la segunda es 404
	status, _ = doJSON(t, app, "DELETE", "/api/orders/"+created.OrderID, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestGuiaDeDespachoDevuelvePDF(t *testing.T) {
	store := newMemStore()
	seedStore(store)
	app := buildTestApp(store)

	status, raw := doJSON(t, app, "POST", "/api/orders/", dto.CreateOrderRequest{
		CustomerName: "Acme S.A.S.",
		WarehouseID:  testWarehouseID,
		Items:        []dto.OrderItemRequest{{ProductID: testProductID, Quantity: 1}},
	})
	require.Equal(t, fiber.StatusCreated, status)
	var created dto.CreateOrderResponse
	require.NoError(t, json.Unmarshal(raw, &created))

	req := httptest.NewRequest("GET", "/api/orders/"+created.OrderID+"/packing-slip", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}
