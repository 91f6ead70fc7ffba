package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
)

func testProduct() *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:           testProductID,
		SKU:          "SKU-001",
		Name:         "Tornillo",
		SupplierID:   "supplier-9",
		UnitCost:     decimal.RequireFromString("1.10"),
		SellingPrice: decimal.RequireFromString("2.50"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreateConSKUDuplicadoDevuelveDuplicate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProductRepository(mock)

	mock.ExpectExec(`INSERT INTO products`).
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(testProduct())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateConProveedorDesconocidoDevuelveEntradaInvalida(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProductRepository(mock)

	// La llave foránea de supplier_id rechaza el insert: entrada inválida,
	// no error de persistencia.
	mock.ExpectExec(`INSERT INTO products`).
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Create(testProduct())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateConProveedorDesconocidoDevuelveEntradaInvalida(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProductRepository(mock)

	mock.ExpectExec(`UPDATE products`).
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	err := repo.Update(testProduct())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySKUInexistenteDevuelveNil(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProductRepository(mock)

	mock.ExpectQuery(`SELECT id, sku, name`).
		WithArgs("SKU-XXX").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "sku", "name", "description", "supplier_id",
			"unit_cost", "selling_price", "created_at", "updated_at",
		}))

	product, err := repo.GetBySKU("SKU-XXX")
	require.NoError(t, err)
	assert.Nil(t, product)
	assert.NoError(t, mock.ExpectationsWereMet())
}
