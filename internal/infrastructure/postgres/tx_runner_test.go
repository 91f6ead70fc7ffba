package postgres

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

func TestRunConfirmaCuandoElCallbackTermina(t *testing.T) {
	mock := newMockPool(t)
	runner := NewTxRunner(mock)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO stocks`).
		WithArgs(testProductID, testWarehouseID, int64(3)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := runner.Run(context.Background(), func(
		_ repository.OrderRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		return stockRepo.Adjust(testProductID, testWarehouseID, 3)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunRevierteCuandoElCallbackFalla(t *testing.T) {
	mock := newMockPool(t)
	runner := NewTxRunner(mock)

	boom := errors.New("producto desconocido")
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO stocks`).
		WithArgs(testProductID, testWarehouseID, int64(-4)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectRollback()

	err := runner.Run(context.Background(), func(
		_ repository.OrderRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		// El primer ajuste entra a la tx, luego el callback falla:
		// nada debe confirmarse.
		if err := stockRepo.Adjust(testProductID, testWarehouseID, -4); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunPropagaElErrorDeBegin(t *testing.T) {
	mock := newMockPool(t)
	runner := NewTxRunner(mock)

	mock.ExpectBegin().WillReturnError(errors.New("pool agotado"))

	err := runner.Run(context.Background(), func(
		_ repository.OrderRepository,
		_ repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		t.Fatal("el callback no debe ejecutarse si Begin falla")
		return nil
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
