package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error { r.suppliers[s.ID] = s; return nil }
func (r *fakeSupplierRepo) List() ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	return out, nil
}
func (r *fakeSupplierRepo) Delete(id string) error { delete(r.suppliers, id); return nil }

// countingProductRepo solo responde CountBySupplier; el resto no se usa aquí.
type countingProductRepo struct {
	repository.ProductRepository
	count int
}

func (r *countingProductRepo) CountBySupplier(string) (int, error) { return r.count, nil }

type countingOrderRepo struct {
	repository.OrderRepository
	count int
}

func (r *countingOrderRepo) CountBySupplier(string) (int, error) { return r.count, nil }

func buildSupplierUC(productCount, orderCount int) (*usecase.SupplierUseCase, *fakeSupplierRepo) {
	repo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{}}
	uc := usecase.NewSupplierUseCase(repo,
		&countingProductRepo{count: productCount},
		&countingOrderRepo{count: orderCount},
	)
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteProveedorSinReferenciasLoElimina(t *testing.T) {
	uc, repo := buildSupplierUC(0, 0)
	created, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Name: "Distribuidora Norte"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.suppliers)
}

func TestDeleteProveedorConProductosDevuelveConflicto(t *testing.T) {
	uc, repo := buildSupplierUC(3, 0)
	created, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Name: "Distribuidora Norte"})
	require.NoError(t, err)

	err = uc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, repo.suppliers, 1, "el proveedor debe seguir existiendo")
}

func TestDeleteProveedorConPedidosDevuelveConflicto(t *testing.T) {
	uc, _ := buildSupplierUC(0, 2)
	created, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Name: "Distribuidora Norte"})
	require.NoError(t, err)

	err = uc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDeleteProveedorInexistenteDevuelveNotFound(t *testing.T) {
	uc, _ := buildSupplierUC(0, 0)

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
