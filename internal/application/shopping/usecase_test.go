package shopping_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-shop/internal/application/auth"
	"github.com/tu-usuario/retail-shop/internal/application/dto"
	"github.com/tu-usuario/retail-shop/internal/application/shopping"
	"github.com/tu-usuario/retail-shop/internal/domain"
	"github.com/tu-usuario/retail-shop/internal/domain/entity"
	"github.com/tu-usuario/retail-shop/internal/domain/geo"
	"github.com/tu-usuario/retail-shop/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeStoreRepo struct {
	stores []entity.Store
}

func (r *fakeStoreRepo) GetByID(_ context.Context, id int) (*entity.Store, error) {
	for _, s := range r.stores {
		if s.ID == id {
			cp := s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStoreRepo) List(_ context.Context) ([]entity.Store, error) {
	return r.stores, nil
}

func (r *fakeStoreRepo) IsManagedBy(_ context.Context, storeID, managerID int) (bool, error) {
	for _, s := range r.stores {
		if s.ID == storeID && s.ManagerID == managerID {
			return true, nil
		}
	}
	return false, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func productKey(storeID int, name string) string {
	return fmt.Sprintf("%d/%s", storeID, name)
}

func (r *fakeProductRepo) Get(_ context.Context, storeID int, name string) (*entity.Product, error) {
	p, ok := r.products[productKey(storeID, name)]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) ListByStore(_ context.Context, storeID int) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		if p.StoreID == storeID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListByName(_ context.Context, name string) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		if p.Name == name {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	cp := *product
	r.products[productKey(product.StoreID, product.Name)] = &cp
	return nil
}

func (r *fakeProductRepo) AdjustUnits(_ context.Context, storeID int, name string, delta int) error {
	p, ok := r.products[productKey(storeID, name)]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Units += delta
	return nil
}

type fakeOrderRepo struct {
	orders []entity.Order
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	order.Number = len(r.orders) + 1
	r.orders = append(r.orders, *order)
	return nil
}

type fakeReportRepo struct {
	recent []repository.CustomerOrderRow
}

func (r *fakeReportRepo) RecentOrdersByCustomer(_ context.Context, _, limit int) ([]repository.CustomerOrderRow, error) {
	if len(r.recent) > limit {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

func (r *fakeReportRepo) OrdersByStore(context.Context, int) ([]repository.StoreOrderRow, error) {
	return nil, nil
}

func (r *fakeReportRepo) PopularProducts(context.Context, int, int) ([]repository.PopularProductRow, error) {
	return nil, nil
}

func (r *fakeReportRepo) PopularCustomers(context.Context, int, int) ([]repository.PopularCustomerRow, error) {
	return nil, nil
}

// fakeTx ejecuta el callback sobre los mismos fakes, sin transacción real.
type fakeTx struct {
	orderRepo   *fakeOrderRepo
	productRepo *fakeProductRepo
	runs        int
}

func (t *fakeTx) RunOrder(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	t.runs++
	return fn(t.orderRepo, t.productRepo)
}

// buildShopping arma el caso de uso con una tienda en (10, 10) gestionando un
// producto con 8 unidades en stock.
func buildShopping() (*shopping.ShoppingUseCase, *fakeProductRepo, *fakeOrderRepo, *fakeTx) {
	storeRepo := &fakeStoreRepo{stores: []entity.Store{
		{ID: 1, Name: "Central", Latitude: 10, Longitude: 10, ManagerID: 7},
		{ID: 2, Name: "Remota", Latitude: 95, Longitude: 95, ManagerID: 7},
	}}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		productKey(1, "café"): {StoreID: 1, Name: "café", Units: 8, Price: decimal.NewFromInt(3)},
	}}
	orderRepo := &fakeOrderRepo{}
	tx := &fakeTx{orderRepo: orderRepo, productRepo: productRepo}
	uc := shopping.NewShoppingUseCase(storeRepo, productRepo, &fakeReportRepo{}, tx)
	return uc, productRepo, orderRepo, tx
}

func customerSession() auth.Session {
	return auth.Session{
		ID:       "test-session",
		UserID:   42,
		Name:     "amitava",
		Role:     entity.RoleCustomer,
		Location: geo.Point{Latitude: 5, Longitude: 5},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// StoresInRange
// ──────────────────────────────────────────────────────────────────────────────

func TestStoresInRange_SoloTiendasDentroDelRadio(t *testing.T) {
	uc, _, _, _ := buildShopping()

	got, err := uc.StoresInRange(context.Background(), customerSession())

	require.NoError(t, err)
	require.Len(t, got, 1, "la tienda en (95,95) queda fuera del radio")
	assert.Equal(t, 1, got[0].Store.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// PlaceOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrder_ExitosoDescuentaStock(t *testing.T) {
	uc, productRepo, orderRepo, tx := buildShopping()

	order, err := uc.PlaceOrder(context.Background(), customerSession(), dto.PlaceOrderRequest{
		StoreID:     1,
		ProductName: "café",
		Units:       3,
	})

	require.NoError(t, err)
	assert.Equal(t, 42, order.CustomerID, "el pedido se registra a nombre de la sesión")
	assert.Equal(t, 1, tx.runs, "pedido y descuento van en una transacción")
	require.Len(t, orderRepo.orders, 1)
	assert.Equal(t, 5, productRepo.products[productKey(1, "café")].Units,
		"el stock baja exactamente en las unidades pedidas")
}

func TestPlaceOrder_StockInsuficienteNoMuta(t *testing.T) {
	uc, productRepo, orderRepo, _ := buildShopping()

	_, err := uc.PlaceOrder(context.Background(), customerSession(), dto.PlaceOrderRequest{
		StoreID:     1,
		ProductName: "café",
		Units:       9,
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, orderRepo.orders)
	assert.Equal(t, 8, productRepo.products[productKey(1, "café")].Units, "el stock queda intacto")
}

func TestPlaceOrder_TiendaFueraDeRango(t *testing.T) {
	uc, _, orderRepo, _ := buildShopping()

	_, err := uc.PlaceOrder(context.Background(), customerSession(), dto.PlaceOrderRequest{
		StoreID:     2,
		ProductName: "café",
		Units:       1,
	})

	assert.ErrorIs(t, err, domain.ErrStoreOutOfRange)
	assert.Empty(t, orderRepo.orders)
}

func TestPlaceOrder_TiendaInexistente(t *testing.T) {
	uc, _, _, _ := buildShopping()

	_, err := uc.PlaceOrder(context.Background(), customerSession(), dto.PlaceOrderRequest{
		StoreID:     99,
		ProductName: "café",
		Units:       1,
	})

	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestPlaceOrder_ProductoInexistente(t *testing.T) {
	uc, _, _, _ := buildShopping()

	_, err := uc.PlaceOrder(context.Background(), customerSession(), dto.PlaceOrderRequest{
		StoreID:     1,
		ProductName: "inexistente",
		Units:       1,
	})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestPlaceOrder_CantidadMenorAUno(t *testing.T) {
	uc, _, orderRepo, _ := buildShopping()

	for _, units := range []int{0, -3} {
		_, err := uc.PlaceOrder(context.Background(), customerSession(), dto.PlaceOrderRequest{
			StoreID:     1,
			ProductName: "café",
			Units:       units,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, orderRepo.orders)
}
