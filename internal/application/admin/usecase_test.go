package admin_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/retail-shop/internal/application/admin"
	"github.com/tu-usuario/retail-shop/internal/application/dto"
	"github.com/tu-usuario/retail-shop/internal/domain"
	"github.com/tu-usuario/retail-shop/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID map[int]*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	user.ID = len(r.byID) + 1
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByName(_ context.Context, name string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]entity.User, error) {
	var out []entity.User
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, nil
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

func (r *fakeProductRepo) ListByStore(context.Context, int) ([]entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) ListByName(context.Context, string) ([]entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) List(context.Context) ([]entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	cp := *product
	r.products[productKey(product.StoreID, product.Name)] = &cp
	return nil
}

func (r *fakeProductRepo) AdjustUnits(_ context.Context, storeID int, name string, delta int) error {
	r.products[productKey(storeID, name)].Units += delta
	return nil
}

// buildAdmin arma el caso de uso con un usuario (id 1) y un producto sembrados.
func buildAdmin() (*admin.AdminUseCase, *fakeUserRepo, *fakeProductRepo) {
	userRepo := &fakeUserRepo{byID: map[int]*entity.User{
		1: {ID: 1, Name: "amitava", PasswordHash: "$hash$original", Latitude: 10, Longitude: 20, Role: entity.RoleCustomer},
	}}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		productKey(1, "café"): {StoreID: 1, Name: "café", Units: 8, Price: decimal.NewFromInt(3)},
	}}
	return admin.NewAdminUseCase(userRepo, productRepo), userRepo, productRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateUser
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateUser_CamposVaciosConservanValores(t *testing.T) {
	uc, userRepo, _ := buildAdmin()

	updated, err := uc.UpdateUser(context.Background(), dto.UpdateUserPatch{
		UserID:    1,
		Name:      "",
		Password:  "",
		Latitude:  dto.KeepCurrent,
		Longitude: dto.KeepCurrent,
		Role:      "",
	})

	require.NoError(t, err)
	assert.Equal(t, "amitava", updated.Name)
	assert.Equal(t, "$hash$original", updated.PasswordHash, "password vacío no re-hashea")
	assert.Equal(t, 10.0, updated.Latitude)
	assert.Equal(t, 20.0, updated.Longitude)
	assert.Equal(t, entity.RoleCustomer, userRepo.byID[1].Role)
}

func TestUpdateUser_PromueveAManager(t *testing.T) {
	uc, userRepo, _ := buildAdmin()

	_, err := uc.UpdateUser(context.Background(), dto.UpdateUserPatch{
		UserID:    1,
		Latitude:  dto.KeepCurrent,
		Longitude: dto.KeepCurrent,
		Role:      entity.RoleManager,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, userRepo.byID[1].Role)
}

func TestUpdateUser_PasswordNuevoSeRehashea(t *testing.T) {
	uc, userRepo, _ := buildAdmin()

	_, err := uc.UpdateUser(context.Background(), dto.UpdateUserPatch{
		UserID:    1,
		Password:  "nueva",
		Latitude:  dto.KeepCurrent,
		Longitude: dto.KeepCurrent,
	})

	require.NoError(t, err)
	stored := userRepo.byID[1].PasswordHash
	assert.NotEqual(t, "nueva", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("nueva")))
}

func TestUpdateUser_CoordenadaFueraDeRango(t *testing.T) {
	uc, userRepo, _ := buildAdmin()

	_, err := uc.UpdateUser(context.Background(), dto.UpdateUserPatch{
		UserID:    1,
		Latitude:  150,
		Longitude: dto.KeepCurrent,
	})

	assert.ErrorIs(t, err, domain.ErrCoordinatesRange)
	assert.Equal(t, 10.0, userRepo.byID[1].Latitude, "el registro queda intacto")
}

func TestUpdateUser_RolDesconocido(t *testing.T) {
	uc, userRepo, _ := buildAdmin()

	_, err := uc.UpdateUser(context.Background(), dto.UpdateUserPatch{
		UserID:    1,
		Latitude:  dto.KeepCurrent,
		Longitude: dto.KeepCurrent,
		Role:      "superuser",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRole)
	assert.Equal(t, entity.RoleCustomer, userRepo.byID[1].Role)
}

func TestUpdateUser_Inexistente(t *testing.T) {
	uc, _, _ := buildAdmin()

	_, err := uc.UpdateUser(context.Background(), dto.UpdateUserPatch{
		UserID:    99,
		Latitude:  dto.KeepCurrent,
		Longitude: dto.KeepCurrent,
	})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProduct_PatchParcialConservaUnidades(t *testing.T) {
	uc, _, productRepo := buildAdmin()

	updated, err := uc.UpdateProduct(context.Background(), dto.UpdateProductPatch{
		StoreID:     1,
		ProductName: "café",
		Units:       dto.KeepCurrent,
		Price:       decimal.NewFromFloat(9.99),
	})

	require.NoError(t, err)
	assert.Equal(t, 8, updated.Units, "-1 conserva las unidades")
	assert.True(t, productRepo.products[productKey(1, "café")].Price.Equal(decimal.NewFromFloat(9.99)))
}

func TestUpdateProduct_FijaUnidadesACero(t *testing.T) {
	uc, _, productRepo := buildAdmin()

	_, err := uc.UpdateProduct(context.Background(), dto.UpdateProductPatch{
		StoreID:     1,
		ProductName: "café",
		Units:       0,
		Price:       decimal.NewFromInt(dto.KeepCurrent),
	})

	require.NoError(t, err)
	got := productRepo.products[productKey(1, "café")]
	assert.Zero(t, got.Units, "cero es un valor válido, no un sentinela")
	assert.True(t, got.Price.Equal(decimal.NewFromInt(3)))
}

func TestUpdateProduct_Inexistente(t *testing.T) {
	uc, _, _ := buildAdmin()

	_, err := uc.UpdateProduct(context.Background(), dto.UpdateProductPatch{
		StoreID:     9,
		ProductName: "nada",
		Units:       1,
		Price:       decimal.NewFromInt(1),
	})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
