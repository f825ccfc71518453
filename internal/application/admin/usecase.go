package admin

import (
	"context"

	"github.com/tu-usuario/retail-shop/internal/application/dto"
	"github.com/tu-usuario/retail-shop/internal/domain"
	"github.com/tu-usuario/retail-shop/internal/domain/entity"
	"github.com/tu-usuario/retail-shop/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// AdminUseCase casos de uso de administración global: lectura y escritura sin
// restricción de las tablas de usuarios y productos. El acceso se controla en
// el despachador (solo el menú de admin llega aquí).
type AdminUseCase struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

// NewAdminUseCase construye el caso de uso de admin.
func NewAdminUseCase(userRepo repository.UserRepository, productRepo repository.ProductRepository) *AdminUseCase {
	return &AdminUseCase{userRepo: userRepo, productRepo: productRepo}
}

// AllUsers devuelve todos los usuarios.
func (uc *AdminUseCase) AllUsers(ctx context.Context) ([]entity.User, error) {
	return uc.userRepo.List(ctx)
}

// UserByID busca un usuario por id. (nil, nil) si no existe.
func (uc *AdminUseCase) UserByID(ctx context.Context, id int) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// UserByName busca un usuario por nombre. (nil, nil) si no existe.
func (uc *AdminUseCase) UserByName(ctx context.Context, name string) (*entity.User, error) {
	return uc.userRepo.GetByName(ctx, name)
}

// AllProducts devuelve todos los productos.
func (uc *AdminUseCase) AllProducts(ctx context.Context) ([]entity.Product, error) {
	return uc.productRepo.List(ctx)
}

// ProductsByStore lista los productos de una tienda.
func (uc *AdminUseCase) ProductsByStore(ctx context.Context, storeID int) ([]entity.Product, error) {
	return uc.productRepo.ListByStore(ctx, storeID)
}

// ProductAt busca un producto por (tienda, nombre). (nil, nil) si no existe.
func (uc *AdminUseCase) ProductAt(ctx context.Context, storeID int, name string) (*entity.Product, error) {
	return uc.productRepo.Get(ctx, storeID, name)
}

// ProductsByName lista las apariciones de un producto en todas las tiendas.
func (uc *AdminUseCase) ProductsByName(ctx context.Context, name string) ([]entity.Product, error) {
	return uc.productRepo.ListByName(ctx, name)
}

// UpdateUser aplica un patch sobre un usuario existente. String vacío y
// coordenada negativa conservan el valor actual; una coordenada > 100 o un
// rol desconocido abortan sin mutar. Un password nuevo se re-hashea.
func (uc *AdminUseCase) UpdateUser(ctx context.Context, in dto.UpdateUserPatch) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Latitude >= 0 {
		if in.Latitude > 100 {
			return nil, domain.ErrCoordinatesRange
		}
		user.Latitude = in.Latitude
	}
	if in.Longitude >= 0 {
		if in.Longitude > 100 {
			return nil, domain.ErrCoordinatesRange
		}
		user.Longitude = in.Longitude
	}
	if in.Role != "" {
		if !entity.ValidRole(in.Role) {
			return nil, domain.ErrInvalidRole
		}
		user.Role = in.Role
	}
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProduct aplica un patch directo sobre un producto existente.
// Campos con sentinela negativo conservan el valor actual. A diferencia del
// flujo de manager, aquí no se escribe fila de auditoría: la tabla
// productupdates registra cambios de managers sobre sus tiendas.
func (uc *AdminUseCase) UpdateProduct(ctx context.Context, in dto.UpdateProductPatch) (*entity.Product, error) {
	product, err := uc.productRepo.Get(ctx, in.StoreID, in.ProductName)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Units >= 0 {
		product.Units = in.Units
	}
	if !in.Price.IsNegative() {
		product.Price = in.Price
	}
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}
