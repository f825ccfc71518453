package cli

import (
	"context"

	"github.com/tu-usuario/retail-shop/internal/application/dto"
	"github.com/tu-usuario/retail-shop/internal/domain"
	"github.com/tu-usuario/retail-shop/internal/domain/entity"
)

func (a *App) viewUserData(ctx context.Context) error {
	a.render.Println("1. Todos los usuarios")
	a.render.Println("2. Usuario por ID")
	a.render.Println("3. Usuario por nombre")
	choice, err := a.prompt.ReadInt("\tOpción: ")
	if err != nil {
		return err
	}

	var list []entity.User
	switch choice {
	case 1:
		list, err = a.admin.AllUsers(ctx)
	case 2:
		var id int
		id, err = a.prompt.ReadInt("\tID de usuario: ")
		if err != nil {
			return err
		}
		var user *entity.User
		user, err = a.admin.UserByID(ctx, id)
		if user != nil {
			list = []entity.User{*user}
		}
	case 3:
		var name string
		name, err = a.prompt.ReadLine("\tNombre: ")
		if err != nil {
			return err
		}
		var user *entity.User
		user, err = a.admin.UserByName(ctx, name)
		if user != nil {
			list = []entity.User{*user}
		}
	default:
		return domain.ErrInvalidInput
	}
	if err != nil {
		return err
	}
	a.render.Users(list)
	return nil
}

func (a *App) viewProductData(ctx context.Context) error {
	a.render.Println("1. Todos los productos")
	a.render.Println("2. Productos de una tienda")
	a.render.Println("3. Producto por tienda y nombre")
	a.render.Println("4. Producto por nombre en todas las tiendas")
	choice, err := a.prompt.ReadInt("\tOpción: ")
	if err != nil {
		return err
	}

	var list []entity.Product
	switch choice {
	case 1:
		list, err = a.admin.AllProducts(ctx)
	case 2:
		var storeID int
		storeID, err = a.prompt.ReadInt("\tID de tienda: ")
		if err != nil {
			return err
		}
		list, err = a.admin.ProductsByStore(ctx, storeID)
	case 3:
		var storeID int
		storeID, err = a.prompt.ReadInt("\tID de tienda: ")
		if err != nil {
			return err
		}
		var name string
		name, err = a.prompt.ReadLine("\tProducto: ")
		if err != nil {
			return err
		}
		var product *entity.Product
		product, err = a.admin.ProductAt(ctx, storeID, name)
		if product != nil {
			list = []entity.Product{*product}
		}
	case 4:
		var name string
		name, err = a.prompt.ReadLine("\tProducto: ")
		if err != nil {
			return err
		}
		list, err = a.admin.ProductsByName(ctx, name)
	default:
		return domain.ErrInvalidInput
	}
	if err != nil {
		return err
	}
	a.render.Products(list)
	return nil
}

// updateUserData muestra el registro actual y pide el patch campo por campo.
// String vacío y coordenada negativa conservan el valor vigente.
func (a *App) updateUserData(ctx context.Context) error {
	id, err := a.prompt.ReadInt("\tID de usuario: ")
	if err != nil {
		return err
	}
	current, err := a.admin.UserByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrUserNotFound
	}
	a.render.Println("Registro actual:")
	a.render.Users([]entity.User{*current})

	name, err := a.prompt.ReadLine("\tNuevo nombre (vacío conserva): ")
	if err != nil {
		return err
	}
	password, err := a.prompt.ReadLine("\tNuevo password (vacío conserva): ")
	if err != nil {
		return err
	}
	lat, err := a.prompt.ReadFloat("\tNueva latitud (-1 conserva): ")
	if err != nil {
		return err
	}
	long, err := a.prompt.ReadFloat("\tNueva longitud (-1 conserva): ")
	if err != nil {
		return err
	}
	role, err := a.prompt.ReadLine("\tNuevo rol [customer|manager|admin] (vacío conserva): ")
	if err != nil {
		return err
	}

	updated, err := a.admin.UpdateUser(ctx, dto.UpdateUserPatch{
		UserID:    id,
		Name:      name,
		Password:  password,
		Latitude:  lat,
		Longitude: long,
		Role:      role,
	})
	if err != nil {
		return err
	}
	a.log.Info().
		Str("session", a.sess.ID).
		Int("user_id", updated.ID).
		Msg("usuario actualizado por admin")
	a.render.Println("¡Usuario actualizado!")
	return nil
}

// updateProductData actualiza un producto sin la restricción de propiedad del
// manager. Sentinelas negativos conservan el valor vigente.
func (a *App) updateProductData(ctx context.Context) error {
	storeID, err := a.prompt.ReadInt("\tID de tienda: ")
	if err != nil {
		return err
	}
	productName, err := a.prompt.ReadLine("\tProducto: ")
	if err != nil {
		return err
	}
	current, err := a.admin.ProductAt(ctx, storeID, productName)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrProductNotFound
	}
	a.render.Println("Registro actual:")
	a.render.Products([]entity.Product{*current})

	units, err := a.prompt.ReadInt("\tNuevas unidades (-1 conserva): ")
	if err != nil {
		return err
	}
	price, err := a.prompt.ReadDecimal("\tNuevo precio (-1 conserva): ")
	if err != nil {
		return err
	}

	updated, err := a.admin.UpdateProduct(ctx, dto.UpdateProductPatch{
		StoreID:     storeID,
		ProductName: productName,
		Units:       units,
		Price:       price,
	})
	if err != nil {
		return err
	}
	a.log.Info().
		Str("session", a.sess.ID).
		Int("store_id", updated.StoreID).
		Str("product", updated.Name).
		Msg("producto actualizado por admin")
	a.render.Println("¡Producto actualizado!")
	return nil
}
