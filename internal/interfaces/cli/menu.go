package cli

import (
	"context"

	"github.com/tu-usuario/retail-shop/internal/application/admin"
	"github.com/tu-usuario/retail-shop/internal/application/auth"
	"github.com/tu-usuario/retail-shop/internal/application/dto"
	"github.com/tu-usuario/retail-shop/internal/application/manage"
	"github.com/tu-usuario/retail-shop/internal/application/shopping"
	"github.com/tu-usuario/retail-shop/internal/domain/entity"
	"github.com/tu-usuario/retail-shop/pkg/logger"
)

// State es el estado del despachador de menús. La sesión determina a qué
// estado se transiciona tras un login; Exit termina el bucle.
type State int

const (
	StateLoggedOut State = iota
	StateCustomer
	StateManager
	StateAdmin
	StateExit
)

// StateForRole mapea el rol del usuario autenticado a su estado de menú.
func StateForRole(role string) State {
	switch role {
	case entity.RoleManager:
		return StateManager
	case entity.RoleAdmin:
		return StateAdmin
	default:
		return StateCustomer
	}
}

// Option es una entrada de menú: número visible, etiqueta y acción.
// La acción devuelve el siguiente estado; un error aborta la operación sin
// cambiar de estado ni tocar la sesión.
type Option struct {
	Key   int
	Label string
	run   func(ctx context.Context) (State, error)
}

// App es el cliente interactivo: une prompter, renderer, casos de uso y la
// sesión vigente. Una App atiende a un único operador por proceso.
type App struct {
	prompt *Prompter
	render *Renderer
	log    *logger.Logger

	auth   *auth.AuthUseCase
	shop   *shopping.ShoppingUseCase
	manage *manage.ManageUseCase
	admin  *admin.AdminUseCase

	sess *auth.Session
}

// NewApp construye el cliente interactivo.
func NewApp(
	prompt *Prompter,
	render *Renderer,
	log *logger.Logger,
	authUC *auth.AuthUseCase,
	shopUC *shopping.ShoppingUseCase,
	manageUC *manage.ManageUseCase,
	adminUC *admin.AdminUseCase,
) *App {
	return &App{
		prompt: prompt,
		render: render,
		log:    log,
		auth:   authUC,
		shop:   shopUC,
		manage: manageUC,
		admin:  adminUC,
	}
}

// Run ejecuta el bucle principal hasta que el operador elige salir o se
// agota stdin.
func (a *App) Run(ctx context.Context) error {
	a.render.Println("*******************************************************")
	a.render.Println("              Tienda :: interfaz de usuario")
	a.render.Println("*******************************************************")

	state := StateLoggedOut
	for state != StateExit {
		next, err := a.step(ctx, state)
		if err != nil {
			return err
		}
		state = next
	}
	return nil
}

// step imprime el menú del estado, lee una elección y la despacha.
// Una elección fuera del conjunto del estado no tiene efectos secundarios.
func (a *App) step(ctx context.Context, state State) (State, error) {
	menu := a.MenuFor(state)

	a.render.Println()
	a.render.Println("MENÚ PRINCIPAL")
	a.render.Println("--------------")
	for _, opt := range menu {
		a.render.Printf("%d. %s\n", opt.Key, opt.Label)
	}

	choice, err := a.prompt.ReadChoice()
	if err != nil {
		// stdin agotado: cerrar ordenadamente.
		a.log.Debug().Err(err).Msg("stdin cerrado, terminando")
		return StateExit, nil
	}
	for _, opt := range menu {
		if opt.Key == choice {
			next, err := opt.run(ctx)
			if err != nil {
				a.reportError(err)
				return state, nil
			}
			return next, nil
		}
	}
	a.render.Println("¡Opción no reconocida!")
	return state, nil
}

// reportError imprime el mensaje para el operador y registra el evento.
// Ningún error de operación corrompe la sesión ni termina el proceso.
func (a *App) reportError(err error) {
	a.render.Printf("Error: %s\n", err)
	ev := a.log.Warn().Err(err)
	if a.sess != nil {
		ev = ev.Str("session", a.sess.ID).Int("user_id", a.sess.UserID)
	}
	ev.Msg("operación abortada")
}

// MenuFor devuelve el conjunto de opciones despachables en un estado.
// Es la única fuente de verdad del control de acceso por rol: una operación
// que no aparece aquí es inalcanzable desde ese estado.
func (a *App) MenuFor(state State) []Option {
	switch state {
	case StateLoggedOut:
		return []Option{
			{Key: 1, Label: "Crear usuario", run: a.createUser},
			{Key: 2, Label: "Iniciar sesión", run: a.login},
			{Key: 9, Label: "< SALIR", run: func(context.Context) (State, error) { return StateExit, nil }},
		}
	case StateCustomer:
		return append(a.customerOptions(), a.logoutOption(StateCustomer))
	case StateManager:
		opts := a.customerOptions()
		opts = append(opts,
			Option{Key: 5, Label: "Ver pedidos de una tienda", run: a.stay(StateManager, a.storeOrders)},
			Option{Key: 6, Label: "Actualizar producto", run: a.stay(StateManager, a.updateProduct)},
			Option{Key: 7, Label: "Ver 5 actualizaciones recientes", run: a.stay(StateManager, a.recentUpdates)},
			Option{Key: 8, Label: "Ver 5 productos populares", run: a.stay(StateManager, a.popularProducts)},
			Option{Key: 9, Label: "Ver 5 clientes populares", run: a.stay(StateManager, a.popularCustomers)},
			Option{Key: 10, Label: "Solicitar suministro a bodega", run: a.stay(StateManager, a.placeSupplyRequest)},
		)
		return append(opts, a.logoutOption(StateManager))
	case StateAdmin:
		return []Option{
			{Key: 1, Label: "Ver datos de usuarios", run: a.stay(StateAdmin, a.viewUserData)},
			{Key: 2, Label: "Ver datos de productos", run: a.stay(StateAdmin, a.viewProductData)},
			{Key: 3, Label: "Actualizar datos de usuario", run: a.stay(StateAdmin, a.updateUserData)},
			{Key: 4, Label: "Actualizar datos de producto", run: a.stay(StateAdmin, a.updateProductData)},
			a.logoutOption(StateAdmin),
		}
	default:
		return nil
	}
}

// customerOptions son las opciones compartidas por customer y manager.
// El estado al que vuelve cada acción es el del rol de la sesión.
func (a *App) customerOptions() []Option {
	state := StateCustomer
	if a.sess != nil && a.sess.IsManager() {
		state = StateManager
	}
	return []Option{
		{Key: 1, Label: "Ver tiendas a 30 unidades o menos", run: a.stay(state, a.viewStores)},
		{Key: 2, Label: "Ver catálogo de una tienda", run: a.stay(state, a.viewProducts)},
		{Key: 3, Label: "Colocar un pedido", run: a.stay(state, a.placeOrder)},
		{Key: 4, Label: "Ver mis 5 pedidos recientes", run: a.stay(state, a.recentOrders)},
	}
}

func (a *App) logoutOption(state State) Option {
	return Option{Key: 20, Label: "Cerrar sesión", run: func(context.Context) (State, error) {
		if a.sess != nil {
			a.log.Info().Str("session", a.sess.ID).Int("user_id", a.sess.UserID).Msg("sesión cerrada")
		}
		a.sess = nil
		return StateLoggedOut, nil
	}}
}

// stay envuelve una acción que no transiciona: al terminar (bien o mal) el
// operador sigue en el mismo menú.
func (a *App) stay(state State, fn func(ctx context.Context) error) func(ctx context.Context) (State, error) {
	return func(ctx context.Context) (State, error) {
		if err := fn(ctx); err != nil {
			return state, err
		}
		return state, nil
	}
}

// ── autenticación ─────────────────────────────────────────────────────────────

func (a *App) createUser(ctx context.Context) (State, error) {
	name, err := a.prompt.ReadLine("\tNombre: ")
	if err != nil {
		return StateLoggedOut, err
	}
	password, err := a.prompt.ReadLine("\tContraseña: ")
	if err != nil {
		return StateLoggedOut, err
	}
	lat, err := a.prompt.ReadFloat("\tLatitud [0-100]: ")
	if err != nil {
		return StateLoggedOut, err
	}
	long, err := a.prompt.ReadFloat("\tLongitud [0-100]: ")
	if err != nil {
		return StateLoggedOut, err
	}

	user, err := a.auth.CreateUser(ctx, dto.CreateUserRequest{
		Name:      name,
		Password:  password,
		Latitude:  lat,
		Longitude: long,
	})
	if err != nil {
		return StateLoggedOut, err
	}
	a.log.Info().Int("user_id", user.ID).Msg("usuario creado")
	a.render.Println("¡Usuario creado! Ya puedes iniciar sesión.")
	return StateLoggedOut, nil
}

func (a *App) login(ctx context.Context) (State, error) {
	name, err := a.prompt.ReadLine("\tNombre: ")
	if err != nil {
		return StateLoggedOut, err
	}
	password, err := a.prompt.ReadLine("\tContraseña: ")
	if err != nil {
		return StateLoggedOut, err
	}

	sess, err := a.auth.Login(ctx, name, password)
	if err != nil {
		return StateLoggedOut, err
	}
	a.sess = sess
	a.log.Info().
		Str("session", sess.ID).
		Int("user_id", sess.UserID).
		Str("role", sess.Role).
		Msg("sesión iniciada")
	a.render.Printf("Bienvenido, %s\n", sess.Name)
	return StateForRole(sess.Role), nil
}
