package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-shop/internal/domain/entity"
	"github.com/tu-usuario/retail-shop/internal/interfaces/cli"
	"github.com/tu-usuario/retail-shop/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildApp arma una App con la entrada dada. Los casos de uso van en nil: estos
// tests solo ejercitan el despachador, nunca llegan a un handler de datos.
func buildApp(input string) (*cli.App, *bytes.Buffer) {
	var out bytes.Buffer
	app := cli.NewApp(
		cli.NewPrompter(strings.NewReader(input), &out),
		cli.NewRenderer(&out),
		logger.New(logger.Config{Env: "production", Level: "error"}),
		nil, nil, nil, nil,
	)
	return app, &out
}

func keysOf(opts []cli.Option) []int {
	keys := make([]int, 0, len(opts))
	for _, o := range opts {
		keys = append(keys, o.Key)
	}
	return keys
}

// ──────────────────────────────────────────────────────────────────────────────
// Conjuntos de opciones por estado
// ──────────────────────────────────────────────────────────────────────────────

func TestMenuFor_SinSesion(t *testing.T) {
	app, _ := buildApp("")
	assert.Equal(t, []int{1, 2, 9}, keysOf(app.MenuFor(cli.StateLoggedOut)))
}

func TestMenuFor_Cliente(t *testing.T) {
	app, _ := buildApp("")
	assert.Equal(t, []int{1, 2, 3, 4, 20}, keysOf(app.MenuFor(cli.StateCustomer)))
}

func TestMenuFor_Manager(t *testing.T) {
	app, _ := buildApp("")
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 20},
		keysOf(app.MenuFor(cli.StateManager)),
		"el manager conserva las opciones de cliente y suma las suyas")
}

func TestMenuFor_Admin(t *testing.T) {
	app, _ := buildApp("")
	assert.Equal(t, []int{1, 2, 3, 4, 20}, keysOf(app.MenuFor(cli.StateAdmin)))
}

func TestMenuFor_AdminNoExponeOperacionesDeCompra(t *testing.T) {
	app, _ := buildApp("")
	for _, opt := range app.MenuFor(cli.StateAdmin) {
		assert.NotContains(t, opt.Label, "pedido",
			"las operaciones de compra no se despachan desde el menú de admin")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// StateForRole
// ──────────────────────────────────────────────────────────────────────────────

func TestStateForRole_MapeaCadaRol(t *testing.T) {
	assert.Equal(t, cli.StateCustomer, cli.StateForRole(entity.RoleCustomer))
	assert.Equal(t, cli.StateManager, cli.StateForRole(entity.RoleManager))
	assert.Equal(t, cli.StateAdmin, cli.StateForRole(entity.RoleAdmin))
}

// ──────────────────────────────────────────────────────────────────────────────
// Bucle principal
// ──────────────────────────────────────────────────────────────────────────────

func TestRun_OpcionNoReconocidaConservaElMenu(t *testing.T) {
	// 77 no existe en el menú sin sesión; 9 sale.
	app, out := buildApp("77\n9\n")

	err := app.Run(context.Background())

	require.NoError(t, err)
	got := out.String()
	assert.Contains(t, got, "¡Opción no reconocida!")
	assert.Equal(t, 2, strings.Count(got, "MENÚ PRINCIPAL"),
		"tras la opción inválida se reimprime el mismo menú")
}

func TestRun_EntradaNoNumericaReintenta(t *testing.T) {
	app, out := buildApp("hola\n9\n")

	err := app.Run(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "¡Entrada inválida!")
}

func TestRun_StdinAgotadoTerminaOrdenadamente(t *testing.T) {
	app, _ := buildApp("")

	err := app.Run(context.Background())
	assert.NoError(t, err, "quedarse sin entrada no es un fallo del proceso")
}
