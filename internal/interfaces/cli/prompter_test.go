package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-shop/internal/domain"
	"github.com/tu-usuario/retail-shop/internal/interfaces/cli"
)

// ──────────────────────────────────────────────────────────────────────────────
// ReadChoice
// ──────────────────────────────────────────────────────────────────────────────

func TestReadChoice_ReintentaHastaRecibirEntero(t *testing.T) {
	var out bytes.Buffer
	p := cli.NewPrompter(strings.NewReader("abc\n\n5\n"), &out)

	n, err := p.ReadChoice()

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Contains(t, out.String(), "¡Entrada inválida!")
}

func TestReadChoice_EOFDevuelveError(t *testing.T) {
	p := cli.NewPrompter(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.ReadChoice()
	assert.Error(t, err, "sin más entrada no hay elección que esperar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura de campos
// ──────────────────────────────────────────────────────────────────────────────

func TestReadLine_RecortaEspacios(t *testing.T) {
	p := cli.NewPrompter(strings.NewReader("  café con leche  \n"), &bytes.Buffer{})

	got, err := p.ReadLine("Producto: ")

	require.NoError(t, err)
	assert.Equal(t, "café con leche", got)
}

func TestReadInt_ValorIlegibleAbortaLaOperacion(t *testing.T) {
	p := cli.NewPrompter(strings.NewReader("tres\n"), &bytes.Buffer{})

	_, err := p.ReadInt("Cantidad: ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReadFloat_LeeCoordenadas(t *testing.T) {
	p := cli.NewPrompter(strings.NewReader("42.5\n"), &bytes.Buffer{})

	got, err := p.ReadFloat("Latitud: ")

	require.NoError(t, err)
	assert.Equal(t, 42.5, got)
}

func TestReadDecimal_AceptaElSentinela(t *testing.T) {
	p := cli.NewPrompter(strings.NewReader("-1\n"), &bytes.Buffer{})

	got, err := p.ReadDecimal("Precio: ")

	require.NoError(t, err)
	assert.True(t, got.IsNegative(), "-1 debe llegar al caso de uso como sentinela")
}

func TestReadDecimal_ValorIlegible(t *testing.T) {
	p := cli.NewPrompter(strings.NewReader("caro\n"), &bytes.Buffer{})

	_, err := p.ReadDecimal("Precio: ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
