package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/retail-shop/internal/domain"
)

// Prompter lee el protocolo de consola: líneas de texto sobre stdin.
// Solo la elección de menú reintenta hasta recibir un entero; los campos de
// una operación abortan la operación al primer valor ilegible.
type Prompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewPrompter construye el lector de consola.
func NewPrompter(r io.Reader, out io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), out: out}
}

// ReadChoice pide una opción de menú hasta recibir un entero.
func (p *Prompter) ReadChoice() (int, error) {
	for {
		fmt.Fprint(p.out, "Elige una opción: ")
		line, err := p.r.ReadString('\n')
		if err != nil {
			// EOF u otro fallo de stdin: no hay más entrada que esperar.
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(p.out, "¡Entrada inválida!")
			continue
		}
		return n, nil
	}
}

// ReadLine pide una línea de texto y la devuelve sin espacios en los extremos.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadInt pide un entero.
func (p *Prompter) ReadInt(prompt string) (int, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	return n, nil
}

// ReadFloat pide un número de punto flotante (coordenadas).
func (p *Prompter) ReadFloat(prompt string) (float64, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	return f, nil
}

// ReadDecimal pide un monto (precios). Acepta -1 como sentinela.
func (p *Prompter) ReadDecimal(prompt string) (decimal.Decimal, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(line)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return d, nil
}
