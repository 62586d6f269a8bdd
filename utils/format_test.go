package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSalsas(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		want    string
	}{
		{"ambas salsas", "normal:2;dulce:1", "Soya normal x2, Soya dulce x1"},
		{"solo normal", "normal:3", "Soya normal x3"},
		{"solo dulce", "dulce:1", "Soya dulce x1"},
		{"vacio", "", ""},
		{"llave desconocida y cantidad basura", "x:abc", ""},
		{"llave desconocida se descarta", "normal:1;teriyaki:5", "Soya normal x1"},
		{"cantidad cero no se muestra", "normal:0;dulce:2", "Soya dulce x2"},
		{"espacios alrededor de la llave", " normal :2", "Soya normal x2"},
		{"par sin dos puntos", "normal", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSalsas(tt.encoded))
		})
	}
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, "&lt;a&gt;&amp;&quot;&#39;", EscapeText(`<a>&"'`))
	assert.Equal(t, "", EscapeText(""))
	assert.Equal(t, "sin cambios", EscapeText("sin cambios"))
}

func TestFormatMedioPago(t *testing.T) {
	assert.Equal(t, "Efectivo", FormatMedioPago("efectivo"))
	assert.Equal(t, "Efectivo", FormatMedioPago("  EFECTIVO "))
	assert.Equal(t, "Transferencia", FormatMedioPago("transferencia"))
	assert.Equal(t, "Tarjeta", FormatMedioPago("tarjeta"))
	assert.Equal(t, "-", FormatMedioPago(""))
	// Codigo desconocido pasa crudo, no se inventa etiqueta.
	assert.Equal(t, "cheque", FormatMedioPago("cheque"))
}

func TestFormatHora(t *testing.T) {
	local := time.Date(2026, 8, 29, 9, 5, 0, 0, time.Local)
	assert.Equal(t, "09:05", FormatHora(local.Format(time.RFC3339)))
	assert.Equal(t, "--:--", FormatHora("no-es-fecha"))
	assert.Equal(t, "--:--", FormatHora(""))
}

func TestFormatCLP(t *testing.T) {
	assert.Equal(t, "$5.500", FormatCLP(5500))
	assert.Equal(t, "$0", FormatCLP(0))
	assert.Equal(t, "$1.234.567", FormatCLP(1234567))
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 42, ToInt("42"))
	assert.Equal(t, 42, ToInt(" 42 "))
	assert.Equal(t, 0, ToInt("abc"))
	assert.Equal(t, 0, ToInt(""))
	assert.Equal(t, -7, ToInt("-7"))
}
