package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer es-CL para montos (separador de miles con punto).
var clpPrinter = message.NewPrinter(language.MustParse("es-CL"))

// Orden fijo de salsas reconocidas. El resto de las llaves se ignora.
var salsaLabels = []struct {
	key   string
	label string
}{
	{"normal", "Soya normal"},
	{"dulce", "Soya dulce"},
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeText escapa los cinco caracteres con significado en HTML.
// Todo campo que se interpola en una fila debe pasar por aca.
func EscapeText(s string) string {
	return htmlEscaper.Replace(s)
}

// FormatHora devuelve "HH:MM" en hora local, o "--:--" si el
// timestamp no parsea.
func FormatHora(ts string) string {
	t, ok := parseHora(ts)
	if !ok {
		return "--:--"
	}
	return t.Format("15:04")
}

// FormatCLP formatea un monto entero en pesos chilenos: 5500 -> "$5.500".
func FormatCLP(amount int) string {
	return clpPrinter.Sprintf("$%d", amount)
}

// FormatMedioPago mapea el codigo de medio de pago a su etiqueta.
// Codigos desconocidos se muestran tal cual; vacio => "-".
func FormatMedioPago(code string) string {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "efectivo":
		return "Efectivo"
	case "transferencia":
		return "Transferencia"
	case "tarjeta":
		return "Tarjeta"
	case "":
		return "-"
	default:
		return code
	}
}

// FormatSalsas arma el resumen de soya a partir del encoding
// "normal:2;dulce:1" -> "Soya normal x2, Soya dulce x1".
// Llaves no reconocidas y cantidades que no parsean se descartan.
func FormatSalsas(encoded string) string {
	if strings.TrimSpace(encoded) == "" {
		return ""
	}
	counts := map[string]int{}
	for _, pair := range strings.Split(encoded, ";") {
		k, v, found := strings.Cut(pair, ":")
		if !found {
			continue
		}
		counts[strings.TrimSpace(k)] = ToInt(v)
	}
	var parts []string
	for _, s := range salsaLabels {
		if n := counts[s.key]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s x%d", s.label, n))
		}
	}
	return strings.Join(parts, ", ")
}

// ToInt parsea un entero tolerante: basura o vacio => 0.
func ToInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

var horaLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseHora(ts string) (time.Time, bool) {
	s := strings.TrimSpace(ts)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range horaLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
