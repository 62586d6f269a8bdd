package views

import (
	"strconv"

	"github.com/cvidalr/sushi-mostrador/models"
	"github.com/cvidalr/sushi-mostrador/utils"
)

// OrderDraft son los campos editables del formulario de crear/editar.
// Los montos se mantienen como texto porque vienen de inputs.
type OrderDraft struct {
	Detalle       string
	MontoPromo    string
	MontoDespacho string
}

// ApplyPromo autocompleta detalle y monto con la promo elegida.
// Deja los campos editables: es prellenado, no bloqueo.
func ApplyPromo(d *OrderDraft, p models.Promo) {
	d.Detalle = p.Detalle
	d.MontoPromo = strconv.Itoa(p.Monto)
}

// RecalcTotal calcula el total del pedido: monto promo + despacho.
// Entrada basura cuenta como 0.
func RecalcTotal(montoPromo, montoDespacho string) int {
	return utils.ToInt(montoPromo) + utils.ToInt(montoDespacho)
}

// FindPromo busca una promo por numero dentro de la lista cacheada.
func FindPromo(promos []models.Promo, nro int) (models.Promo, bool) {
	for _, p := range promos {
		if p.PromoNro == nro {
			return p, true
		}
	}
	return models.Promo{}, false
}
