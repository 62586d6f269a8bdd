package views

import (
	"github.com/cvidalr/sushi-mostrador/models"
)

// Filter devuelve la subsecuencia de pedidos visible bajo el modo dado.
// No reordena: la API ya entrega en orden de creacion.
func Filter(orders []models.Order, mode FilterMode) []models.Order {
	if mode == FilterAll {
		out := make([]models.Order, len(orders))
		copy(out, orders)
		return out
	}
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		switch mode {
		case FilterPending:
			if !o.IsDelivered() {
				out = append(out, o)
			}
		case FilterDelivered:
			if o.IsDelivered() {
				out = append(out, o)
			}
		}
	}
	return out
}
