package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cvidalr/sushi-mostrador/client"
	"github.com/cvidalr/sushi-mostrador/utils"
)

// Acciones que acepta la API de pedidos.
const (
	ActionEntregado = "entregado"
	ActionSetPaid   = "set_paid"
)

// Dispatcher es el unico camino de escritura del tablero: manda el
// PATCH y fuerza un ciclo del poller. Nada de mutacion optimista;
// la fila cambia recien cuando vuelve el re-fetch.
type Dispatcher struct {
	Client *client.Client
	Poller *OrderPoller
}

func NewDispatcher(c *client.Client, p *OrderPoller) *Dispatcher {
	return &Dispatcher{Client: c, Poller: p}
}

// Dispatch ejecuta una accion sobre un pedido. Gane o pierda el PATCH,
// igual se fuerza el re-fetch: el servidor manda.
func (d *Dispatcher) Dispatch(ctx context.Context, orderID uint, action string, paid bool) error {
	reqID := uuid.NewString()
	utils.InfoLogger.Printf("dispatch %s: pedido=%d accion=%s paid=%t", reqID, orderID, action, paid)

	var err error
	switch action {
	case ActionEntregado:
		err = d.Client.MarkDelivered(ctx, orderID)
	case ActionSetPaid:
		err = d.Client.SetPaid(ctx, orderID, paid)
	default:
		err = fmt.Errorf("accion desconocida: %q", action)
	}

	if err != nil {
		utils.ErrorLogger.Printf("dispatch %s: fallo: %v", reqID, err)
	}
	d.Poller.Refresh()
	return err
}
