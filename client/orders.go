package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cvidalr/sushi-mostrador/models"
)

// Client habla con la API de pedidos (la embebida o una remota).
// Sin timeout a proposito: un fetch colgado solo atrasa el proximo
// ciclo del poller, no bota nada.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// ListOrders trae la lista completa de pedidos, en orden de creacion.
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getJSON(ctx, "/api/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListPromos trae las promos para el autocompletado de formularios.
func (c *Client) ListPromos(ctx context.Context) ([]models.Promo, error) {
	var promos []models.Promo
	if err := c.getJSON(ctx, "/api/promos", &promos); err != nil {
		return nil, err
	}
	return promos, nil
}

// MarkDelivered transiciona el pedido a entregado.
func (c *Client) MarkDelivered(ctx context.Context, orderID uint) error {
	return c.patchOrder(ctx, orderID, map[string]interface{}{
		"action": "entregado",
	})
}

// SetPaid prende o apaga la marca de pago.
func (c *Client) SetPaid(ctx context.Context, orderID uint, paid bool) error {
	return c.patchOrder(ctx, orderID, map[string]interface{}{
		"action": "set_paid",
		"paid":   paid,
	})
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	// La vista siempre debe reflejar el estado del servidor.
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func (c *Client) patchOrder(ctx context.Context, orderID uint, payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("%s/api/orders/%d", c.BaseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("PATCH /api/orders/%d: status %d", orderID, resp.StatusCode)
	}
	return nil
}
