package views

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cvidalr/sushi-mostrador/models"
)

var lateThreshold = 60 * time.Minute

func TestBuildRowPendingUnpaid(t *testing.T) {
	now := time.Now()
	o := models.Order{
		ID:            7,
		ClienteNombre: "Carla",
		Estado:        "nuevo",
		Pagado:        false,
		MedioPago:     "efectivo",
		MontoTotalCLP: 15990,
		HoraCreacion:  now.Add(-10 * time.Minute).Format(time.RFC3339),
	}
	r := BuildRow(o, CounterProfile, now, lateThreshold)

	assert.Equal(t, "#7", r.IDLabel)
	assert.Equal(t, "Pendiente", r.EstadoLabel)
	assert.Equal(t, "badge-green", r.BadgeClass)
	assert.Equal(t, "row-green", r.RowClass)
	assert.Equal(t, "Pendiente de pago", r.PayBadgeLabel)
	// El boton ofrece el estado inverso al actual.
	assert.Equal(t, "Pagado", r.PayToggleLabel)
	assert.True(t, r.PayToggleNext)
	assert.True(t, r.ShowDeliverBtn)
	assert.Equal(t, "$15.990", r.Total)
	assert.False(t, r.Late)
}

func TestBuildRowDeliveredPaid(t *testing.T) {
	now := time.Now()
	o := models.Order{ID: 9, Estado: "despachado", Pagado: true}
	r := BuildRow(o, CounterProfile, now, lateThreshold)

	assert.Equal(t, "Entregado", r.EstadoLabel)
	assert.Equal(t, "badge-red", r.BadgeClass)
	assert.Equal(t, "Pagado", r.PayBadgeLabel)
	assert.Equal(t, "Pendiente de Pago", r.PayToggleLabel)
	assert.False(t, r.PayToggleNext)
	// Ya entregado: no hay boton de marcar entregado.
	assert.False(t, r.ShowDeliverBtn)
}

func TestBuildRowKitchenLate(t *testing.T) {
	now := time.Now()
	o := models.Order{
		ID:           3,
		Estado:       "nuevo",
		HoraCreacion: now.Add(-90 * time.Minute).Format(time.RFC3339),
	}
	kitchen := BuildRow(o, KitchenProfile, now, lateThreshold)
	assert.True(t, kitchen.Late)
	assert.False(t, kitchen.ShowActions)

	// El mostrador no marca atraso aunque el pedido sea viejo.
	counter := BuildRow(o, CounterProfile, now, lateThreshold)
	assert.False(t, counter.Late)
	assert.True(t, counter.ShowActions)
}

func TestRowHTMLEscapesFields(t *testing.T) {
	now := time.Now()
	o := models.Order{
		ID:            1,
		ClienteNombre: `<script>alert("x")</script>`,
		Detalle:       "rolls & nigiri",
		Observaciones: "sin 'wasabi'",
		Estado:        "nuevo",
	}
	html := string(BuildRow(o, CounterProfile, now, lateThreshold).HTML())

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "rolls &amp; nigiri")
	assert.Contains(t, html, "sin &#39;wasabi&#39;")
}

func TestInfoBlockAddressRules(t *testing.T) {
	now := time.Now()

	// Retiro: jamas se muestra direccion aunque venga.
	retiro := models.Order{ID: 1, ClienteNombre: "Ana", Modalidad: "retiro", Direccion: "Av. Siempre Viva 123"}
	html := string(BuildRow(retiro, CounterProfile, now, lateThreshold).HTML())
	assert.NotContains(t, html, "Siempre Viva")
	assert.Contains(t, html, "chip-ret")

	// Despacho con direccion y comuna.
	despacho := models.Order{ID: 2, ClienteNombre: "Ana", Modalidad: "despacho", Direccion: "Av. Siempre Viva 123", Comuna: "Ñuñoa"}
	html = string(BuildRow(despacho, CounterProfile, now, lateThreshold).HTML())
	assert.Contains(t, html, "Av. Siempre Viva 123, Ñuñoa")
	assert.Contains(t, html, "chip-desp")

	// Despacho sin datos de direccion: la linea se omite entera.
	vacio := models.Order{ID: 3, ClienteNombre: "Ana", Modalidad: "despacho"}
	html = string(BuildRow(vacio, CounterProfile, now, lateThreshold).HTML())
	assert.NotContains(t, html, "strong wrap")
}

func TestInfoBlockOptionalLines(t *testing.T) {
	now := time.Now()
	o := models.Order{
		ID:            4,
		ClienteNombre: "Pedro",
		Estado:        "nuevo",
		PalitosPares:  2,
		Salsas:        "normal:2;dulce:1",
	}
	html := string(BuildRow(o, CounterProfile, now, lateThreshold).HTML())
	assert.Contains(t, html, "Pares de palitos: 2")
	assert.Contains(t, html, "Soya: Soya normal x2, Soya dulce x1")
	assert.NotContains(t, html, "Obs:")

	// Sin palitos ni salsas, esas lineas no aparecen.
	pelado := models.Order{ID: 5, ClienteNombre: "Pedro", Estado: "nuevo"}
	html = string(BuildRow(pelado, CounterProfile, now, lateThreshold).HTML())
	assert.NotContains(t, html, "Pares de palitos")
	assert.NotContains(t, html, "Soya:")
}

func TestRenderRowsActions(t *testing.T) {
	now := time.Now()
	orders := []models.Order{{ID: 1, ClienteNombre: "A", Estado: "nuevo"}}

	counter := string(RenderRows(orders, CounterProfile, now, lateThreshold))
	assert.Contains(t, counter, "/board/orders/1/paid")
	assert.Contains(t, counter, "/board/orders/1/entregado")
	assert.Contains(t, counter, "/orders/1/edit")

	kitchen := string(RenderRows(orders, KitchenProfile, now, lateThreshold))
	assert.NotContains(t, kitchen, "/board/orders/")
	assert.NotContains(t, kitchen, "Editar")

	if !strings.Contains(counter, "Marcar Entregado") {
		t.Fatalf("falta el boton de entrega en: %s", counter)
	}
}
