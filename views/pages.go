package views

import (
	"html/template"

	"github.com/cvidalr/sushi-mostrador/models"
)

// Las paginas se recargan solas; el poller del lado servidor es el
// dueño de la cadencia real de fetch.
type BoardPage struct {
	Title      string
	Refresh    int // segundos de auto-reload, 0 = sin reload
	Filter     FilterMode
	ShowFilter bool
	Rows       template.HTML
	Empty      bool
	Promos     []models.Promo
	FetchedAt  string
}

type EditPage struct {
	Title  string
	Order  models.Order
	Draft  OrderDraft
	Promos []models.Promo
	// Promo aplicada via ?promo=N, 0 si ninguna.
	AppliedPromo int
}

var pageShell = `<!doctype html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{if gt .Refresh 0}}<meta http-equiv="refresh" content="{{.Refresh}}">{{end}}
<link rel="stylesheet" href="/static/board.css">
</head>
<body>
`

var CounterTemplate = template.Must(template.New("counter").Parse(pageShell + `
<h1>{{.Title}}</h1>

<form method="post" action="/orders" class="create-form">
  <input name="cliente_nombre" placeholder="Cliente" required>
  <input name="telefono" placeholder="Telefono">
  <label><input type="radio" name="modalidad" value="retiro" checked> Retiro</label>
  <label><input type="radio" name="modalidad" value="despacho"> Despacho</label>
  <input name="direccion" placeholder="Direccion (despacho)">
  <input name="comuna" placeholder="Comuna (despacho)">
  <select name="promo_nro">
    <option value="">&mdash; Selecciona promo &mdash;</option>
    {{range .Promos}}<option value="{{.PromoNro}}">{{.PromoNro}} &mdash; {{.Detalle}}</option>{{end}}
  </select>
  <input name="detalle" placeholder="Detalle">
  <input name="monto_promo" placeholder="Monto promo" value="0">
  <input name="monto_despacho" placeholder="Despacho" value="0">
  <input name="palitos_pares" placeholder="Pares de palitos" value="0">
  <label><input type="checkbox" name="salsa_normal" value="1"> Soya normal</label>
  <label><input type="checkbox" name="salsa_dulce" value="1"> Soya dulce</label>
  <select name="medio_pago">
    <option value="efectivo">Efectivo</option>
    <option value="transferencia">Transferencia</option>
    <option value="tarjeta">Tarjeta</option>
  </select>
  <input name="observaciones" placeholder="Observaciones">
  <button class="btn">Crear pedido</button>
</form>

{{if .ShowFilter}}
<form method="get" action="/" class="filter-form">
  <select name="estado" onchange="this.form.submit()">
    <option value="pending" {{if eq .Filter "pending"}}selected{{end}}>Pendientes</option>
    <option value="delivered" {{if eq .Filter "delivered"}}selected{{end}}>Entregados</option>
    <option value="all" {{if eq .Filter "all"}}selected{{end}}>Todos</option>
  </select>
  <noscript><button class="btn btn-sm">Filtrar</button></noscript>
</form>
{{end}}

<table class="orders">
  <thead>
    <tr><th>#</th><th>Hora</th><th>Pedido</th><th>Estado</th><th>Pago</th><th class="right">Total</th><th>Acciones</th></tr>
  </thead>
  <tbody id="orders_tbody">
{{.Rows}}
  </tbody>
</table>
{{if .Empty}}<p class="empty">Sin pedidos para mostrar.</p>{{end}}
<p class="sub">Actualizado: {{.FetchedAt}}</p>
</body>
</html>
`))

var KitchenTemplate = template.Must(template.New("kitchen").Parse(pageShell + `
<h1>{{.Title}}</h1>
<table class="orders kitchen">
  <thead>
    <tr><th>#</th><th>Hora</th><th>Pedido</th><th>Estado</th><th>Pago</th><th class="right">Total</th></tr>
  </thead>
  <tbody id="orders_tbody">
{{.Rows}}
  </tbody>
</table>
{{if .Empty}}<p id="empty" class="empty">Sin pedidos pendientes 🎉</p>{{end}}
<p class="sub">Actualizado: {{.FetchedAt}}</p>
</body>
</html>
`))

var EditTemplate = template.Must(template.New("edit").Parse(`<!doctype html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="/static/board.css">
</head>
<body>
<h1>{{.Title}}</h1>

<div class="promo-picker">
  <span>Promos:</span>
  {{$oid := .Order.ID}}
  {{range .Promos}}
  <a class="btn btn-sm" href="/orders/{{$oid}}/edit?promo={{.PromoNro}}">{{.PromoNro}} &mdash; {{.Detalle}}</a>
  {{end}}
  {{if .AppliedPromo}}<span class="sub">Promo {{.AppliedPromo}} aplicada</span>{{end}}
</div>

<form id="editForm" method="post" action="/orders/{{.Order.ID}}/update">
  <input name="cliente_nombre" value="{{.Order.ClienteNombre}}" required>
  <input name="telefono" value="{{.Order.Telefono}}">
  <label><input type="radio" name="modalidad" value="retiro" {{if ne .Order.Modalidad "despacho"}}checked{{end}}> Retiro</label>
  <label><input type="radio" name="modalidad" value="despacho" {{if eq .Order.Modalidad "despacho"}}checked{{end}}> Despacho</label>
  <input name="direccion" value="{{.Order.Direccion}}">
  <input name="comuna" value="{{.Order.Comuna}}">
  <input name="detalle" id="detalleField" value="{{.Draft.Detalle}}">
  <input name="monto_promo" id="promoAmount" value="{{.Draft.MontoPromo}}">
  <input name="monto_despacho" id="despachoField" value="{{.Draft.MontoDespacho}}">
  <input name="palitos_pares" value="{{.Order.PalitosPares}}">
  <input name="salsas" value="{{.Order.Salsas}}">
  <select name="medio_pago">
    <option value="efectivo" {{if eq .Order.MedioPago "efectivo"}}selected{{end}}>Efectivo</option>
    <option value="transferencia" {{if eq .Order.MedioPago "transferencia"}}selected{{end}}>Transferencia</option>
    <option value="tarjeta" {{if eq .Order.MedioPago "tarjeta"}}selected{{end}}>Tarjeta</option>
  </select>
  <input name="observaciones" value="{{.Order.Observaciones}}">
  <button class="btn">Guardar</button>
  <a class="btn" href="/">Volver</a>
</form>
</body>
</html>
`))
