package views

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/cvidalr/sushi-mostrador/models"
	"github.com/cvidalr/sushi-mostrador/utils"
)

// Row es el modelo de presentacion de un pedido: todo lo que la
// plantilla interpola ya viene formateado y escapado.
type Row struct {
	ID        uint
	IDLabel   string
	Hora      string
	Late      bool
	Delivered bool

	EstadoLabel string // "Pendiente" | "Entregado"
	BadgeClass  string // badge-green | badge-red
	RowClass    string // row-green | row-red

	MedioPago      string
	Paid           bool
	PayBadgeLabel  string // "Pagado" | "Pendiente de pago"
	PayBadgeClass  string
	PayToggleLabel string // boton: texto del proximo estado
	PayToggleNext  bool   // paid que pediria el boton
	ShowDeliverBtn bool
	ShowActions    bool

	Total string

	// Bloques ya escapados, listos para interpolar.
	InfoHTML template.HTML
}

// BuildRow arma la fila de un pedido segun el perfil de la vista.
func BuildRow(o models.Order, p Profile, now time.Time, lateThreshold time.Duration) Row {
	delivered := o.IsDelivered()

	r := Row{
		ID:        o.ID,
		IDLabel:   fmt.Sprintf("#%d", o.ID),
		Hora:      utils.FormatHora(o.HoraCreacion),
		Late:      p.ShowLateBadge && o.IsLate(now, lateThreshold),
		Delivered: delivered,
		MedioPago: utils.FormatMedioPago(o.MedioPago),
		Paid:      o.Pagado,
		Total:     utils.FormatCLP(o.MontoTotalCLP),
		InfoHTML:  template.HTML(infoBlock(o)),
	}

	if delivered {
		r.EstadoLabel = "Entregado"
		r.BadgeClass = "badge-red"
		r.RowClass = "row-red"
	} else {
		r.EstadoLabel = "Pendiente"
		r.BadgeClass = "badge-green"
		r.RowClass = "row-green"
	}

	if o.Pagado {
		r.PayBadgeLabel = "Pagado"
		r.PayBadgeClass = "badge-pay-green"
		r.PayToggleLabel = "Pendiente de Pago"
		r.PayToggleNext = false
	} else {
		r.PayBadgeLabel = "Pendiente de pago"
		r.PayBadgeClass = "badge-pay-red"
		r.PayToggleLabel = "Pagado"
		r.PayToggleNext = true
	}

	r.ShowActions = p.AllowActions
	r.ShowDeliverBtn = p.AllowActions && !delivered
	return r
}

// infoBlock arma la celda central: cliente + chip de modalidad,
// telefono, direccion (solo despacho), detalle, palitos, soya y obs.
// Cada linea se omite completa cuando viene vacia.
func infoBlock(o models.Order) string {
	var b strings.Builder

	chip := `<span class="chip chip-ret">Retiro</span>`
	if strings.EqualFold(strings.TrimSpace(o.Modalidad), "despacho") {
		chip = `<span class="chip chip-desp">Despacho</span>`
	}
	fmt.Fprintf(&b, `<div class="topline"><span class="cliente">%s</span> %s</div>`,
		utils.EscapeText(o.ClienteNombre), chip)

	if o.Telefono != "" {
		fmt.Fprintf(&b, `<div class="sub">%s</div>`, utils.EscapeText(o.Telefono))
	}
	if dir := direccionLine(o); dir != "" {
		fmt.Fprintf(&b, `<div class="sub strong wrap">%s</div>`, utils.EscapeText(dir))
	}
	if o.Detalle != "" {
		fmt.Fprintf(&b, `<div class="sub wrap">%s</div>`, utils.EscapeText(o.Detalle))
	}
	if o.PalitosPares > 0 {
		fmt.Fprintf(&b, `<div class="sub">Pares de palitos: %d</div>`, o.PalitosPares)
	}
	if soya := utils.FormatSalsas(o.Salsas); soya != "" {
		fmt.Fprintf(&b, `<div class="sub">Soya: %s</div>`, utils.EscapeText(soya))
	}
	if o.Observaciones != "" {
		fmt.Fprintf(&b, `<div class="sub">Obs: %s</div>`, utils.EscapeText(o.Observaciones))
	}
	return b.String()
}

// direccionLine: solo para despacho y solo si hay algo que mostrar.
func direccionLine(o models.Order) string {
	if !strings.EqualFold(strings.TrimSpace(o.Modalidad), "despacho") {
		return ""
	}
	parts := make([]string, 0, 2)
	if strings.TrimSpace(o.Direccion) != "" {
		parts = append(parts, strings.TrimSpace(o.Direccion))
	}
	if strings.TrimSpace(o.Comuna) != "" {
		parts = append(parts, strings.TrimSpace(o.Comuna))
	}
	return strings.Join(parts, ", ")
}

// HTML renderiza la fila completa como <tr>.
func (r Row) HTML() template.HTML {
	var b strings.Builder

	horaCls := "time-badge"
	if r.Late {
		horaCls += " time-badge-late"
	}

	fmt.Fprintf(&b, `<tr class="%s">`, r.RowClass)
	fmt.Fprintf(&b, `<td>%s</td>`, r.IDLabel)
	fmt.Fprintf(&b, `<td><span class="%s">%s</span></td>`, horaCls, r.Hora)
	fmt.Fprintf(&b, `<td class="info">%s</td>`, r.InfoHTML)
	fmt.Fprintf(&b, `<td><span class="badge %s">%s</span></td>`, r.BadgeClass, r.EstadoLabel)
	fmt.Fprintf(&b, `<td>%s<div class="sub"><span class="badge %s">%s</span></div></td>`,
		utils.EscapeText(r.MedioPago), r.PayBadgeClass, r.PayBadgeLabel)
	fmt.Fprintf(&b, `<td class="right">%s</td>`, r.Total)

	if r.ShowActions {
		b.WriteString(`<td class="actions">`)
		fmt.Fprintf(&b,
			`<form method="post" action="/board/orders/%d/paid"><input type="hidden" name="paid" value="%t"><button class="btn btn-sm">%s</button></form>`,
			r.ID, r.PayToggleNext, r.PayToggleLabel)
		if r.ShowDeliverBtn {
			fmt.Fprintf(&b,
				`<form method="post" action="/board/orders/%d/entregado"><button class="btn btn-sm">Marcar Entregado</button></form>`,
				r.ID)
		}
		fmt.Fprintf(&b, `<a class="btn btn-sm" href="/orders/%d/edit">Editar</a>`, r.ID)
		b.WriteString(`</td>`)
	}

	b.WriteString(`</tr>`)
	return template.HTML(b.String())
}

// RenderRows arma el tbody completo para la vista.
func RenderRows(orders []models.Order, p Profile, now time.Time, lateThreshold time.Duration) template.HTML {
	var b strings.Builder
	for _, o := range orders {
		b.WriteString(string(BuildRow(o, p, now, lateThreshold).HTML()))
		b.WriteString("\n")
	}
	return template.HTML(b.String())
}
