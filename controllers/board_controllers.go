package controllers

import (
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cvidalr/sushi-mostrador/services"
	"github.com/cvidalr/sushi-mostrador/utils"
	"github.com/cvidalr/sushi-mostrador/views"
)

// BoardController sirve las pantallas de mostrador y cocina a partir
// del snapshot del poller, y canaliza las acciones por el dispatcher.
type BoardController struct {
	Poller        *services.OrderPoller
	Dispatcher    *services.Dispatcher
	LateThreshold time.Duration
	RefreshSecs   int
}

func NewBoardController(p *services.OrderPoller, d *services.Dispatcher, lateThreshold time.Duration, refreshSecs int) *BoardController {
	return &BoardController{
		Poller:        p,
		Dispatcher:    d,
		LateThreshold: lateThreshold,
		RefreshSecs:   refreshSecs,
	}
}

// GetCounterBoard -> GET / : la tabla del mostrador.
func (bc *BoardController) GetCounterBoard(c *gin.Context) {
	profile := views.CounterProfile
	mode := profile.ParseFilter(c.Query("estado"))

	snap := bc.Poller.Snapshot()
	visible := views.Filter(snap.Orders, mode)

	page := views.BoardPage{
		Title:      "Pedidos — Mostrador",
		Refresh:    bc.RefreshSecs,
		Filter:     mode,
		ShowFilter: profile.AllowFilter,
		Rows:       views.RenderRows(visible, profile, time.Now(), bc.LateThreshold),
		Empty:      len(visible) == 0,
		Promos:     bc.Poller.Promos(),
		FetchedAt:  formatFetchedAt(snap.FetchedAt),
	}
	renderHTML(c, views.CounterTemplate, page)
}

// GetKitchenBoard -> GET /kitchen : solo pendientes, sin acciones,
// con marca de atraso.
func (bc *BoardController) GetKitchenBoard(c *gin.Context) {
	profile := views.KitchenProfile

	snap := bc.Poller.Snapshot()
	visible := views.Filter(snap.Orders, profile.DefaultFilter)

	page := views.BoardPage{
		Title:     "Pedidos — Cocina",
		Refresh:   bc.RefreshSecs,
		Filter:    profile.DefaultFilter,
		Rows:      views.RenderRows(visible, profile, time.Now(), bc.LateThreshold),
		Empty:     len(visible) == 0,
		FetchedAt: formatFetchedAt(snap.FetchedAt),
	}
	renderHTML(c, views.KitchenTemplate, page)
}

// MarkDelivered -> POST /board/orders/:order_id/entregado
func (bc *BoardController) MarkDelivered(c *gin.Context) {
	id, err := parseOrderID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	// El error no corta el flujo: el re-fetch forzado ya quedo pedido
	// y la proxima pintada muestra lo que diga el servidor.
	if err := bc.Dispatcher.Dispatch(c.Request.Context(), id, services.ActionEntregado, false); err != nil {
		utils.ErrorLogger.Printf("board: marcar entregado %d: %v", id, err)
	}
	c.Redirect(http.StatusSeeOther, backTo(c))
}

// SetPaid -> POST /board/orders/:order_id/paid  (form: paid=true|false)
func (bc *BoardController) SetPaid(c *gin.Context) {
	id, err := parseOrderID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	paid := c.PostForm("paid") == "true"
	if err := bc.Dispatcher.Dispatch(c.Request.Context(), id, services.ActionSetPaid, paid); err != nil {
		utils.ErrorLogger.Printf("board: set_paid %d: %v", id, err)
	}
	c.Redirect(http.StatusSeeOther, backTo(c))
}

// GetOrderEdit -> GET /orders/:order_id/edit
// Con ?promo=N aplica el prellenado de promo del lado servidor.
func (bc *BoardController) GetOrderEdit(c *gin.Context) {
	id, err := parseOrderID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	order, ok := bc.Poller.FindOrder(id)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("pedido %d no esta en el tablero", id))
		return
	}

	draft := views.OrderDraft{
		Detalle:       order.Detalle,
		MontoPromo:    strconv.Itoa(order.MontoTotalCLP),
		MontoDespacho: "0",
	}
	applied := 0
	if nro := utils.ToInt(c.Query("promo")); nro > 0 {
		if promo, found := views.FindPromo(bc.Poller.Promos(), nro); found {
			views.ApplyPromo(&draft, promo)
			applied = nro
		}
	}

	page := views.EditPage{
		Title:        fmt.Sprintf("Editar pedido #%d", order.ID),
		Order:        order,
		Draft:        draft,
		Promos:       bc.Poller.Promos(),
		AppliedPromo: applied,
	}
	renderHTML(c, views.EditTemplate, page)
}

func parseOrderID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("order_id invalido: %q", c.Param("order_id"))
	}
	return uint(id), nil
}

func backTo(c *gin.Context) string {
	if ref := c.Request.Referer(); ref != "" {
		return ref
	}
	return "/"
}

func formatFetchedAt(t time.Time) string {
	if t.IsZero() {
		return "nunca"
	}
	return t.Format("15:04:05")
}

func renderHTML(c *gin.Context, tmpl *template.Template, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Header("Cache-Control", "no-store")
	if err := tmpl.Execute(c.Writer, data); err != nil {
		utils.ErrorLogger.Printf("board: render fallo: %v", err)
	}
}
