package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cvidalr/sushi-mostrador/models"
	"github.com/cvidalr/sushi-mostrador/utils"
	"github.com/cvidalr/sushi-mostrador/views"
)

// OrderController implementa la API de pedidos embebida.
// El tablero la consume por HTTP igual que a una remota.
type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// GetAllOrders -> GET /api/orders
// Array pelado en orden de creacion; el cliente depende de ese orden.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := oc.DB.Order("id asc").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, orders)
}

// PatchOrder -> PATCH /api/orders/:order_id
// Acciones: {"action":"entregado"} | {"action":"set_paid","paid":bool}
func (oc *OrderController) PatchOrder(c *gin.Context) {
	id, err := parseOrderID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type patchReq struct {
		Action string `json:"action" binding:"required"`
		Paid   *bool  `json:"paid"`
	}
	var req patchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	switch req.Action {
	case "entregado":
		order.Estado = "entregado"
	case "set_paid":
		if req.Paid == nil {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("set_paid requiere paid"))
			return
		}
		order.Pagado = *req.Paid
	default:
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("accion desconocida: %q", req.Action))
		return
	}

	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Pedido actualizado", order)
}

// CreateOrder -> POST /orders : alta desde el formulario del mostrador.
// Estado "nuevo", sin pagar, hora de creacion ahora.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	modalidad := c.PostForm("modalidad")
	if modalidad != "despacho" {
		modalidad = "retiro"
	}

	order := models.Order{
		ClienteNombre: strings.TrimSpace(c.PostForm("cliente_nombre")),
		Telefono:      strings.TrimSpace(c.PostForm("telefono")),
		Modalidad:     modalidad,
		Detalle:       strings.TrimSpace(c.PostForm("detalle")),
		PalitosPares:  utils.ToInt(c.PostForm("palitos_pares")),
		Salsas:        salsasFromForm(c),
		Observaciones: strings.TrimSpace(c.PostForm("observaciones")),
		MedioPago:     c.PostForm("medio_pago"),
		Pagado:        false,
		Estado:        "nuevo",
		HoraCreacion:  time.Now().Format(time.RFC3339),
	}
	// Direccion solo tiene sentido con despacho.
	if modalidad == "despacho" {
		order.Direccion = strings.TrimSpace(c.PostForm("direccion"))
		order.Comuna = strings.TrimSpace(c.PostForm("comuna"))
	}
	order.MontoTotalCLP = views.RecalcTotal(c.PostForm("monto_promo"), c.PostForm("monto_despacho"))

	if order.ClienteNombre == "" {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("cliente_nombre es obligatorio"))
		return
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// UpdateOrder -> POST /orders/:order_id/update : guardar desde Editar.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, err := parseOrderID(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	modalidad := c.PostForm("modalidad")
	if modalidad != "despacho" {
		modalidad = "retiro"
	}

	order.ClienteNombre = strings.TrimSpace(c.PostForm("cliente_nombre"))
	order.Telefono = strings.TrimSpace(c.PostForm("telefono"))
	order.Modalidad = modalidad
	order.Detalle = strings.TrimSpace(c.PostForm("detalle"))
	order.PalitosPares = utils.ToInt(c.PostForm("palitos_pares"))
	order.Observaciones = strings.TrimSpace(c.PostForm("observaciones"))
	order.MedioPago = c.PostForm("medio_pago")
	if s, ok := c.GetPostForm("salsas"); ok {
		order.Salsas = strings.TrimSpace(s)
	} else {
		order.Salsas = salsasFromForm(c)
	}
	// Fuera de despacho la direccion se limpia.
	if modalidad == "despacho" {
		order.Direccion = strings.TrimSpace(c.PostForm("direccion"))
		order.Comuna = strings.TrimSpace(c.PostForm("comuna"))
	} else {
		order.Direccion = ""
		order.Comuna = ""
	}
	if monto, ok := c.GetPostForm("monto_total_clp"); ok {
		order.MontoTotalCLP = utils.ToInt(monto)
	} else {
		order.MontoTotalCLP = views.RecalcTotal(c.PostForm("monto_promo"), c.PostForm("monto_despacho"))
	}

	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// salsasFromForm arma el encoding "normal:2;dulce:1" desde checkboxes
// o campos numericos del formulario.
func salsasFromForm(c *gin.Context) string {
	var parts []string
	if n := utils.ToInt(c.PostForm("salsa_normal")); n > 0 {
		parts = append(parts, fmt.Sprintf("normal:%d", n))
	}
	if n := utils.ToInt(c.PostForm("salsa_dulce")); n > 0 {
		parts = append(parts, fmt.Sprintf("dulce:%d", n))
	}
	return strings.Join(parts, ";")
}
