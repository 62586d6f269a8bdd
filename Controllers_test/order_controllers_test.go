package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cvidalr/sushi-mostrador/controllers"
	"github.com/cvidalr/sushi-mostrador/models"
	"github.com/cvidalr/sushi-mostrador/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	// DB en memoria con nombre por test: el pool de conexiones tiene
	// que ver la misma base.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("no se pudo abrir sqlite en memoria: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.Promo{}); err != nil {
		t.Fatalf("migracion fallo: %v", err)
	}
	return db
}

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	orderCtrl := controllers.NewOrderController(db)
	promoCtrl := controllers.NewPromoController(db)
	r.GET("/api/orders", orderCtrl.GetAllOrders)
	r.PATCH("/api/orders/:order_id", orderCtrl.PatchOrder)
	r.GET("/api/promos", promoCtrl.GetAllPromos)
	r.POST("/orders", orderCtrl.CreateOrder)
	r.POST("/orders/:order_id/update", orderCtrl.UpdateOrder)
	return r
}

func TestGetAllOrdersBareArrayInCreationOrder(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Order{ClienteNombre: "Primero", Estado: "nuevo"})
	db.Create(&models.Order{ClienteNombre: "Segundo", Estado: "entregado"})
	r := setupOrderRouter(db)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// Array pelado, no el sobre {status,message,data}.
	var orders []models.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)
	assert.Equal(t, "Primero", orders[0].ClienteNombre)
	assert.Equal(t, "Segundo", orders[1].ClienteNombre)
}

func TestPatchOrderEntregado(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Order{ClienteNombre: "Ana", Estado: "nuevo"})
	r := setupOrderRouter(db)

	body, _ := json.Marshal(map[string]interface{}{"action": "entregado"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPatch, "/api/orders/1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	db.First(&order, 1)
	assert.Equal(t, "entregado", order.Estado)
	assert.True(t, order.IsDelivered())
	// El pago no se toca al entregar.
	assert.False(t, order.Pagado)
}

func TestPatchOrderSetPaid(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Order{ClienteNombre: "Ana", Estado: "nuevo"})
	r := setupOrderRouter(db)

	patch := func(paid bool) int {
		body, _ := json.Marshal(map[string]interface{}{"action": "set_paid", "paid": paid})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPatch, "/api/orders/1", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, patch(true))
	var order models.Order
	db.First(&order, 1)
	assert.True(t, order.Pagado)
	assert.Equal(t, "nuevo", order.Estado)

	assert.Equal(t, http.StatusOK, patch(false))
	db.First(&order, 1)
	assert.False(t, order.Pagado)
}

func TestPatchOrderBadRequests(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Order{ClienteNombre: "Ana", Estado: "nuevo"})
	r := setupOrderRouter(db)

	send := func(path string, payload map[string]interface{}) int {
		body, _ := json.Marshal(payload)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPatch, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusBadRequest, send("/api/orders/1", map[string]interface{}{"action": "volar"}))
	assert.Equal(t, http.StatusBadRequest, send("/api/orders/1", map[string]interface{}{"action": "set_paid"}))
	assert.Equal(t, http.StatusNotFound, send("/api/orders/99", map[string]interface{}{"action": "entregado"}))
	assert.Equal(t, http.StatusBadRequest, send("/api/orders/abc", map[string]interface{}{"action": "entregado"}))
}

func TestCreateOrderFromForm(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)

	form := url.Values{
		"cliente_nombre": {"Carla"},
		"telefono":       {"+56911112222"},
		"modalidad":      {"despacho"},
		"direccion":      {"Av. Siempre Viva 123"},
		"comuna":         {"Ñuñoa"},
		"detalle":        {"45 piezas premium"},
		"monto_promo":    {"19990"},
		"monto_despacho": {"2500"},
		"palitos_pares":  {"2"},
		"salsa_normal":   {"1"},
		"medio_pago":     {"transferencia"},
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/orders", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)

	var order models.Order
	db.First(&order)
	assert.Equal(t, "Carla", order.ClienteNombre)
	assert.Equal(t, "despacho", order.Modalidad)
	assert.Equal(t, "Ñuñoa", order.Comuna)
	// Total = promo + despacho.
	assert.Equal(t, 22490, order.MontoTotalCLP)
	assert.Equal(t, "normal:1", order.Salsas)
	assert.Equal(t, "nuevo", order.Estado)
	assert.False(t, order.Pagado)
	_, ok := order.CreatedAt()
	assert.True(t, ok, "hora_creacion debe quedar parseable")
}

func TestCreateOrderRequiresName(t *testing.T) {
	db := setupTestDB(t)
	r := setupOrderRouter(db)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/orders", strings.NewReader("detalle=algo"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderClearsAddressOutsideDespacho(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Order{
		ClienteNombre: "Ana",
		Modalidad:     "despacho",
		Direccion:     "Av. Siempre Viva 123",
		Comuna:        "Ñuñoa",
		Estado:        "nuevo",
	})
	r := setupOrderRouter(db)

	form := url.Values{
		"cliente_nombre":  {"Ana Maria"},
		"modalidad":       {"retiro"},
		"direccion":       {"Av. Siempre Viva 123"},
		"comuna":          {"Ñuñoa"},
		"detalle":         {"35 piezas mixtas"},
		"monto_total_clp": {"15990"},
		"medio_pago":      {"efectivo"},
		"salsas":          {"dulce:2"},
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/orders/1/update", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)

	var order models.Order
	db.First(&order, 1)
	assert.Equal(t, "Ana Maria", order.ClienteNombre)
	assert.Equal(t, "retiro", order.Modalidad)
	// Fuera de despacho la direccion se limpia.
	assert.Empty(t, order.Direccion)
	assert.Empty(t, order.Comuna)
	assert.Equal(t, 15990, order.MontoTotalCLP)
	assert.Equal(t, "dulce:2", order.Salsas)
}

func TestGetAllPromos(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Promo{PromoNro: 2, Detalle: "45 piezas premium", Monto: 19990})
	db.Create(&models.Promo{PromoNro: 1, Detalle: "35 piezas mixtas", Monto: 15990})
	r := setupOrderRouter(db)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/promos", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var promos []models.Promo
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &promos))
	assert.Len(t, promos, 2)
	assert.Equal(t, 1, promos[0].PromoNro)
	assert.Equal(t, "35 piezas mixtas", promos[0].Detalle)
}
