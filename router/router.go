package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cvidalr/sushi-mostrador/controllers"
	"github.com/cvidalr/sushi-mostrador/middlewares"
	"github.com/cvidalr/sushi-mostrador/services"
)

// Deps junta lo que necesita el router. DB puede venir nil cuando el
// tablero apunta a una API remota y no se monta la API embebida.
type Deps struct {
	DB            *gorm.DB
	Poller        *services.OrderPoller
	Dispatcher    *services.Dispatcher
	LateThreshold int // minutos
	RefreshSecs   int
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())

	mutLimiter := middlewares.NewMutationRateLimiter(10, 20)

	r.Static("/static", "./static")

	boardCtrl := controllers.NewBoardController(
		deps.Poller,
		deps.Dispatcher,
		time.Duration(deps.LateThreshold)*time.Minute,
		deps.RefreshSecs,
	)

	// Tablero
	r.GET("/", boardCtrl.GetCounterBoard)
	r.GET("/kitchen", boardCtrl.GetKitchenBoard)
	r.GET("/orders/:order_id/edit", boardCtrl.GetOrderEdit)

	board := r.Group("/board", mutLimiter.RateLimit())
	{
		board.POST("/orders/:order_id/entregado", boardCtrl.MarkDelivered)
		board.POST("/orders/:order_id/paid", boardCtrl.SetPaid)
	}

	// API embebida (modo standalone)
	if deps.DB != nil {
		orderCtrl := controllers.NewOrderController(deps.DB)
		promoCtrl := controllers.NewPromoController(deps.DB)

		r.GET("/api/orders", orderCtrl.GetAllOrders)
		r.PATCH("/api/orders/:order_id", orderCtrl.PatchOrder)
		r.GET("/api/promos", promoCtrl.GetAllPromos)

		forms := r.Group("/orders", mutLimiter.RateLimit())
		{
			forms.POST("", orderCtrl.CreateOrder)
			forms.POST("/:order_id/update", orderCtrl.UpdateOrder)
		}
	}

	return r
}
