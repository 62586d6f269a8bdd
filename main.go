package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/cvidalr/sushi-mostrador/client"
	"github.com/cvidalr/sushi-mostrador/config"
	"github.com/cvidalr/sushi-mostrador/models"
	"github.com/cvidalr/sushi-mostrador/router"
	"github.com/cvidalr/sushi-mostrador/services"
	"github.com/cvidalr/sushi-mostrador/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no se encontro .env: %v", err)
	}
	utils.InitLogger()

	cfg := config.Load()
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var db *gorm.DB
	if cfg.Standalone() {
		var err error
		db, err = config.InitDB(cfg)
		if err != nil {
			utils.ErrorLogger.Fatalf("No se pudo abrir la base de datos: %v", err)
		}
		autoMigrate(db)
		seedPromos(db)
	} else {
		utils.InfoLogger.Printf("Modo tablero: API de pedidos en %s", cfg.OrdersAPIURL)
	}

	apiClient := client.New(cfg.APIBase())
	poller := services.NewOrderPoller(apiClient, time.Duration(cfg.PollSeconds)*time.Second)
	dispatcher := services.NewDispatcher(apiClient, poller)

	r := router.SetupRouter(router.Deps{
		DB:            db,
		Poller:        poller,
		Dispatcher:    dispatcher,
		LateThreshold: cfg.LateMinutes,
		RefreshSecs:   cfg.PollSeconds,
	})

	poller.Start()
	defer poller.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		utils.InfoLogger.Printf("Escuchando en puerto %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		poller.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
	utils.InfoLogger.Println("Mostrador detenido.")
}

func autoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&models.Order{},
		&models.Promo{},
	); err != nil {
		utils.ErrorLogger.Fatalf("AutoMigrate fallo: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate listo.")
}

// seedPromos deja la carta de promos basica si la tabla esta vacia.
func seedPromos(db *gorm.DB) {
	var count int64
	db.Model(&models.Promo{}).Count(&count)
	if count > 0 {
		return
	}
	promos := []models.Promo{
		{PromoNro: 1, Detalle: "35 piezas mixtas", Monto: 15990},
		{PromoNro: 2, Detalle: "45 piezas premium", Monto: 19990},
		{PromoNro: 3, Detalle: "60 piezas fiesta", Monto: 25990},
	}
	if err := db.Create(&promos).Error; err != nil {
		utils.ErrorLogger.Printf("No se pudieron sembrar promos: %v", err)
		return
	}
	utils.InfoLogger.Printf("Promos sembradas: %d", len(promos))
}
