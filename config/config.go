package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cvidalr/sushi-mostrador/utils"
)

type Config struct {
	Port string
	// OrdersAPIURL vacio = modo standalone: se monta la API embebida
	// y el tablero le pega por loopback.
	OrdersAPIURL string
	DBDriver     string // sqlite | mysql
	DBDSN        string
	PollSeconds  int
	LateMinutes  int
	GinMode      string
}

func Load() Config {
	cfg := Config{
		Port:         getenv("PORT", "8080"),
		OrdersAPIURL: os.Getenv("ORDERS_API_URL"),
		DBDriver:     getenv("DB_DRIVER", "sqlite"),
		DBDSN:        getenv("DB_DSN", "mostrador.db"),
		PollSeconds:  utils.ToInt(getenv("POLL_INTERVAL_SECONDS", "4")),
		LateMinutes:  utils.ToInt(getenv("LATE_THRESHOLD_MINUTES", "60")),
		GinMode:      os.Getenv("GIN_MODE"),
	}
	if cfg.PollSeconds <= 0 {
		cfg.PollSeconds = 4
	}
	if cfg.LateMinutes <= 0 {
		cfg.LateMinutes = 60
	}
	return cfg
}

// Standalone indica si esta instancia sirve su propia API de pedidos.
func (c Config) Standalone() bool {
	return c.OrdersAPIURL == ""
}

// APIBase resuelve la base que usa el poller.
func (c Config) APIBase() string {
	if c.Standalone() {
		return "http://127.0.0.1:" + c.Port
	}
	return c.OrdersAPIURL
}

func InitDB(c Config) (*gorm.DB, error) {
	switch c.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(c.DBDSN), &gorm.Config{})
	case "mysql":
		return gorm.Open(mysql.Open(c.DBDSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("DB_DRIVER desconocido: %q", c.DBDriver)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
