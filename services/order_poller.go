package services

import (
	"context"
	"sync"
	"time"

	"github.com/cvidalr/sushi-mostrador/client"
	"github.com/cvidalr/sushi-mostrador/models"
	"github.com/cvidalr/sushi-mostrador/utils"
)

// Snapshot es la lista de pedidos actualmente mostrada. La escribe
// solo el poller al completar un fetch; el resto del mundo la lee.
type Snapshot struct {
	Orders    []models.Order
	FetchedAt time.Time
	Seq       uint64
}

// OrderPoller trae la lista completa de pedidos cada Interval y cuando
// un dispatch lo fuerza. Nunca hay dos fetch en vuelo: el loop corre
// los ciclos en serie y los ticks que llegan durante un fetch se pierden.
type OrderPoller struct {
	Client   *client.Client
	Interval time.Duration
	StopChan chan struct{}

	// refreshCh con capacidad 1: un Refresh durante un fetch deja
	// exactamente un ciclo extra pendiente.
	refreshCh chan struct{}

	mu          sync.RWMutex
	snapshot    Snapshot
	promos      []models.Promo
	seq         uint64
	lastApplied uint64

	stopOnce sync.Once
}

func NewOrderPoller(c *client.Client, interval time.Duration) *OrderPoller {
	return &OrderPoller{
		Client:    c,
		Interval:  interval,
		StopChan:  make(chan struct{}),
		refreshCh: make(chan struct{}, 1),
	}
}

func (p *OrderPoller) Start() {
	go func() {
		ticker := time.NewTicker(p.Interval)
		defer ticker.Stop()

		p.loadPromos()
		p.Poll(context.Background())

		for {
			select {
			case <-ticker.C:
				p.Poll(context.Background())
			case <-p.refreshCh:
				p.Poll(context.Background())
			case <-p.StopChan:
				return
			}
		}
	}()
}

func (p *OrderPoller) Stop() {
	p.stopOnce.Do(func() { close(p.StopChan) })
}

// Refresh pide un ciclo inmediato sin esperar el timer. No bloquea:
// si ya hay uno pendiente, con ese basta.
func (p *OrderPoller) Refresh() {
	select {
	case p.refreshCh <- struct{}{}:
	default:
	}
}

// Poll ejecuta un ciclo completo: fetch y aplicar. Cada fetch lleva un
// numero de secuencia; una respuesta vieja jamas pisa una mas nueva.
func (p *OrderPoller) Poll(ctx context.Context) {
	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.mu.Unlock()

	orders, err := p.Client.ListOrders(ctx)
	if err != nil {
		// La vista queda con el ultimo render bueno hasta el proximo tick.
		utils.ErrorLogger.Printf("poller: fetch de pedidos fallo: %v", err)
		return
	}
	p.apply(seq, orders)
}

func (p *OrderPoller) apply(seq uint64, orders []models.Order) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if seq <= p.lastApplied {
		utils.InfoLogger.Printf("poller: respuesta atrasada descartada (seq %d <= %d)", seq, p.lastApplied)
		return
	}
	p.lastApplied = seq
	p.snapshot = Snapshot{
		Orders:    orders,
		FetchedAt: time.Now(),
		Seq:       seq,
	}
}

// Snapshot devuelve una copia de la lista mostrada.
func (p *OrderPoller) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := p.snapshot
	out.Orders = make([]models.Order, len(p.snapshot.Orders))
	copy(out.Orders, p.snapshot.Orders)
	return out
}

// FindOrder busca un pedido en el snapshot actual.
func (p *OrderPoller) FindOrder(id uint) (models.Order, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, o := range p.snapshot.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// Promos devuelve la lista cacheada para los formularios.
func (p *OrderPoller) Promos() []models.Promo {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]models.Promo, len(p.promos))
	copy(out, p.promos)
	return out
}

// RefreshPromos recarga las promos a pedido.
func (p *OrderPoller) RefreshPromos() {
	p.loadPromos()
}

func (p *OrderPoller) loadPromos() {
	promos, err := p.Client.ListPromos(context.Background())
	if err != nil {
		utils.ErrorLogger.Printf("poller: fetch de promos fallo: %v", err)
		return
	}
	p.mu.Lock()
	p.promos = promos
	p.mu.Unlock()
}
