package realtime

import (
	"sync"

	"github.com/jhoicas/Restaurante-api/internal/monitoring"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// Domain categoría lógica de datos a la que un consumidor puede suscribirse.
type Domain string

const (
	DomainOrders    Domain = "orders"
	DomainKitchen   Domain = "kitchen"
	DomainMenu      Domain = "menu"
	DomainStock     Domain = "stock"
	DomainSales     Domain = "sales"
	DomainStaff     Domain = "staff"
	DomainCustomers Domain = "customers"
	DomainPayments  Domain = "payments"
)

// Domains los ocho dominios en orden estable.
func Domains() []Domain {
	return []Domain{
		DomainOrders, DomainKitchen, DomainMenu, DomainStock,
		DomainSales, DomainStaff, DomainCustomers, DomainPayments,
	}
}

// ParseDomain valida un nombre de dominio recibido de un cliente.
func ParseDomain(s string) (Domain, bool) {
	for _, d := range Domains() {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// Canales NOTIFY de PostgreSQL, uno por tabla lógica.
const (
	ChannelOrders      = "orders"
	ChannelKitchen     = "kitchen_tickets"
	ChannelMenu        = "menu_items"
	ChannelIngredients = "ingredients"
	ChannelSales       = "sales"
	ChannelStaff       = "staff"
	ChannelCustomers   = "customers"
	ChannelPayments    = "payments"
)

// Channels los canales que el source debe escuchar.
func Channels() []string {
	return []string{
		ChannelOrders, ChannelKitchen, ChannelMenu, ChannelIngredients,
		ChannelSales, ChannelStaff, ChannelCustomers, ChannelPayments,
	}
}

// fanout topología estática canal → dominios a notificar. Es dato, no flujo de
// control, para que el acoplamiento entre dominios sea testeable por sí solo.
// Un cambio en menu_items también notifica stock (la disponibilidad de la carta
// se deriva de filas de menú) y un cambio en ingredients notifica stock y menu
// (la disponibilidad por receta depende de los niveles de ingredientes).
var fanout = map[string][]Domain{
	ChannelOrders:      {DomainOrders},
	ChannelKitchen:     {DomainKitchen},
	ChannelMenu:        {DomainMenu, DomainStock},
	ChannelIngredients: {DomainStock, DomainMenu},
	ChannelSales:       {DomainSales},
	ChannelStaff:       {DomainStaff},
	ChannelCustomers:   {DomainCustomers},
	ChannelPayments:    {DomainPayments},
}

// Source canal de notificaciones que respalda al broker. Open se llama al
// registrarse el primer interesado; Close cuando no queda ninguno en ningún
// dominio (apertura y cierre son todo-o-nada entre dominios: el costo de un
// canal ocioso es menor que la apertura/cierre perezosa por dominio).
type Source interface {
	Open()
	Close()
	Connected() bool
}

// Broker multiplexa las notificaciones de cambio de las ocho tablas lógicas a
// N consumidores usando un solo canal por tabla. Se construye una vez en main
// y se inyecta; no hay estado global.
//
// Los callbacks se registran bajo una id de suscriptor: registrar la misma id
// dos veces en el mismo dominio es idempotente (una sola invocación por
// evento) y la baja es exacta por id. El callback no recibe payload: significa
// "algo cambió, refresca tu propia fuente de verdad".
type Broker struct {
	mu     sync.Mutex
	source Source
	open   bool
	subs   map[Domain]map[string]func()
	log    *logger.Logger
}

// NewBroker construye el broker sobre un Source.
func NewBroker(source Source, log *logger.Logger) *Broker {
	subs := make(map[Domain]map[string]func(), 8)
	for _, d := range Domains() {
		subs[d] = make(map[string]func())
	}
	return &Broker{source: source, subs: subs, log: log}
}

// Register añade el callback de un suscriptor a un dominio. El primer registro
// global abre el source (todos los canales juntos).
func (b *Broker) Register(d Domain, id string, fn func()) {
	b.mu.Lock()
	set, ok := b.subs[d]
	if !ok {
		b.mu.Unlock()
		return
	}
	set[id] = fn
	monitoring.RealtimeSubscribers.WithLabelValues(string(d)).Set(float64(len(set)))
	shouldOpen := !b.open
	if shouldOpen {
		b.open = true
	}
	b.mu.Unlock()

	if shouldOpen {
		b.source.Open()
	}
}

// Deregister quita el callback de un suscriptor de un dominio. Si tras la baja
// no queda ningún suscriptor en ningún dominio, se cierra el source.
func (b *Broker) Deregister(d Domain, id string) {
	b.mu.Lock()
	if set, ok := b.subs[d]; ok {
		delete(set, id)
		monitoring.RealtimeSubscribers.WithLabelValues(string(d)).Set(float64(len(set)))
	}
	shouldClose := b.open && b.empty()
	if shouldClose {
		b.open = false
	}
	b.mu.Unlock()

	if shouldClose {
		b.source.Close()
	}
}

// DeregisterAll da de baja una id de todos los dominios (desconexión de un
// cliente websocket).
func (b *Broker) DeregisterAll(id string) {
	b.mu.Lock()
	for d, set := range b.subs {
		delete(set, id)
		monitoring.RealtimeSubscribers.WithLabelValues(string(d)).Set(float64(len(set)))
	}
	shouldClose := b.open && b.empty()
	if shouldClose {
		b.open = false
	}
	b.mu.Unlock()

	if shouldClose {
		b.source.Close()
	}
}

// Dispatch procesa una notificación del canal dado: resuelve los dominios de
// la topología y invoca sus callbacks de forma síncrona, en orden no
// especificado. Canales desconocidos se ignoran con log.
func (b *Broker) Dispatch(channel string) {
	domains, ok := fanout[channel]
	if !ok {
		if b.log != nil {
			b.log.Warn().Str("channel", channel).Msg("notificación de canal desconocido")
		}
		return
	}

	b.mu.Lock()
	var fns []func()
	for _, d := range domains {
		set := b.subs[d]
		for _, fn := range set {
			fns = append(fns, fn)
		}
		monitoring.RealtimeEventsDispatched.WithLabelValues(string(d)).Inc()
	}
	b.mu.Unlock()

	// Invocación fuera del lock: un callback puede registrar o dar de baja.
	for _, fn := range fns {
		fn()
	}
}

// Connected estado del canal subyacente, para que los consumidores puedan
// mostrar una UI degradada cuando la sincronización está caída.
func (b *Broker) Connected() bool {
	b.mu.Lock()
	open := b.open
	b.mu.Unlock()
	return open && b.source.Connected()
}

// empty requiere b.mu tomado.
func (b *Broker) empty() bool {
	for _, set := range b.subs {
		if len(set) > 0 {
			return false
		}
	}
	return true
}
