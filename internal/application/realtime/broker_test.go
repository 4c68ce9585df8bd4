package realtime_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Restaurante-api/internal/application/realtime"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// fakeSource registra aperturas y cierres para verificar el ciclo de vida.
type fakeSource struct {
	mu     sync.Mutex
	opens  int
	closes int
	conn   bool
}

func (f *fakeSource) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opens++
	f.conn = true
}

func (f *fakeSource) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closes++
	f.conn = false
}

func (f *fakeSource) Connected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.conn
}

func newBroker() (*realtime.Broker, *fakeSource) {
	src := &fakeSource{}
	return realtime.NewBroker(src, logger.Nop()), src
}

// TestBroker_RegistroIdempotente: registrar la misma id dos veces bajo el mismo
// dominio y despachar un evento invoca el callback exactamente una vez.
func TestBroker_RegistroIdempotente(t *testing.T) {
	b, _ := newBroker()

	calls := 0
	fn := func() { calls++ }
	b.Register(realtime.DomainOrders, "consumer-1", fn)
	b.Register(realtime.DomainOrders, "consumer-1", fn)

	b.Dispatch(realtime.ChannelOrders)
	assert.Equal(t, 1, calls)
}

// TestBroker_AperturaPerezosa: el source se abre con el primer registro (una
// sola vez) y no antes.
func TestBroker_AperturaPerezosa(t *testing.T) {
	b, src := newBroker()
	assert.Equal(t, 0, src.opens)

	b.Register(realtime.DomainStock, "a", func() {})
	b.Register(realtime.DomainMenu, "b", func() {})
	assert.Equal(t, 1, src.opens, "todos los canales se abren juntos en el primer registro")
}

// TestBroker_CierreTotal: tras dar de baja el último callback de todos los
// dominios el source se cierra y un evento posterior no invoca nada.
func TestBroker_CierreTotal(t *testing.T) {
	b, src := newBroker()

	calls := 0
	b.Register(realtime.DomainOrders, "a", func() { calls++ })
	b.Register(realtime.DomainStock, "b", func() { calls++ })

	b.Deregister(realtime.DomainOrders, "a")
	assert.Equal(t, 0, src.closes, "quedan suscriptores en otro dominio: no cierra")

	b.Deregister(realtime.DomainStock, "b")
	assert.Equal(t, 1, src.closes)

	b.Dispatch(realtime.ChannelOrders)
	b.Dispatch(realtime.ChannelIngredients)
	assert.Equal(t, 0, calls)
}

// TestBroker_TopologiaCruzada: un evento de ingredients notifica a los
// suscriptores de stock Y de menu; un evento de menu_items notifica a menu Y
// stock; orders no se entera de ninguno de los dos.
func TestBroker_TopologiaCruzada(t *testing.T) {
	b, _ := newBroker()

	var stock, menu, orders int
	b.Register(realtime.DomainStock, "s", func() { stock++ })
	b.Register(realtime.DomainMenu, "m", func() { menu++ })
	b.Register(realtime.DomainOrders, "o", func() { orders++ })

	b.Dispatch(realtime.ChannelIngredients)
	assert.Equal(t, 1, stock)
	assert.Equal(t, 1, menu)
	assert.Equal(t, 0, orders)

	b.Dispatch(realtime.ChannelMenu)
	assert.Equal(t, 2, stock)
	assert.Equal(t, 2, menu)
	assert.Equal(t, 0, orders)
}

// TestBroker_BajaExacta: dar de baja una id no afecta a otros suscriptores del
// mismo dominio.
func TestBroker_BajaExacta(t *testing.T) {
	b, _ := newBroker()

	var a, c int
	b.Register(realtime.DomainCustomers, "a", func() { a++ })
	b.Register(realtime.DomainCustomers, "c", func() { c++ })
	b.Deregister(realtime.DomainCustomers, "a")

	b.Dispatch(realtime.ChannelCustomers)
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, c)
}

// TestBroker_DeregisterAll: la baja global quita la id de todos los dominios y
// cierra el source si era la última.
func TestBroker_DeregisterAll(t *testing.T) {
	b, src := newBroker()

	calls := 0
	b.Register(realtime.DomainOrders, "ws-1", func() { calls++ })
	b.Register(realtime.DomainKitchen, "ws-1", func() { calls++ })
	b.DeregisterAll("ws-1")

	assert.Equal(t, 1, src.closes)
	b.Dispatch(realtime.ChannelOrders)
	b.Dispatch(realtime.ChannelKitchen)
	assert.Equal(t, 0, calls)
}

// TestBroker_CanalDesconocido: una notificación de un canal fuera de la
// topología se ignora sin pánico.
func TestBroker_CanalDesconocido(t *testing.T) {
	b, _ := newBroker()
	b.Register(realtime.DomainOrders, "a", func() { t.Fatal("no debe invocarse") })
	assert.NotPanics(t, func() { b.Dispatch("tabla_rara") })
}

// TestBroker_CallbackPuedeDarseDeBaja: un callback puede darse de baja a sí
// mismo durante el despacho sin deadlock (la invocación ocurre fuera del lock).
func TestBroker_CallbackPuedeDarseDeBaja(t *testing.T) {
	b, _ := newBroker()

	var calls int
	b.Register(realtime.DomainSales, "once", func() {
		calls++
		b.Deregister(realtime.DomainSales, "once")
	})

	b.Dispatch(realtime.ChannelSales)
	b.Dispatch(realtime.ChannelSales)
	assert.Equal(t, 1, calls)
}

// TestBroker_Connected: refleja el estado del source solo mientras hay
// suscriptores.
func TestBroker_Connected(t *testing.T) {
	b, _ := newBroker()
	assert.False(t, b.Connected())

	b.Register(realtime.DomainStaff, "a", func() {})
	assert.True(t, b.Connected())

	b.Deregister(realtime.DomainStaff, "a")
	assert.False(t, b.Connected())
}

// TestBroker_ReregistroTrasCierre: después de un cierre total, un registro
// nuevo reabre el source.
func TestBroker_ReregistroTrasCierre(t *testing.T) {
	b, src := newBroker()

	b.Register(realtime.DomainOrders, "a", func() {})
	b.Deregister(realtime.DomainOrders, "a")
	require.Equal(t, 1, src.closes)

	calls := 0
	b.Register(realtime.DomainOrders, "a", func() { calls++ })
	assert.Equal(t, 2, src.opens)

	b.Dispatch(realtime.ChannelOrders)
	assert.Equal(t, 1, calls)
}

// TestParseDomain: acepta los ocho dominios y rechaza el resto.
func TestParseDomain(t *testing.T) {
	for _, d := range realtime.Domains() {
		got, ok := realtime.ParseDomain(string(d))
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := realtime.ParseDomain("facturas")
	assert.False(t, ok)
}
