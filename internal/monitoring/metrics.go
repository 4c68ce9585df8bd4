package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas Prometheus de la aplicación. Se registran en el registry por
// defecto y se exponen en /metrics.
var (
	// RealtimeEventsDispatched eventos de cambio despachados por dominio.
	RealtimeEventsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "restopos",
		Subsystem: "realtime",
		Name:      "events_dispatched_total",
		Help:      "Notificaciones de cambio despachadas a suscriptores, por dominio.",
	}, []string{"domain"})

	// RealtimeSubscribers suscriptores activos por dominio.
	RealtimeSubscribers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "restopos",
		Subsystem: "realtime",
		Name:      "subscribers",
		Help:      "Callbacks registrados por dominio.",
	}, []string{"domain"})

	// RealtimeConnected 1 si el listener LISTEN/NOTIFY está conectado.
	RealtimeConnected = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "restopos",
		Subsystem: "realtime",
		Name:      "connected",
		Help:      "Estado del canal de notificaciones: 1 conectado, 0 caído.",
	})

	// OrdersCreated órdenes creadas.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "restopos",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Órdenes creadas.",
	})

	// ReordersTriggered reórdenes disparadas, por origen (manual | auto).
	ReordersTriggered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "restopos",
		Subsystem: "inventory",
		Name:      "reorders_total",
		Help:      "Reórdenes disparadas, por origen.",
	}, []string{"source"})
)
