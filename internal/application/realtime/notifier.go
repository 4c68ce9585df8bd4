package realtime

import "context"

// Notifier publica una notificación de cambio en un canal lógico después de
// una mutación confirmada, para que todas las instancias de la aplicación
// (incluida la que escribió) disparen su fan-out. El payload es irrelevante:
// los consumidores refrescan su propia fuente de verdad.
type Notifier interface {
	Notify(ctx context.Context, channel string)
}

// NopNotifier descarta las notificaciones. Útil en tests.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, string) {}
