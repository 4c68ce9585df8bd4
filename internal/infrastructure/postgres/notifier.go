package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Restaurante-api/internal/application/realtime"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

var _ realtime.Notifier = (*Notifier)(nil)

// Notifier publica notificaciones de cambio vía pg_notify. Al viajar por la
// base de datos, todas las instancias de la app (incluida la que escribió)
// reciben el aviso por su listener.
type Notifier struct {
	pool *pgxpool.Pool
	log  *logger.Logger
}

// NewNotifier construye el notifier con el pool.
func NewNotifier(pool *pgxpool.Pool, log *logger.Logger) *Notifier {
	return &Notifier{pool: pool, log: log}
}

// Notify publica en el canal. El payload va vacío: los consumidores refrescan
// su propia fuente de verdad. Un fallo aquí no debe tumbar la mutación ya
// confirmada, así que solo se loguea.
func (n *Notifier) Notify(ctx context.Context, channel string) {
	if _, err := n.pool.Exec(ctx, `SELECT pg_notify($1, '')`, channel); err != nil {
		n.log.Warn().Err(err).Str("channel", channel).Msg("pg_notify falló")
	}
}
