package postgres

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/application/realtime"
	"github.com/jhoicas/Restaurante-api/internal/monitoring"
	"github.com/jhoicas/Restaurante-api/pkg/config"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

var _ realtime.Source = (*Listener)(nil)

// Listener escucha los canales LISTEN/NOTIFY de PostgreSQL en una conexión
// dedicada (fuera del pool: WaitForNotification bloquea la conexión) y entrega
// cada notificación al handler registrado. Implementa realtime.Source: el
// broker lo abre con el primer suscriptor y lo cierra con el último.
type Listener struct {
	dsn     string
	cfg     config.RealtimeConfig
	handler func(channel string)
	log     *logger.Logger

	mu        sync.Mutex
	cancel    context.CancelFunc
	connected bool
}

// NewListener construye el listener. El handler se registra después con
// OnNotification (el broker necesita el source para construirse).
func NewListener(dsn string, cfg config.RealtimeConfig, log *logger.Logger) *Listener {
	return &Listener{dsn: dsn, cfg: cfg, log: log}
}

// OnNotification registra el destino de las notificaciones (normalmente
// broker.Dispatch). Debe llamarse antes de Open.
func (l *Listener) OnNotification(fn func(channel string)) {
	l.handler = fn
}

// Open arranca el loop de escucha en segundo plano. Idempotente.
func (l *Listener) Open() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	go l.run(ctx)
}

// Close detiene el loop y cierra la conexión dedicada. Idempotente.
func (l *Listener) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel == nil {
		return
	}
	l.cancel()
	l.cancel = nil
}

// Connected indica si la conexión de escucha está viva en este momento.
func (l *Listener) Connected() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.connected
}

func (l *Listener) setConnected(v bool) {
	l.mu.Lock()
	l.connected = v
	l.mu.Unlock()
	if v {
		monitoring.RealtimeConnected.Set(1)
	} else {
		monitoring.RealtimeConnected.Set(0)
	}
}

// run mantiene la conexión de escucha con reconexión y backoff exponencial.
func (l *Listener) run(ctx context.Context) {
	backoff := time.Duration(l.cfg.RetrySeconds) * time.Second
	maxBackoff := time.Duration(l.cfg.MaxRetrySeconds) * time.Second

	for {
		if ctx.Err() != nil {
			return
		}
		err := l.listen(ctx)
		l.setConnected(false)
		if ctx.Err() != nil {
			return
		}
		l.log.Warn().Err(err).Dur("retry_in", backoff).Msg("listener desconectado, reintentando")

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

// listen abre la conexión dedicada, suscribe todos los canales y despacha
// notificaciones hasta que la conexión falle o el contexto se cancele.
func (l *Listener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close(context.Background()) }()

	for _, ch := range realtime.Channels() {
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
			return err
		}
	}
	l.setConnected(true)
	l.log.Info().Msg("listener conectado")

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		if l.handler != nil {
			l.handler(n.Channel)
		}
	}
}
