package http

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/Restaurante-api/internal/application/realtime"
	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = (wsPongWait * 9) / 10
)

// wsCommand mensaje entrante del cliente.
type wsCommand struct {
	Action  string   `json:"action"` // subscribe | unsubscribe
	Domains []string `json:"domains"`
}

// wsEvent mensaje saliente: "algo cambió en este dominio, refresca tus datos".
type wsEvent struct {
	Domain    string `json:"domain,omitempty"`
	Connected *bool  `json:"connected,omitempty"`
}

// WSHandler puerta websocket del fan-out realtime: cada conexión es un
// suscriptor del broker con su propia id, y puede suscribirse y darse de baja
// de dominios en caliente. Los eventos no llevan payload.
type WSHandler struct {
	broker *realtime.Broker
	log    *logger.Logger
}

// NewWSHandler construye el handler.
func NewWSHandler(broker *realtime.Broker, log *logger.Logger) *WSHandler {
	return &WSHandler{broker: broker, log: log}
}

// Upgrade middleware que exige el upgrade websocket en la ruta.
func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Serve atiende una conexión websocket hasta que el cliente se desconecta.
func (h *WSHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		id := uuid.New().String()
		events := make(chan realtime.Domain, 32)
		done := make(chan struct{})

		defer func() {
			h.broker.DeregisterAll(id)
			close(done)
			_ = conn.Close()
		}()

		go h.writePump(conn, events, done)

		// Estado inicial de la sincronización, para UI degradada.
		connected := h.broker.Connected()
		_ = conn.WriteJSON(wsEvent{Connected: &connected})

		conn.SetReadLimit(1024)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})

		for {
			var cmd wsCommand
			if err := conn.ReadJSON(&cmd); err != nil {
				return
			}
			for _, raw := range cmd.Domains {
				d, ok := realtime.ParseDomain(raw)
				if !ok {
					h.log.Warn().Str("domain", raw).Msg("suscripción a dominio desconocido")
					continue
				}
				switch cmd.Action {
				case "subscribe":
					domain := d
					// El callback no bloquea el Dispatch: si el buffer del
					// cliente está lleno, el evento se descarta (el cliente
					// refresca igual con el siguiente).
					h.broker.Register(domain, id, func() {
						select {
						case events <- domain:
						default:
						}
					})
				case "unsubscribe":
					h.broker.Deregister(d, id)
				}
			}
		}
	})
}

// writePump serializa todas las escrituras de la conexión: eventos del broker
// y pings de keep-alive.
func (h *WSHandler) writePump(conn *websocket.Conn, events <-chan realtime.Domain, done <-chan struct{}) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case d := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(wsEvent{Domain: string(d)}); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
