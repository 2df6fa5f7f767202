package app

import (
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/lxzan/gws"
	"go.uber.org/zap"
)

const (
	// WebSocketServerPingInterval keep-alive ping interval
	WebSocketServerPingInterval = 25 * time.Second
)

// Event is one push message to subscribed UI shells. Shells key on Type:
// "history-updated", "settings-updated", "notification".
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// WebsocketServerConfig hub configuration
type WebsocketServerConfig struct {
	GWSOption    gws.ServerOption
	PingInterval time.Duration
}

// WebsocketServer is a broadcast-only event hub. Shells connect,
// receive pushed events, and re-fetch state over the HTTP API; the hub
// accepts no commands over the socket.
type WebsocketServer struct {
	clients map[*gws.Conn]struct{}
	mu      sync.Mutex
	up      *gws.Upgrader
	config  *WebsocketServerConfig
	logger  *zap.Logger
}

func NewWebsocketServer(c WebsocketServerConfig, lg *zap.Logger) *WebsocketServer {
	if c.PingInterval == 0 {
		c.PingInterval = WebSocketServerPingInterval
	}
	if lg == nil {
		lg = zap.NewNop()
	}
	wss := &WebsocketServer{
		clients: make(map[*gws.Conn]struct{}),
		config:  &c,
		logger:  lg,
	}
	wss.up = gws.NewUpgrader(wss, &c.GWSOption)
	return wss
}

// Run returns the gin handler that upgrades a shell connection.
func (w *WebsocketServer) Run() gin.HandlerFunc {
	return func(c *gin.Context) {
		socket, err := w.up.Upgrade(c.Writer, c.Request)
		if err != nil {
			w.logger.Error("websocket upgrade failed", zap.Error(err))
			return
		}
		go socket.ReadLoop()
	}
}

// Broadcast pushes an event to every connected shell.
func (w *WebsocketServer) Broadcast(event Event) {
	payload, err := sonic.Marshal(event)
	if err != nil {
		w.logger.Error("websocket event marshal failed", zap.Error(err))
		return
	}

	b := gws.NewBroadcaster(gws.OpcodeText, payload)
	defer b.Close()

	w.mu.Lock()
	defer w.mu.Unlock()
	for conn := range w.clients {
		_ = b.Broadcast(conn)
	}
}

// ClientCount returns the number of connected shells.
func (w *WebsocketServer) ClientCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.clients)
}

// OnOpen implements gws.Event.
func (w *WebsocketServer) OnOpen(conn *gws.Conn) {
	w.mu.Lock()
	w.clients[conn] = struct{}{}
	w.mu.Unlock()
	w.logger.Debug("websocket client connected")
}

// OnClose implements gws.Event.
func (w *WebsocketServer) OnClose(conn *gws.Conn, err error) {
	w.mu.Lock()
	delete(w.clients, conn)
	w.mu.Unlock()
	w.logger.Debug("websocket client disconnected", zap.Error(err))
}

// OnPing implements gws.Event.
func (w *WebsocketServer) OnPing(conn *gws.Conn, payload []byte) {
	_ = conn.SetDeadline(time.Now().Add(w.config.PingInterval * 2))
	_ = conn.WritePong(payload)
}

// OnPong implements gws.Event.
func (w *WebsocketServer) OnPong(conn *gws.Conn, payload []byte) {}

// OnMessage implements gws.Event. Inbound messages are ignored; the hub
// is push-only.
func (w *WebsocketServer) OnMessage(conn *gws.Conn, message *gws.Message) {
	_ = message.Close()
}
