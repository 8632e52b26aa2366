// Package websocket pushes live marketplace events (new listings, status
// changes, incoming orders) to connected clients.
package websocket

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Lucky-tech10/auto-mart-api/internal/middleware"
	pkglog "github.com/Lucky-tech10/auto-mart-api/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers connect cross-origin from the storefront
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Event is the wire format of a marketplace notification
type Event struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
	At      time.Time   `json:"at"`
}

// Client represents a single connected WebSocket client
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub maintains the set of active clients and broadcasts marketplace
// events to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	logger     pkglog.Logger
}

// NewHub initializes a hub; call Run in its own goroutine
func NewHub(logger pkglog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Notify implements the service layer's Notifier contract. A full
// broadcast queue drops the event rather than stalling a request.
func (h *Hub) Notify(event string, payload interface{}) {
	msg, err := json.Marshal(Event{Event: event, Payload: payload, At: time.Now()})
	if err != nil {
		h.logger.Error().Err(err).Str("event", event).Msg("marshal websocket event")
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn().Str("event", event).Msg("websocket broadcast queue full, event dropped")
	}
}

// Run is the dispatch loop for client churn and broadcasts
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Info().Int("clients", len(h.clients)).Msg("websocket client connected")
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info().Int("clients", len(h.clients)).Msg("websocket client disconnected")
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

func (c *Client) writePump() {
	defer func() {
		_ = c.conn.Close()
	}()
	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()
	for {
		// Clients only listen; reading drains control frames and detects closure
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

// ServeWs upgrades an authenticated request to a websocket subscription.
// The token travels as a query parameter because browsers cannot set
// headers on websocket handshakes.
func ServeWs(hub *Hub, c *gin.Context, secret []byte) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if _, err := middleware.ParseToken(tokenString, secret); err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		hub.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	client := &Client{hub: hub, conn: conn, send: make(chan []byte, 256)}
	hub.register <- client

	go client.writePump()
	go client.readPump()
}
