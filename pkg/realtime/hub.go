package realtime

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"github.com/stevedicko99-pixel/Aircraft-PMP/pkg/common"
)

const (
	ActionSubscribeAircraft   = "subscribe:aircraft"
	ActionUnsubscribeAircraft = "unsubscribe:aircraft"

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// Message is the envelope for every outbound event.
type Message struct {
	Event     string    `json:"event"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// ControlMessage is an inbound subscription command from a session.
type ControlMessage struct {
	Action     string `json:"action"`
	AircraftID string `json:"aircraft_id"`
}

// Client is one connected session and the set of aircraft channels it
// joined. Disconnecting drops all subscriptions.
type Client struct {
	ID   string
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte

	rooms map[string]bool
	mu    sync.RWMutex
}

func (c *Client) subscribed(aircraftID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rooms[aircraftID]
}

// Hub owns the subscription registry: which sessions are in which
// aircraft channel. It is the in-process replacement for ambient
// socket rooms; publishers receive it explicitly.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	logger := common.GetLoggerWith(common.LoggerNameRealtimeHub)

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			logger.Info("Client connected", zap.String("client_id", client.ID))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			logger.Info("Client disconnected", zap.String("client_id", client.ID))
		}
	}
}

func (h *Hub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "failed to upgrade connection"})
		return
	}

	client := &Client{
		ID:    uuid.NewString(),
		Hub:   h,
		Conn:  conn,
		Send:  make(chan []byte, 256),
		rooms: make(map[string]bool),
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}

// PublishToAircraft delivers an event to sessions subscribed to the
// aircraft's channel only. A session with a full send buffer is
// skipped: delivery is at-most-once, best-effort.
func (h *Hub) PublishToAircraft(aircraftID string, event string, payload any) error {
	data, err := json.Marshal(&Message{Event: event, Data: payload, Timestamp: time.Now()})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event, err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if !client.subscribed(aircraftID) {
			continue
		}
		select {
		case client.Send <- data:
		default:
			common.GetLoggerWith(common.LoggerNameRealtimeHub).Warn(
				"Dropped event for slow client",
				zap.String("client_id", client.ID), zap.String("event", event))
		}
	}
	return nil
}

// PublishAll delivers an event to every connected session regardless of
// subscriptions.
func (h *Hub) PublishAll(event string, payload any) error {
	data, err := json.Marshal(&Message{Event: event, Data: payload, Timestamp: time.Now()})
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event, err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			common.GetLoggerWith(common.LoggerNameRealtimeHub).Warn(
				"Dropped event for slow client",
				zap.String("client_id", client.ID), zap.String("event", event))
		}
	}
	return nil
}

func (h *Hub) ConnectedClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(512)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	logger := common.GetLoggerWith(common.LoggerNameRealtimeHub)

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Read failed", zap.String("client_id", c.ID), zap.Error(err))
			}
			break
		}

		var control ControlMessage
		if err := json.Unmarshal(message, &control); err == nil {
			c.handleControl(&control)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleControl(control *ControlMessage) {
	logger := common.GetLoggerWith(common.LoggerNameRealtimeHub)

	switch control.Action {
	case ActionSubscribeAircraft:
		if control.AircraftID == "" {
			return
		}
		c.mu.Lock()
		c.rooms[control.AircraftID] = true
		c.mu.Unlock()
		logger.Info("Client subscribed to aircraft",
			zap.String("client_id", c.ID), zap.String("aircraft_id", control.AircraftID))

	case ActionUnsubscribeAircraft:
		c.mu.Lock()
		delete(c.rooms, control.AircraftID)
		c.mu.Unlock()
		logger.Info("Client unsubscribed from aircraft",
			zap.String("client_id", c.ID), zap.String("aircraft_id", control.AircraftID))

	default:
		return
	}

	ack, _ := json.Marshal(&Message{
		Event:     control.Action + ":ack",
		Data:      control.AircraftID,
		Timestamp: time.Now(),
	})
	select {
	case c.Send <- ack:
	default:
	}
}
