package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/eddiemorac-glitch/Digital-Paradise-sub003/internal/domain"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	pingInterval   = 30 * time.Second
	pongWait       = 60 * time.Second
	writeWait      = 10 * time.Second
	maxMessageSize = 8192
	sendBuffer     = 256
)

const (
	RoomPool  = "pool"
	RoomAdmin = "admin"
)

func MissionRoom(id uuid.UUID) string { return "mission_" + id.String() }
func OrderRoom(id uuid.UUID) string   { return "order_" + id.String() }

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LocationFunc handles inbound courier position reports received over the
// socket ("update_location" messages).
type LocationFunc func(ctx context.Context, missionID uuid.UUID, req domain.LocationUpdateRequest) error

type Client struct {
	ID     string
	UserID string
	Role   string

	conn  *websocket.Conn
	send  chan []byte
	rooms map[string]struct{}
	hub   *Hub
}

// Hub fans mission and location events out to subscribed sockets. Delivery
// is best-effort and at-most-once: a full send buffer drops the client, and
// subscribers recover correct state by re-reading the mission store.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	rooms   map[string]map[string]*Client

	register   chan *Client
	unregister chan *Client

	locationFunc LocationFunc
	logger       *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		rooms:      make(map[string]map[string]*Client),
		register:   make(chan *Client, 16),
		unregister: make(chan *Client, 16),
		logger:     logger,
	}
}

func (h *Hub) SetLocationFunc(fn LocationFunc) {
	h.locationFunc = fn
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("websocket hub stopped", slog.String("reason", ctx.Err().Error()))
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.logger.Info("ws client registered",
				slog.String("client_id", client.ID),
				slog.String("user_id", client.UserID),
				slog.String("role", client.Role),
			)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				h.dropLocked(client)
			}
			h.mu.Unlock()
			h.logger.Info("ws client unregistered", slog.String("client_id", client.ID))
		}
	}
}

// dropLocked removes a client from every room and closes its send channel.
// Caller holds h.mu.
func (h *Hub) dropLocked(client *Client) {
	delete(h.clients, client.ID)
	for room := range client.rooms {
		if members, ok := h.rooms[room]; ok {
			delete(members, client.ID)
			if len(members) == 0 {
				delete(h.rooms, room)
			}
		}
	}
	close(client.send)
}

func (h *Hub) join(client *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client.ID]; !ok {
		return
	}
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[string]*Client)
	}
	h.rooms[room][client.ID] = client
	client.rooms[room] = struct{}{}
}

// ToRoom sends payload to every member of room. Send failures drop the
// client rather than block the caller.
func (h *Hub) ToRoom(room string, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("ws marshal failed", slog.String("room", room), slog.Any("error", err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, client := range h.rooms[room] {
		select {
		case client.send <- msg:
		default:
			h.dropLocked(client)
			h.logger.Warn("ws client dropped, send buffer full", slog.String("client_id", client.ID))
		}
	}
}

// PublishMission routes a mission event to the rooms that care about it.
func (h *Hub) PublishMission(ctx context.Context, ev domain.MissionEvent) {
	switch ev.Kind {
	case domain.EventMissionAvailable:
		h.ToRoom(RoomPool, ev)
	case domain.EventMissionClaimed:
		h.ToRoom(RoomPool, ev)
		h.ToRoom(MissionRoom(ev.Mission.ID), ev)
	default:
		h.ToRoom(MissionRoom(ev.Mission.ID), ev)
		if ev.Mission.OrderID != nil {
			h.ToRoom(OrderRoom(*ev.Mission.OrderID), ev)
		}
	}
	h.ToRoom(RoomAdmin, ev)
}

func (h *Hub) PublishLocation(ctx context.Context, ev domain.LocationEvent) {
	payload := map[string]any{"type": domain.EventDriverLocation, "data": ev}
	h.ToRoom(MissionRoom(ev.MissionID), payload)
	if ev.OrderID != nil {
		h.ToRoom(OrderRoom(*ev.OrderID), payload)
	}
	h.ToRoom(RoomAdmin, payload)
}

// ServeWS upgrades the request. Identity comes from query params; the auth
// proper lives in the gateway in front of this service.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("ws upgrade failed", slog.Any("error", err))
		return
	}

	client := &Client{
		ID:     fmt.Sprintf("ws_%s", uuid.New().String()),
		UserID: r.URL.Query().Get("user_id"),
		Role:   r.URL.Query().Get("role"),
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		rooms:  make(map[string]struct{}),
		hub:    h,
	}

	h.register <- client

	_ = conn.WriteJSON(map[string]string{"status": "connected", "client_id": client.ID})

	go client.writePump()
	go client.readPump()
}

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// readPump owns the inbound half of the connection. Its context outlives the
// upgrade request (net/http cancels r.Context() as soon as ServeWS returns)
// and is torn down with the connection itself.
func (c *Client) readPump() {
	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Error("ws read error", slog.String("client_id", c.ID), slog.Any("error", err))
			}
			return
		}

		var msg inboundMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.hub.logger.Warn("ws bad message", slog.String("client_id", c.ID), slog.Any("error", err))
			continue
		}

		c.hub.handleMessage(ctx, c, msg)
	}
}

func (h *Hub) handleMessage(ctx context.Context, c *Client, msg inboundMessage) {
	switch msg.Type {
	case "join_pool":
		h.join(c, RoomPool)

	case "join_admin":
		if c.Role == "admin" {
			h.join(c, RoomAdmin)
		}

	case "track_mission":
		var data struct {
			MissionID uuid.UUID `json:"mission_id"`
		}
		if err := json.Unmarshal(msg.Data, &data); err != nil || data.MissionID == uuid.Nil {
			return
		}
		h.join(c, MissionRoom(data.MissionID))

	case "track_order":
		var data struct {
			OrderID uuid.UUID `json:"order_id"`
		}
		if err := json.Unmarshal(msg.Data, &data); err != nil || data.OrderID == uuid.Nil {
			return
		}
		h.join(c, OrderRoom(data.OrderID))

	case "update_location":
		if h.locationFunc == nil {
			return
		}
		var data struct {
			MissionID uuid.UUID `json:"mission_id"`
			Lat       float64   `json:"lat"`
			Lng       float64   `json:"lng"`
		}
		if err := json.Unmarshal(msg.Data, &data); err != nil || data.MissionID == uuid.Nil {
			return
		}
		if err := h.locationFunc(ctx, data.MissionID, domain.LocationUpdateRequest{Lat: data.Lat, Lng: data.Lng}); err != nil {
			h.logger.Warn("ws location update rejected",
				slog.String("client_id", c.ID),
				slog.String("mission_id", data.MissionID.String()),
				slog.Any("error", err),
			)
		}

	default:
		h.logger.Debug("ws unknown message type", slog.String("type", msg.Type))
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
