package live

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/thatcatcamp/colorstudio/internal/palette"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     sameOrigin,
}

// sameOrigin lets pages served by this host subscribe; clients that send no
// Origin (the CLI, scripts) are not browsers and pass
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

// Message types sent to clients
const (
	TypePalette = "palette"
	TypeNotice  = "notice"
)

// Message is the JSON envelope sent to clients
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub pushes palette snapshots and transient notices to websocket clients.
// It implements palette.Renderer.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
	current func() palette.Snapshot
}

// Client is one connected websocket
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a hub. current supplies the snapshot sent on connect.
func NewHub(current func() palette.Snapshot) *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
		current: current,
	}
}

// Render implements palette.Renderer
func (h *Hub) Render(snap palette.Snapshot) {
	h.publish(Message{Type: TypePalette, Data: palette.NewView(snap)})
}

// Notify sends a transient notice such as "Palette saved"
func (h *Hub) Notify(text string) {
	h.publish(Message{Type: TypeNotice, Data: text})
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) publish(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Failed to marshal %s message: %v", msg.Type, err)
		return
	}
	h.broadcast(data)
}

// broadcast never blocks; clients whose buffer is full are dropped.
func (h *Hub) broadcast(data []byte) {
	var slow []*Client

	h.mu.RLock()
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.removeClient(client)
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	h.mu.Unlock()
}

// ServeWS handles websocket connection requests
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 64),
	}

	// Queue the current palette before the client becomes visible to
	// broadcasts so it always arrives first.
	if h.current != nil {
		if data, err := json.Marshal(Message{Type: TypePalette, Data: palette.NewView(h.current())}); err == nil {
			client.send <- data
		}
	}

	h.addClient(client)

	go client.writePump()
	go client.readPump()
}

// readPump only detects disconnects; clients do not send commands.
func (c *Client) readPump() {
	defer c.hub.removeClient(c)

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
