package http

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"cardioscreen/db"
	"cardioscreen/logger"
)

// AssessmentEvent 推送给订阅者的评估事件
type AssessmentEvent struct {
	Type       string        `json:"type"`
	Timestamp  time.Time     `json:"timestamp"`
	Assessment db.Assessment `json:"assessment"`
}

// Hub WebSocket中心：向所有已连接客户端广播完成的评估
type Hub struct {
	clients    map[*wsClient]bool
	broadcast  chan []byte
	register   chan *wsClient
	unregister chan *wsClient
	upgrader   websocket.Upgrader
	once       sync.Once
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

var assessmentHub = newHub()

func newHub() *Hub {
	return &Hub{
		clients:    make(map[*wsClient]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (h *Hub) start() {
	h.once.Do(func() {
		go h.run()
	})
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			logger.S().Debugw("ws client connected", "total", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			logger.S().Debugw("ws client disconnected", "total", len(h.clients))

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// 客户端写入阻塞，断开
					delete(h.clients, client)
					close(client.send)
				}
			}
		}
	}
}

func broadcastAssessment(assessment db.Assessment) {
	event := AssessmentEvent{
		Type:       "assessment_completed",
		Timestamp:  time.Now().UTC(),
		Assessment: assessment,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		logger.S().Warnw("failed to encode assessment event", "error", err)
		return
	}
	assessmentHub.start()
	select {
	case assessmentHub.broadcast <- payload:
	default:
		logger.S().Warn("assessment event dropped, broadcast queue full")
	}
}

func handleAssessmentSocket(w http.ResponseWriter, r *http.Request) {
	assessmentHub.start()

	conn, err := assessmentHub.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.S().Warnw("ws upgrade failed", "error", err)
		return
	}

	client := &wsClient{conn: conn, send: make(chan []byte, 16)}
	assessmentHub.register <- client

	go client.writeLoop()
	go client.readLoop()
}

func (c *wsClient) writeLoop() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *wsClient) readLoop() {
	defer func() {
		assessmentHub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
