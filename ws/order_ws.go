// Package ws menyediakan feed order realtime untuk dashboard admin.
package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"kantin-backend/entity"
	"kantin-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderEvent adalah payload yang dikirim ke setiap client saat ada order baru.
type OrderEvent struct {
	Event string        `json:"event"`
	Order *entity.Order `json:"order"`
	At    time.Time     `json:"at"`
}

type OrderHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan OrderEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// PublishOrder memenuhi services.OrderPublisher. Non-blocking: kalau tidak
// ada yang mendengarkan, event dibuang.
func (h *OrderHub) PublishOrder(o *entity.Order) {
	ev := OrderEvent{Event: "order_created", Order: o, At: time.Now()}
	select {
	case h.broadcast <- ev:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: GET /ws/orders (JWT role admin lewat middleware).
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	log.Printf("ws: user %d (%s) connected to order feed", utils.CurrentUserID(c), utils.CurrentRole(c))
	h.register <- conn

	// Client tidak mengirim apa-apa; loop baca hanya untuk mendeteksi close.
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
