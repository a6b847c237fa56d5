package ws

import (
	"net/http"
	"sync"

	"github.com/VanThinh512/Ordering-Food-Website/entity"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// OrderFeed streams order status changes to subscribed staff dashboards.
type OrderFeed struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan StatusEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

type StatusEvent struct {
	OrderID       uint                 `json:"orderId"`
	Code          string               `json:"code"`
	Status        entity.OrderStatus   `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
	TotalAmount   int64                `json:"totalAmount"`
}

func NewOrderFeed() *OrderFeed {
	return &OrderFeed{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan StatusEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run คอยฟัง register/unregister/broadcast ตลอดเวลา
func (f *OrderFeed) Run() {
	for {
		select {
		case conn := <-f.register:
			f.mu.Lock()
			f.clients[conn] = true
			f.mu.Unlock()

		case conn := <-f.unregister:
			f.mu.Lock()
			if _, ok := f.clients[conn]; ok {
				delete(f.clients, conn)
				conn.Close()
			}
			f.mu.Unlock()

		case ev := <-f.broadcast:
			f.mu.Lock()
			for conn := range f.clients {
				if err := conn.WriteJSON(ev); err != nil {
					logrus.WithError(err).Warn("ws write error")
					conn.Close()
					delete(f.clients, conn)
				}
			}
			f.mu.Unlock()
		}
	}
}

// PublishOrderStatus implements services.StatusPublisher. Dropping the
// event when the buffer is full keeps the workflow from blocking.
func (f *OrderFeed) PublishOrderStatus(o *entity.Order) {
	ev := StatusEvent{
		OrderID:       o.ID,
		Code:          o.Code,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		TotalAmount:   o.TotalAmount,
	}
	select {
	case f.broadcast <- ev:
	default:
		logrus.WithField("orderId", o.ID).Warn("order feed buffer full, event dropped")
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders (staff/admin, ผ่าน AuthMiddleware แล้ว)
func (f *OrderFeed) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logrus.WithError(err).Warn("ws upgrade error")
		return
	}

	f.register <- conn
	go f.drain(conn)
}

// drain keeps reading until the peer goes away, then unregisters.
func (f *OrderFeed) drain(conn *websocket.Conn) {
	defer func() { f.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
