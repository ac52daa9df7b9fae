package notify

import (
	"sync"
	"time"

	"staybook/internal/domain"

	"github.com/gorilla/websocket"
)

// Event is what a connected vendor receives when a booking on one of
// their hotels changes.
type Event struct {
	Type       string  `json:"type"`
	BookingID  int64   `json:"booking_id"`
	HotelID    int64   `json:"hotel_id,omitempty"`
	HotelName  string  `json:"hotel_name"`
	StartDate  string  `json:"start_date,omitempty"`
	EndDate    string  `json:"end_date,omitempty"`
	TotalPrice float64 `json:"total_price,omitempty"`
	SentAt     string  `json:"sent_at"`
}

// Hub holds one live websocket per vendor. A reconnect replaces the
// previous connection.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(vendorID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[vendorID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[vendorID] = conn
}

func (h *Hub) Unregister(vendorID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[vendorID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, vendorID)
	}
}

func (h *Hub) send(vendorID int64, event Event) bool {
	h.mutex.RLock()
	conn, exists := h.connections[vendorID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return false
	}

	if err := conn.WriteJSON(event); err != nil {
		h.Unregister(vendorID)
		return false
	}

	return true
}

// BookingCreated implements the booking module's event sink. An
// offline vendor simply misses the event; the bookings list is the
// source of truth.
func (h *Hub) BookingCreated(vendorID int64, b *domain.Booking, hotelName string) error {
	h.send(vendorID, Event{
		Type:       "booking_created",
		BookingID:  b.ID,
		HotelID:    b.HotelID,
		HotelName:  hotelName,
		StartDate:  b.StartDate.Format("2006-01-02"),
		EndDate:    b.EndDate.Format("2006-01-02"),
		TotalPrice: b.TotalPrice,
		SentAt:     time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}

func (h *Hub) BookingCancelled(vendorID, bookingID int64, hotelName string) error {
	h.send(vendorID, Event{
		Type:      "booking_cancelled",
		BookingID: bookingID,
		HotelName: hotelName,
		SentAt:    time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}

func (h *Hub) IsOnline(vendorID int64) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[vendorID]
	return exists
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for vendorID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, vendorID)
	}
}
