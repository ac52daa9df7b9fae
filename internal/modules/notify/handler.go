package notify

import (
	"log"
	"net/http"

	"staybook/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// browser origin checks happen at the CORS layer
		return true
	},
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// RegisterVendorRoutes expects the group to carry auth + the vendor
// role guard.
func (h *Handler) RegisterVendorRoutes(vendor *gin.RouterGroup) {
	vendor.GET("/ws", h.Connect)
}

// Connect upgrades to a websocket and streams booking events until the
// vendor disconnects. The feed is one-way; inbound frames are only
// read to detect the close.
func (h *Handler) Connect(c *gin.Context) {
	vendorID := c.GetInt64("account_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "UPGRADE_FAILED", "Failed to upgrade connection")
		return
	}

	h.hub.Register(vendorID, conn)
	log.Printf("notify: vendor connected vendor_id=%d", vendorID)

	go func() {
		defer h.hub.Unregister(vendorID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
