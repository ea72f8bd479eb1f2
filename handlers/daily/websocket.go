package daily

import (
	"net/http"

	"api/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// DailyWebSocket subscribes a client to daily-challenge change notifications
func DailyWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("WebSocket upgrade error")
		return
	}

	realtime.RegisterClient(realtime.DailyTopic, conn)
	defer func() {
		realtime.UnregisterClient(realtime.DailyTopic, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
