package comments

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

// CommentWebSocket subscribes a client to change notifications for one
// submission's comment thread. Viewers refetch on notification; no payload
// state is pushed.
func CommentWebSocket(c *gin.Context) {
	// Wildcard so the submission id's slashes survive routing
	submissionID := c.Param("submissionId")
	if len(submissionID) > 0 && submissionID[0] == '/' {
		submissionID = submissionID[1:]
	}
	if submissionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "submission id is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("WebSocket upgrade error")
		return
	}

	topic := realtime.CommentTopic(submissionID)
	realtime.RegisterClient(topic, conn)
	defer func() {
		realtime.UnregisterClient(topic, conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
