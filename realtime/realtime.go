package realtime

import (
	"sync"

	"api/metrics"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Topics are logical event streams clients subscribe to: one per submission's
// comment thread ("comments/<submissionId>") and one for daily challenges
// ("daily"). Events only tell viewers that something changed; clients refetch
// rather than applying payloads, so a missed event degrades to the next poll.

var (
	topicClients = make(map[string]map[*websocket.Conn]bool) // Map of topic to connected clients
	broadcast    = make(chan ChangeEvent)                    // Broadcast channel for events
	mutex        sync.Mutex                                  // Mutex to protect topicClients map
)

// ChangeEvent notifies subscribers that a row under the topic changed
type ChangeEvent struct {
	Topic      string      `json:"topic"`
	UpdateType string      `json:"update_type"` // "new", "update" or "delete"
	Payload    interface{} `json:"payload,omitempty"`
}

// CommentTopic returns the topic name of a submission's comment thread
func CommentTopic(submissionID string) string {
	return "comments/" + submissionID
}

// DailyTopic is the daily-challenge topic name
const DailyTopic = "daily"

// RegisterClient adds a WebSocket client to a topic
func RegisterClient(topic string, conn *websocket.Conn) {
	mutex.Lock()
	if topicClients[topic] == nil {
		topicClients[topic] = make(map[*websocket.Conn]bool)
	}
	topicClients[topic][conn] = true
	mutex.Unlock()
	metrics.WebsocketClients.WithLabelValues(topic).Inc()
}

// UnregisterClient removes a WebSocket client from a topic
func UnregisterClient(topic string, conn *websocket.Conn) {
	mutex.Lock()
	if clients, exists := topicClients[topic]; exists {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(topicClients, topic)
		}
	}
	mutex.Unlock()
	metrics.WebsocketClients.WithLabelValues(topic).Dec()
}

// Notify sends a change event to all clients subscribed to its topic
func Notify(event ChangeEvent) {
	broadcast <- event
}

func handleBroadcast() {
	for {
		event := <-broadcast
		mutex.Lock()
		if clients, exists := topicClients[event.Topic]; exists {
			for client := range clients {
				if err := client.WriteJSON(event); err != nil {
					log.WithError(err).Warn("WebSocket write error")
					client.Close()
					delete(clients, client)
				}
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
