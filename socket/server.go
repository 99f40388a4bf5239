package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes the Socket.IO server that relays live player
// positions. Watchers join a per-hunt room; location events published by the
// player are broadcast to everyone watching that hunt.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, huntID string) {
		if huntID == "" {
			log.Println("Invalid huntId in join request")
			return
		}
		c.Join(huntID)
		log.Printf("Socket %s watching hunt %s\n", c.ID(), huntID)
	})

	server.OnEvent("/", "location", func(c socketio.Conn, update map[string]interface{}) {
		huntID, _ := update["huntId"].(string)
		if huntID == "" {
			log.Println("Invalid huntId in location update")
			return
		}
		server.BroadcastToRoom("/", huntID, "playerLocation", update)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", c.ID(), reason)
	})

	return server
}
