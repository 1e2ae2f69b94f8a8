package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/nyakundi-felix/pixelstore/models"
)

// Client is one connected admin dashboard watching the ledger feed.
type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

var clients = make(map[*websocket.Conn]uuid.UUID)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var feed = make(chan *models.Transaction, 64)

// PublishTransaction offers a completed ledger entry to the live feed.
// It never blocks the calling mutation; when nobody is draining the
// feed the event is dropped.
func PublishTransaction(entry *models.Transaction) {
	if entry == nil {
		return
	}
	select {
	case feed <- entry:
	default:
		log.Println("⚠️ Transaction feed buffer full, dropping event")
	}
}

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Feed client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.Conn] = client.UserID
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Feed client unregistered: %s", client.UserID)
			clientsMu.Lock()
			delete(clients, client.Conn)
			clientsMu.Unlock()
		case entry := <-feed:
			broadcast(entry)
		}
	}
}

func broadcast(entry *models.Transaction) {
	var stale []*websocket.Conn

	clientsMu.RLock()
	for conn := range clients {
		if err := conn.WriteJSON(entry); err != nil {
			log.Printf("Error writing to feed client: %v", err)
			stale = append(stale, conn)
		}
	}
	clientsMu.RUnlock()

	if len(stale) == 0 {
		return
	}
	clientsMu.Lock()
	for _, conn := range stale {
		conn.Close()
		delete(clients, conn)
	}
	clientsMu.Unlock()
}
