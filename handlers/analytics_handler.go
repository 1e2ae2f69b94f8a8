package handlers

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/nyakundi-felix/pixelstore/services"
	ws "github.com/nyakundi-felix/pixelstore/websocket"
)

var statsCache = services.NewStatsCache(5*time.Minute, time.Now)

func GetPlatformStats(c *fiber.Ctx) error {
	stats, err := statsCache.Get(services.LoadPlatformStats)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load platform stats"})
	}
	return c.JSON(stats)
}

// ServeTransactionFeed streams completed ledger entries to an admin
// dashboard until the client hangs up.
func ServeTransactionFeed(conn *websocket.Conn) {
	client := &ws.Client{Conn: conn}
	ws.Register <- client
	defer func() {
		ws.Unregister <- client
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
