package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

const tableBoardChannel = "tables:board"

var (
	redisClient = redis.NewClient(&redis.Options{
		Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
	})

	boardClients = make(map[*websocket.Conn]bool)
	boardMu      sync.Mutex
)

// fetchTableBoard builds the live board snapshot: every table with its open
// order and waiter.
func fetchTableBoard() ([]model.Table, error) {
	var tables []model.Table
	err := database.DB.
		Preload("Orders", "status = ?", constants.ORDER_OPEN).
		Preload("Orders.Waiter").
		Preload("Orders.Items").
		Order("name ASC").Find(&tables).Error
	return tables, err
}

// PublishTableBoard pushes the current board to the Redis channel so every
// connected board client refreshes. Called after any mutation that changes a
// table's status or an open order.
func PublishTableBoard() {
	tables, err := fetchTableBoard()
	if err != nil {
		log.Println("table board snapshot failed:", err)
		return
	}
	payload, err := json.Marshal(tables)
	if err != nil {
		log.Println("table board marshal failed:", err)
		return
	}
	if err := redisClient.Publish(context.Background(), tableBoardChannel, payload).Err(); err != nil {
		log.Println("table board publish failed:", err)
	}
}

// TableBoardConnection handles one live-board WS client.
func TableBoardConnection(c *websocket.Conn) {
	defer func() {
		boardMu.Lock()
		delete(boardClients, c)
		boardMu.Unlock()
		c.Close()
	}()

	boardMu.Lock()
	boardClients[c] = true
	boardMu.Unlock()

	// Initial snapshot so the client doesn't wait for the next mutation
	tables, _ := fetchTableBoard()
	c.WriteJSON(tables)

	pubsub := redisClient.Subscribe(context.Background(), tableBoardChannel)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		boardMu.Lock()
		for conn := range boardClients {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(boardClients, conn)
			}
		}
		boardMu.Unlock()
	}
}
