package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"meditime-chatbot-backend/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Configure properly for production
	},
}

type WebSocketController struct {
	chatbotService *services.ChatbotService
}

func NewWebSocketController(chatbotService *services.ChatbotService) *WebSocketController {
	return &WebSocketController{
		chatbotService: chatbotService,
	}
}

// HandleWebSocket runs a chat conversation over a WebSocket. Each
// inbound JSON message is one turn; the response parts come back as a
// single JSON message.
func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	clientKey := c.Query("client_key")
	if clientKey == "" {
		clientKey = uuid.NewString()
	}

	for {
		var msg map[string]string
		err := conn.ReadJSON(&msg)
		if err != nil {
			log.Println("Read error:", err)
			break
		}

		parts, err := wc.chatbotService.ProcessMessage(c.Request.Context(), clientKey, msg["message"])
		if err != nil {
			conn.WriteJSON(map[string]interface{}{
				"error": "Failed to process message",
			})
			continue
		}

		conn.WriteJSON(map[string]interface{}{
			"respuestas": parts,
		})
	}
}
