package routes

import (
	"github.com/gin-gonic/gin"

	"meditime-chatbot-backend/config"
	"meditime-chatbot-backend/controllers"
	"meditime-chatbot-backend/database"
	"meditime-chatbot-backend/middleware"
	"meditime-chatbot-backend/services"
)

func SetupRoutes(router *gin.Engine) {
	cfg := config.Get()
	db := database.GetMongoDB()

	// Initialize stores
	medications := database.NewMedicationRepository(db)
	faqs := database.NewFaqRepository(db)
	history := database.NewHistoryRepository(db)
	sessions := services.NewSessionStore(cfg.Session.TTL)
	sessions.StartSweeper(cfg.Session.SweepInterval, nil)

	// Initialize services
	chatbotService := services.NewChatbotService(medications, faqs, history, sessions)

	// Initialize controllers
	chatbotController := controllers.NewChatbotController(chatbotService)
	wsController := controllers.NewWebSocketController(chatbotService)

	api := router.Group("/api")
	api.Use(middleware.ClientKey())
	{
		api.POST("/chat", chatbotController.HandleChat)
		api.GET("/preguntas", chatbotController.ListFaqs)
		api.GET("/historial", chatbotController.ListHistory)
		api.DELETE("/historial", chatbotController.ClearHistory)

		// WebSocket for real-time chat
		api.GET("/ws", wsController.HandleWebSocket)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})
}
