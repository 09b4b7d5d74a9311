package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"meditime-chatbot-backend/middleware"
	"meditime-chatbot-backend/models"
	"meditime-chatbot-backend/services"
)

const historyLimit = 50

type ChatbotController struct {
	chatbotService *services.ChatbotService
}

func NewChatbotController(chatbotService *services.ChatbotService) *ChatbotController {
	return &ChatbotController{
		chatbotService: chatbotService,
	}
}

// HandleChat processes one chat turn and returns the response parts.
func (cc *ChatbotController) HandleChat(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	clientKey := req.ClientKey
	if clientKey == "" {
		clientKey = c.GetString(middleware.ContextClientKey)
	}

	parts, err := cc.chatbotService.ProcessMessage(c.Request.Context(), clientKey, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process message",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Respuestas: parts})
}

// ListFaqs returns the predefined questions, sorted by text.
func (cc *ChatbotController) ListFaqs(c *gin.Context) {
	faqs, err := cc.chatbotService.ListFaqs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "No se pudieron cargar las preguntas predefinidas",
		})
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// ListHistory returns the most recent history entries, newest first.
func (cc *ChatbotController) ListHistory(c *gin.Context) {
	entries, err := cc.chatbotService.ListHistory(c.Request.Context(), historyLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "No se pudo cargar el historial",
		})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ClearHistory wipes the query history. Clearing an already-empty
// history is reported as a conflict, not a server failure.
func (cc *ChatbotController) ClearHistory(c *gin.Context) {
	err := cc.chatbotService.ClearHistory(c.Request.Context())
	if errors.Is(err, services.ErrEmptyHistory) {
		c.JSON(http.StatusConflict, gin.H{
			"ok":      false,
			"message": "No hay historial que borrar.",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"message": "Error al borrar historial.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Historial borrado correctamente.",
	})
}
