package models

import "time"

// MessageIntent is the classified category of medication information
// the user is asking for.
type MessageIntent string

const (
	IntentUsos          MessageIntent = "usos"
	IntentEfectos       MessageIntent = "efectos"
	IntentAdversos      MessageIntent = "adversos"
	IntentPresentacion  MessageIntent = "presentacion"
	IntentInteracciones MessageIntent = "interacciones"
	IntentFull          MessageIntent = "full"
)

// ChatRequest is the inbound chat message payload.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	ClientKey string `json:"client_key,omitempty"`
}

// ChatResponse carries the ordered response parts for one turn.
type ChatResponse struct {
	Respuestas []string `json:"respuestas"`
}

// Session is the per-client conversational memory: the last medication
// discussed and the active sub-topic, if any.
type Session struct {
	ClientKey      string
	LastMedication string
	ActiveTopic    string
	LastSeen       time.Time
}
