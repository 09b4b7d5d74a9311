package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"meditime-chatbot-backend/models"
	"meditime-chatbot-backend/utils"
)

const (
	replyFallback = "Lo siento, no pude encontrar información sobre eso. ¿Puedes reformular?"
	replyRefusal  = "Lo siento, no puedo recomendar medicamentos. Consulta con un profesional de la salud."
)

// ChatbotService sequences the classifier cascade for each incoming
// message: topic context, small talk, symptom refusal, predefined
// questions, medication lookup, fallback. The first stage that produces
// a result wins the turn.
type ChatbotService struct {
	medications MedicationStore
	faqs        FaqStore
	history     HistoryStore
	sessions    *SessionStore

	smallTalk *SmallTalkMatcher
	topics    *TopicContextMatcher
	faqMatch  *FaqMatcher
	extractor *MedicationNameExtractor
	intents   *utils.IntentClassifier
}

func NewChatbotService(medications MedicationStore, faqs FaqStore, history HistoryStore, sessions *SessionStore) *ChatbotService {
	return &ChatbotService{
		medications: medications,
		faqs:        faqs,
		history:     history,
		sessions:    sessions,
		smallTalk:   NewSmallTalkMatcher(nil),
		topics:      NewTopicContextMatcher(),
		faqMatch:    NewFaqMatcher(faqs),
		extractor:   NewMedicationNameExtractor(medications),
		intents:     utils.NewIntentClassifier(),
	}
}

// ProcessMessage runs one turn and returns the ordered response parts.
// Exactly one cascade branch applies per turn. The reply is computed
// first and persisted best-effort afterwards: a history write failure
// is logged but never withholds an already-computed answer.
func (s *ChatbotService) ProcessMessage(ctx context.Context, clientKey, message string) ([]string, error) {
	sess := s.sessions.Get(clientKey)

	parts, sess, err := s.classify(ctx, sess, message)
	if err != nil {
		return nil, err
	}

	s.sessions.Update(clientKey, sess.LastMedication, sess.ActiveTopic)
	s.persist(ctx, message, parts)
	return parts, nil
}

func (s *ChatbotService) classify(ctx context.Context, sess models.Session, message string) ([]string, models.Session, error) {
	// 1) Active sub-topic dialogue.
	answer, active := s.topics.Match(message, sess.ActiveTopic)
	sess.ActiveTopic = active
	if answer != "" {
		return []string{answer}, sess, nil
	}

	// 2) Small talk.
	if parts := s.smallTalk.Match(message); parts != nil {
		return parts, sess, nil
	}

	// 3) Symptom-advice refusal.
	if symptom, ok := DetectSymptomAdvice(message); ok {
		log.Printf("symptom advice requested for %q, refusing", symptom)
		return []string{replyRefusal}, sess, nil
	}

	// 4) Predefined questions.
	faqAnswer, err := s.faqMatch.Match(ctx, message)
	if err != nil {
		return nil, sess, err
	}
	if faqAnswer != "" {
		return []string{faqAnswer}, sess, nil
	}

	// 5) Medication lookup, falling back to the session's last
	// medication for follow-up questions that name none.
	nombre, err := s.extractor.Extract(ctx, message)
	if err != nil {
		return nil, sess, err
	}
	if nombre == "" {
		nombre = sess.LastMedication
	}

	if nombre != "" {
		sess.LastMedication = nombre
		intent := s.intents.ClassifyIntent(message)

		med, err := s.medications.FindByName(ctx, nombre)
		if err != nil {
			return nil, sess, err
		}
		if med == nil {
			return []string{fmt.Sprintf("No encontré información sobre \"%s\".", nombre)}, sess, nil
		}
		return []string{utils.FormatMedicationField(med, intent)}, sess, nil
	}

	// 6) Fallback.
	return []string{replyFallback}, sess, nil
}

// persist appends one history entry per response part.
func (s *ChatbotService) persist(ctx context.Context, question string, parts []string) {
	now := time.Now()
	for _, part := range parts {
		entry := models.HistoryEntry{
			Pregunta:  question,
			Respuesta: part,
			Fecha:     now,
		}
		if err := s.history.Append(ctx, entry); err != nil {
			log.Printf("failed to save history entry: %v", err)
		}
	}
}

// ListFaqs returns the predefined questions sorted by text.
func (s *ChatbotService) ListFaqs(ctx context.Context) ([]models.FaqEntry, error) {
	return s.faqs.ListSorted(ctx)
}

// ListHistory returns at most limit entries, newest first.
func (s *ChatbotService) ListHistory(ctx context.Context, limit int64) ([]models.HistoryEntry, error) {
	return s.history.Recent(ctx, limit)
}

// ClearHistory wipes the query history and every session tied to it.
// Clearing an already-empty history reports ErrEmptyHistory.
func (s *ChatbotService) ClearHistory(ctx context.Context) error {
	count, err := s.history.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrEmptyHistory
	}
	if _, err := s.history.Clear(ctx); err != nil {
		return err
	}
	s.sessions.Clear()
	return nil
}
