package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meditime-chatbot-backend/models"
)

func newTestService(meds *fakeMedicationStore, faqs *fakeFaqStore, history *fakeHistoryStore) *ChatbotService {
	if meds == nil {
		meds = &fakeMedicationStore{}
	}
	if faqs == nil {
		faqs = &fakeFaqStore{}
	}
	if history == nil {
		history = &fakeHistoryStore{}
	}
	return NewChatbotService(meds, faqs, history, NewSessionStore(0))
}

func aspirina() models.Medication {
	return models.Medication{
		Nombre:        "Aspirina",
		Presentacion:  "tabletas de 500 mg",
		Usos:          []string{"aliviar el dolor", "bajar la fiebre"},
		Efectos:       []string{"acidez"},
		Adversos:      []string{"sangrado gastrointestinal"},
		Interacciones: []string{"warfarina"},
	}
}

func TestCascadeSmallTalkBeatsFaq(t *testing.T) {
	// An FAQ whose question collides with a small-talk trigger by
	// construction: small talk runs first and must win.
	svc := newTestService(nil, &fakeFaqStore{faqs: []models.FaqEntry{
		{Texto: "hola", Respuesta: "respuesta de faq"},
	}}, nil)

	parts, err := svc.ProcessMessage(context.Background(), "c1", "hola")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "¡Hola! ¿Cómo puedo ayudarte hoy?", parts[0])
}

func TestCascadeSymptomRefusal(t *testing.T) {
	svc := newTestService(&fakeMedicationStore{meds: []models.Medication{aspirina()}}, nil, nil)

	parts, err := svc.ProcessMessage(context.Background(), "c1", "¿Qué puedo tomar para el dolor de cabeza?")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, replyRefusal, parts[0])
}

func TestCascadeMedicationLookup(t *testing.T) {
	svc := newTestService(&fakeMedicationStore{meds: []models.Medication{aspirina()}}, nil, nil)

	parts, err := svc.ProcessMessage(context.Background(), "c1", "¿Para qué sirve la aspirina?")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "El Aspirina se usa para aliviar el dolor y bajar la fiebre.", parts[0])
}

func TestSessionContinuity(t *testing.T) {
	svc := newTestService(&fakeMedicationStore{meds: []models.Medication{aspirina()}}, nil, nil)
	ctx := context.Background()

	_, err := svc.ProcessMessage(ctx, "c1", "¿Para qué sirve la aspirina?")
	require.NoError(t, err)

	// The follow-up names no medication; the session supplies it.
	parts, err := svc.ProcessMessage(ctx, "c1", "¿y los efectos adversos?")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "Atención: Aspirina puede causar sangrado gastrointestinal.", parts[0])
}

func TestSessionIsolationBetweenClients(t *testing.T) {
	svc := newTestService(&fakeMedicationStore{meds: []models.Medication{aspirina()}}, nil, nil)
	ctx := context.Background()

	_, err := svc.ProcessMessage(ctx, "c1", "aspirina")
	require.NoError(t, err)

	// A different client has no last medication to fall back on.
	parts, err := svc.ProcessMessage(ctx, "c2", "¿y los efectos adversos?")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, replyFallback, parts[0])
}

func TestUnresolvedMedicationName(t *testing.T) {
	svc := newTestService(&fakeMedicationStore{extraNames: []string{"Fantasmol"}}, nil, nil)

	parts, err := svc.ProcessMessage(context.Background(), "c1", "¿para qué sirve fantasmol?")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "No encontré información sobre \"Fantasmol\".", parts[0])
}

func TestFallbackReply(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	parts, err := svc.ProcessMessage(context.Background(), "c1", "zzz qwerty")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, replyFallback, parts[0])
}

func TestTopicDialogueAcrossTurns(t *testing.T) {
	svc := newTestService(nil, nil, nil)
	ctx := context.Background()

	// Naming the pillbox activates the topic even though this turn
	// falls through to the fallback reply.
	_, err := svc.ProcessMessage(ctx, "c1", "tengo un pastillero nuevo")
	require.NoError(t, err)

	parts, err := svc.ProcessMessage(ctx, "c1", "¿funciona con corriente?")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Contains(t, parts[0], "corriente eléctrica")

	// A sub-question keeps the topic alive for the next turn.
	parts, err = svc.ProcessMessage(ctx, "c1", "¿de qué material está hecho?")
	require.NoError(t, err)
	assert.Contains(t, parts[0], "plástico")

	// Neither the keyword nor a sub-rule: topic over, normal cascade.
	parts, err = svc.ProcessMessage(ctx, "c1", "zzz qwerty")
	require.NoError(t, err)
	assert.Equal(t, replyFallback, parts[0])

	// The power question no longer answers once the topic is gone.
	parts, err = svc.ProcessMessage(ctx, "c1", "¿funciona con corriente?")
	require.NoError(t, err)
	assert.Equal(t, replyFallback, parts[0])
}

func TestHistoryOneEntryPerPart(t *testing.T) {
	history := &fakeHistoryStore{}
	svc := newTestService(nil, nil, history)

	parts, err := svc.ProcessMessage(context.Background(), "c1", "cómo te uso")
	require.NoError(t, err)
	require.Len(t, parts, 2)

	require.Len(t, history.entries, 2)
	for i, entry := range history.entries {
		assert.Equal(t, "cómo te uso", entry.Pregunta)
		assert.Equal(t, parts[i], entry.Respuesta)
		assert.WithinDuration(t, time.Now(), entry.Fecha, time.Minute)
	}
}

func TestHistoryAppendFailureStillReturnsReply(t *testing.T) {
	history := &fakeHistoryStore{err: errors.New("store down")}
	svc := newTestService(nil, nil, history)

	parts, err := svc.ProcessMessage(context.Background(), "c1", "hola")
	require.NoError(t, err)
	require.Len(t, parts, 1)
}

func TestClearHistoryIdempotence(t *testing.T) {
	history := &fakeHistoryStore{}
	svc := newTestService(nil, nil, history)
	ctx := context.Background()

	_, err := svc.ProcessMessage(ctx, "c1", "hola")
	require.NoError(t, err)
	require.NotEmpty(t, history.entries)

	require.NoError(t, svc.ClearHistory(ctx))
	assert.Empty(t, history.entries)

	// Second clear on an empty history reports the condition.
	err = svc.ClearHistory(ctx)
	assert.ErrorIs(t, err, ErrEmptyHistory)
}

func TestClearHistoryDropsSessions(t *testing.T) {
	svc := newTestService(&fakeMedicationStore{meds: []models.Medication{aspirina()}}, nil, nil)
	ctx := context.Background()

	_, err := svc.ProcessMessage(ctx, "c1", "aspirina")
	require.NoError(t, err)

	require.NoError(t, svc.ClearHistory(ctx))

	// The follow-up no longer remembers the medication.
	parts, err := svc.ProcessMessage(ctx, "c1", "¿y los efectos adversos?")
	require.NoError(t, err)
	assert.Equal(t, replyFallback, parts[0])
}

func TestListFaqsSorted(t *testing.T) {
	svc := newTestService(nil, &fakeFaqStore{faqs: []models.FaqEntry{
		{Texto: "zeta"},
		{Texto: "alfa"},
	}}, nil)

	faqs, err := svc.ListFaqs(context.Background())
	require.NoError(t, err)
	require.Len(t, faqs, 2)
	assert.Equal(t, "alfa", faqs[0].Texto)
}

func TestStoreErrorPropagates(t *testing.T) {
	svc := newTestService(&fakeMedicationStore{err: errors.New("no reachable")}, nil, nil)

	_, err := svc.ProcessMessage(context.Background(), "c1", "aspirina")
	assert.Error(t, err)
}
