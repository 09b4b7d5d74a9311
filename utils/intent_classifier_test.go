package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"meditime-chatbot-backend/models"
)

func TestClassifyIntent(t *testing.T) {
	ic := NewIntentClassifier()

	cases := []struct {
		message string
		want    models.MessageIntent
	}{
		{"¿Para qué sirve la aspirina?", models.IntentUsos},
		{"usos del ibuprofeno", models.IntentUsos},
		{"¿Qué efectos comunes tiene?", models.IntentEfectos},
		{"efectos del paracetamol", models.IntentEfectos},
		{"¿y los efectos adversos?", models.IntentAdversos},
		{"¿Qué efectos secundarios tiene la warfarina?", models.IntentAdversos},
		{"¿En qué presentación viene?", models.IntentPresentacion},
		{"¿puedo mezclar con alcohol?", models.IntentInteracciones},
		{"interacciones del omeprazol", models.IntentInteracciones},
		{"aspirina", models.IntentFull},
		{"", models.IntentFull},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, ic.ClassifyIntent(c.message), "message %q", c.message)
	}
}

func TestClassifyIntentAdversosBeforeEfectos(t *testing.T) {
	ic := NewIntentClassifier()

	// "efectos adversos" names both fields; the adverse-effects
	// pattern has priority over the loose "efectos" alternation.
	assert.Equal(t, models.IntentAdversos, ic.ClassifyIntent("los efectos adversos"))
	assert.Equal(t, models.IntentAdversos, ic.ClassifyIntent("efectos secundarios"))
}
