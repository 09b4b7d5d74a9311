package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSymptomAdvice(t *testing.T) {
	cases := []struct {
		message string
		symptom string
	}{
		{"¿Qué puedo tomar para el dolor de cabeza?", "dolor de cabeza"},
		{"que tomo para la fiebre", "fiebre"},
		{"tomar por los mareos", "mareos"},
		{"¿Qué tomo para la gripe?", "gripe"},
	}

	for _, c := range cases {
		symptom, ok := DetectSymptomAdvice(c.message)
		assert.True(t, ok, "message %q", c.message)
		assert.Equal(t, c.symptom, symptom)
	}
}

func TestDetectSymptomAdviceNoMatch(t *testing.T) {
	for _, message := range []string{
		"¿Para qué sirve la aspirina?",
		"tengo dolor de cabeza",
		"hola",
		"¿cuándo debo tomarla?",
	} {
		_, ok := DetectSymptomAdvice(message)
		assert.False(t, ok, "message %q", message)
	}
}
