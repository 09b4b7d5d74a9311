package services

import (
	"math/rand"

	"meditime-chatbot-backend/textmatch"
)

// smallTalkThreshold is the maximum edit distance between the input and
// a trigger phrase for the rule to fire.
const smallTalkThreshold = 2

// SmallTalkRule matches greetings and meta-questions against trigger
// phrases. With MultiPart set the rule answers with every response in
// order; otherwise exactly one response is chosen (uniformly at random
// when several equivalent phrasings are listed).
type SmallTalkRule struct {
	Triggers  []string
	Responses []string
	MultiPart bool
}

// SmallTalkMatcher scans a fixed, prioritized rule table with fuzzy
// trigger matching. The selection function is injectable so tests can
// pin the random choice.
type SmallTalkMatcher struct {
	rules []SmallTalkRule
	pick  func(n int) int
}

// NewSmallTalkMatcher builds the matcher with the default rule table.
// pick may be nil, in which case math/rand drives the selection.
func NewSmallTalkMatcher(pick func(n int) int) *SmallTalkMatcher {
	if pick == nil {
		pick = rand.Intn
	}
	return &SmallTalkMatcher{
		rules: defaultSmallTalkRules(),
		pick:  pick,
	}
}

// Match returns the response parts for the first rule whose trigger is
// within edit distance 2 of the input, or nil when nothing matches.
// Table order is priority order.
func (m *SmallTalkMatcher) Match(message string) []string {
	t := textmatch.NormalizeLight(message)

	for _, rule := range m.rules {
		for _, trigger := range rule.Triggers {
			if textmatch.Levenshtein(t, textmatch.NormalizeLight(trigger)) > smallTalkThreshold {
				continue
			}
			if rule.MultiPart {
				parts := make([]string, len(rule.Responses))
				copy(parts, rule.Responses)
				return parts
			}
			return []string{rule.Responses[m.pick(len(rule.Responses))]}
		}
	}
	return nil
}

func defaultSmallTalkRules() []SmallTalkRule {
	return []SmallTalkRule{
		{
			Triggers:  []string{"hola", "ola", "holá", "buenas", "hi", "hello"},
			Responses: []string{"¡Hola! ¿Cómo puedo ayudarte hoy?"},
		},
		{
			Triggers:  []string{"cómo estás", "como estas", "qué tal", "que tal", "cmo estas"},
			Responses: []string{"Estoy bien, gracias por preguntar. ¿En qué más puedo ayudarte?"},
		},
		{
			Triggers: []string{
				"gracias", "merci", "thank you", "thanks", "thank u",
				"grasias", "grazias", "graciaz", "graciac",
			},
			Responses: []string{
				"Por nada, estoy para ayudarte.",
				"¡De nada! Aquí estoy si necesitas algo más.",
			},
		},
		{
			Triggers: []string{
				"qué haces", "que haces", "cómo funcionas", "como funcionas", "cmo funcionas",
			},
			Responses: []string{
				"Soy el ChatBot de MediTime y puedo proporcionarte información sobre medicamentos, sus usos, efectos, presentaciones e interacciones, y llevo un historial de tus consultas.",
			},
		},
		{
			Triggers: []string{"cómo te uso", "como te uso"},
			Responses: []string{
				"Para usarme, simplemente escribe en el chat el nombre del medicamento o la pregunta que tengas sobre él (por ejemplo: “¿Para qué sirve la aspirina?”, “¿Qué efectos secundarios tiene la warfarina?”).",
				"También puedes desplegar las preguntas predefinidas pulsando la flecha junto al campo de entrada y seleccionando la que necesites. Cada consulta que hagas se guardará automáticamente en tu historial, al que puedes acceder desde el menú (≡) y borrar con el botón ‘Limpiar historial’.",
			},
			MultiPart: true,
		},
		{
			Triggers: []string{
				"qué puedo preguntarte", "que puedo preguntarte", "q puedo preguntarte",
				"que te puedo preguntar", "qué te puedo preguntar",
				"que puedo preguntar", "qué puedo preguntar", "q puedo preguntar",
			},
			Responses: []string{
				"Puedes realizar preguntas que tengas sobre un medicamento (por ejemplo: “¿Para qué sirve la aspirina?”, “¿Qué efectos secundarios tiene la warfarina?”).",
				"También puedes desplegar las preguntas predefinidas pulsando la flecha junto al campo de entrada y seleccionando la que necesites. Cada consulta que hagas se guardará automáticamente en tu historial, al que puedes acceder desde el menú (≡) y borrar con el botón ‘Limpiar historial’.",
			},
			MultiPart: true,
		},
	}
}
