package services

import (
	"regexp"
	"strings"
)

// TopicPastillero identifies the smart-pillbox sub-dialogue.
const TopicPastillero = "pastillero"

type topicRule struct {
	re     *regexp.Regexp
	answer string
}

// TopicContextMatcher runs the pillbox sub-dialogue. Seeing the trigger
// keyword activates the topic for the session; while active, sub-rules
// answer questions about power, materials, mishandling and placement.
// A turn with neither the keyword nor a sub-rule hit deactivates it.
type TopicContextMatcher struct {
	trigger string
	rules   []topicRule
}

func NewTopicContextMatcher() *TopicContextMatcher {
	return &TopicContextMatcher{
		trigger: TopicPastillero,
		rules: []topicRule{
			{
				regexp.MustCompile(`corriente|enchuf|electric|bater|carg`),
				"El pastillero MediTime funciona conectado a la corriente eléctrica y cuenta con una batería interna de respaldo que cubre cortes de luz de hasta 8 horas.",
			},
			{
				regexp.MustCompile(`material|plastic|fabric|hecho|construc`),
				"El pastillero está fabricado en plástico ABS de grado alimenticio, con compartimentos extraíbles que puedes lavar con agua y jabón neutro.",
			},
			{
				regexp.MustCompile(`golpe|caid|cae|romp|agua|moj`),
				"Evita golpes y caídas: el pastillero no es resistente a impactos fuertes ni al agua. Si se moja, desconéctalo y déjalo secar por completo antes de volver a usarlo.",
			},
			{
				regexp.MustCompile(`coloc|guard|lugar|sitio|ubic|almacen`),
				"Coloca el pastillero en una superficie plana y estable, lejos de fuentes de calor y de la luz solar directa, y a la vista para no olvidar las tomas.",
			},
		},
	}
}

// Match advances the two-state topic machine for one turn. active is
// the session's current topic ("" when inactive). It returns the canned
// answer when a sub-rule hits, plus the topic value the session should
// carry after this turn.
func (m *TopicContextMatcher) Match(message, active string) (answer, newActive string) {
	lower := strings.ToLower(message)
	triggered := strings.Contains(lower, m.trigger)

	if triggered {
		active = m.trigger
	}
	if active != m.trigger {
		return "", active
	}

	for _, rule := range m.rules {
		if rule.re.MatchString(lower) {
			return rule.answer, m.trigger
		}
	}

	// No sub-rule hit: the topic survives only if this message named it.
	if triggered {
		return "", m.trigger
	}
	return "", ""
}
