package utils

import (
	"regexp"
	"strings"

	"meditime-chatbot-backend/models"
)

type intentPattern struct {
	re     *regexp.Regexp
	intent models.MessageIntent
}

// IntentClassifier decides which medication field the user is asking
// about. Patterns are tried in order and the first match wins; when
// nothing matches the full record is requested.
type IntentClassifier struct {
	patterns []intentPattern
}

func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{
		// "adversos" runs before the loose "efectos" alternation so
		// "efectos adversos" and "efectos secundarios" land on the
		// adverse-effects field.
		patterns: []intentPattern{
			{regexp.MustCompile(`uso(s)?|para qué|para que|sirve`), models.IntentUsos},
			{regexp.MustCompile(`adverso(s)?|efecto(s)? secundario(s)?|secundarios?`), models.IntentAdversos},
			{regexp.MustCompile(`efecto(s)? comunes?|qué efectos|que efectos|efectos`), models.IntentEfectos},
			{regexp.MustCompile(`presentaci(o|ó)n`), models.IntentPresentacion},
			{regexp.MustCompile(`interacci(o|ó)n|mezclar|combinar`), models.IntentInteracciones},
		},
	}
}

// ClassifyIntent always returns exactly one category.
func (ic *IntentClassifier) ClassifyIntent(message string) models.MessageIntent {
	t := strings.ToLower(message)
	for _, p := range ic.patterns {
		if p.re.MatchString(t) {
			return p.intent
		}
	}
	return models.IntentFull
}
