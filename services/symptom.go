package services

import (
	"regexp"
	"strings"

	"meditime-chatbot-backend/textmatch"
)

// symptomPattern recognizes "what should I take for X" phrasing over
// full-normalized input: optional "que"/"puedo", a form of tomar,
// optional "para"/"por" and article, then the symptom phrase.
var symptomPattern = regexp.MustCompile(
	`^(?:que\s+)?(?:puedo\s+)?(?:tomo|tomar)(?:\s+(?:para|por))?(?:\s+(?:los|las|el|la))?\s+(.+)$`,
)

// DetectSymptomAdvice reports whether the message asks for a medication
// recommendation for a symptom, returning the captured symptom phrase.
// Callers answer with a fixed refusal; the symptom is only logged.
func DetectSymptomAdvice(message string) (string, bool) {
	c := textmatch.NormalizeFull(message)
	m := symptomPattern.FindStringSubmatch(c)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
