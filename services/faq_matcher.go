package services

import (
	"context"
	"fmt"

	"meditime-chatbot-backend/textmatch"
)

// faqThreshold is loose on purpose: predefined questions are full
// sentences, so a handful of typos or small rephrasings still match.
const faqThreshold = 6

// FaqMatcher fuzzy-matches input against the stored predefined
// questions and returns the canned answer of the first one within
// distance, in store iteration order.
type FaqMatcher struct {
	store FaqStore
}

func NewFaqMatcher(store FaqStore) *FaqMatcher {
	return &FaqMatcher{store: store}
}

// Match returns the stored answer verbatim, or "" when no question is
// close enough.
func (m *FaqMatcher) Match(ctx context.Context, message string) (string, error) {
	faqs, err := m.store.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load predefined questions: %w", err)
	}

	input := textmatch.NormalizeFull(message)
	for _, faq := range faqs {
		if textmatch.Levenshtein(input, textmatch.NormalizeFull(faq.Texto)) <= faqThreshold {
			return faq.Respuesta, nil
		}
	}
	return "", nil
}
