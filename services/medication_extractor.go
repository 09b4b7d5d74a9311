package services

import (
	"context"
	"fmt"
	"strings"

	"meditime-chatbot-backend/textmatch"
)

// medNameThreshold bounds the fuzzy fallback: at most two edits and at
// most two characters of length difference between token and name.
const medNameThreshold = 2

// MedicationNameExtractor finds a catalog medication name mentioned in
// free text. The catalog is fetched fresh on every call so newly seeded
// medications are visible immediately.
type MedicationNameExtractor struct {
	store MedicationStore
}

func NewMedicationNameExtractor(store MedicationStore) *MedicationNameExtractor {
	return &MedicationNameExtractor{store: store}
}

// Extract returns the catalog spelling of the first medication found,
// or "" when the message names none. Exact token and substring matches
// are tried over the whole catalog before any fuzzy comparison.
func (e *MedicationNameExtractor) Extract(ctx context.Context, message string) (string, error) {
	names, err := e.store.ListNames(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load medication catalog: %w", err)
	}

	lower := strings.ToLower(message)
	tokens := textmatch.Tokenize(message)

	for _, nombre := range names {
		nLow := strings.ToLower(nombre)
		if containsToken(tokens, nLow) || strings.Contains(lower, nLow) {
			return nombre, nil
		}
	}

	for _, tok := range tokens {
		for _, nombre := range names {
			nLow := strings.ToLower(nombre)
			if lenDiff(tok, nLow) > medNameThreshold {
				continue
			}
			if textmatch.Levenshtein(tok, nLow) <= medNameThreshold {
				return nombre, nil
			}
		}
	}

	return "", nil
}

func containsToken(tokens []string, s string) bool {
	for _, tok := range tokens {
		if tok == s {
			return true
		}
	}
	return false
}

func lenDiff(a, b string) int {
	d := len([]rune(a)) - len([]rune(b))
	if d < 0 {
		return -d
	}
	return d
}
