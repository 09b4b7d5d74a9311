package services

import (
	"context"
	"errors"

	"meditime-chatbot-backend/models"
)

// ErrEmptyHistory is returned when a clear is requested on an already
// empty history. User-visible, non-fatal.
var ErrEmptyHistory = errors.New("el historial ya está vacío")

// MedicationStore is the read-only view of the medication catalog.
type MedicationStore interface {
	// ListNames fetches every catalog name, in storage order.
	ListNames(ctx context.Context) ([]string, error)
	// FindByName returns nil without error when no record exists.
	FindByName(ctx context.Context, nombre string) (*models.Medication, error)
}

// FaqStore is the read-only view of the predefined question set.
type FaqStore interface {
	// List returns FAQs in storage iteration order.
	List(ctx context.Context) ([]models.FaqEntry, error)
	// ListSorted returns FAQs sorted by question text ascending.
	ListSorted(ctx context.Context) ([]models.FaqEntry, error)
}

// HistoryStore persists the query history.
type HistoryStore interface {
	Append(ctx context.Context, entry models.HistoryEntry) error
	// Recent returns at most limit entries, newest first.
	Recent(ctx context.Context, limit int64) ([]models.HistoryEntry, error)
	Count(ctx context.Context) (int64, error)
	// Clear deletes every entry and reports how many were removed.
	Clear(ctx context.Context) (int64, error)
}
