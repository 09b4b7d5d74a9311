package services

import (
	"context"
	"sort"

	"meditime-chatbot-backend/models"
)

// In-memory store fakes shared by the matcher and orchestrator tests.

type fakeMedicationStore struct {
	meds []models.Medication
	// extraNames appear in the catalog listing without a backing
	// record, for unresolved-name scenarios.
	extraNames []string
	err        error
}

func (f *fakeMedicationStore) ListNames(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	names := make([]string, 0, len(f.meds)+len(f.extraNames))
	for _, m := range f.meds {
		names = append(names, m.Nombre)
	}
	names = append(names, f.extraNames...)
	return names, nil
}

func (f *fakeMedicationStore) FindByName(ctx context.Context, nombre string) (*models.Medication, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.meds {
		if f.meds[i].Nombre == nombre {
			med := f.meds[i]
			return &med, nil
		}
	}
	return nil, nil
}

type fakeFaqStore struct {
	faqs []models.FaqEntry
	err  error
}

func (f *fakeFaqStore) List(ctx context.Context) ([]models.FaqEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.faqs, nil
}

func (f *fakeFaqStore) ListSorted(ctx context.Context) ([]models.FaqEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	sorted := make([]models.FaqEntry, len(f.faqs))
	copy(sorted, f.faqs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Texto < sorted[j].Texto })
	return sorted, nil
}

type fakeHistoryStore struct {
	entries []models.HistoryEntry
	err     error
}

func (f *fakeHistoryStore) Append(ctx context.Context, entry models.HistoryEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeHistoryStore) Recent(ctx context.Context, limit int64) ([]models.HistoryEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.HistoryEntry, len(f.entries))
	copy(out, f.entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeHistoryStore) Count(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.entries)), nil
}

func (f *fakeHistoryStore) Clear(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := int64(len(f.entries))
	f.entries = nil
	return n, nil
}
