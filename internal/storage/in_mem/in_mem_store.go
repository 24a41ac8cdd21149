package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/bodmaslab/bodmas-master/internal/domain"
	"github.com/bodmaslab/bodmas-master/pkg/pagination"
	"github.com/google/uuid"
)

type InMemStore struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Attempt
	order       []uuid.UUID
}

func NewInMemStore() *InMemStore {
	return &InMemStore{
		storage: make(map[uuid.UUID]domain.Attempt),
	}
}

func (s *InMemStore) Save(ctx context.Context, attempt domain.Attempt) (uuid.UUID, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	if attempt.Concept == "" {
		attempt.Concept = domain.ConceptCustom
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}

	if _, exists := s.storage[attempt.ID]; !exists {
		s.order = append(s.order, attempt.ID)
	}
	s.storage[attempt.ID] = attempt
	slog.Info("Saving attempt to in-memory storage", "id", attempt.ID, "concept", attempt.Concept)

	return attempt.ID, nil
}

func (s *InMemStore) List(ctx context.Context, page int, size int) (*pagination.OffsetResult[domain.Attempt], error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	total := int64(len(s.order))
	offset := (page - 1) * size

	// newest first: walk the insertion order backwards
	items := make([]domain.Attempt, 0, size)
	for i := len(s.order) - 1 - offset; i >= 0 && len(items) < size; i-- {
		items = append(items, s.storage[s.order[i]])
	}

	return pagination.NewOffsetResult(items, total, page, size), nil
}

func (s *InMemStore) Summary(ctx context.Context) ([]domain.ConceptStats, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	byConcept := make(map[string]*domain.ConceptStats)
	for _, id := range s.order {
		attempt := s.storage[id]
		stats, ok := byConcept[attempt.Concept]
		if !ok {
			stats = &domain.ConceptStats{Concept: attempt.Concept}
			byConcept[attempt.Concept] = stats
		}
		stats.Attempts++
		if attempt.Correct {
			stats.Correct++
		}
	}

	summary := make([]domain.ConceptStats, 0, len(byConcept))
	for _, stats := range byConcept {
		stats.Mastery = domain.MasteryScore(stats.Correct, stats.Attempts)
		summary = append(summary, *stats)
	}
	sort.Slice(summary, func(i, j int) bool {
		return summary[i].Concept < summary[j].Concept
	})

	return summary, nil
}

func (s *InMemStore) Close() error {
	return nil
}
