package storage

import (
	"context"

	"github.com/bodmaslab/bodmas-master/internal/domain"
	"github.com/bodmaslab/bodmas-master/pkg/pagination"
)

type Reader interface {
	// List returns saved attempts newest first with offset-based pagination.
	// page is 1-based, size is the number of attempts per page.
	List(ctx context.Context, page int, size int) (*pagination.OffsetResult[domain.Attempt], error)
	// Summary aggregates saved attempts per concept with a mastery score.
	Summary(ctx context.Context) ([]domain.ConceptStats, error)
}

// Store combines attempt persistence and reporting over one backend.
type Store interface {
	Storer
	Reader
	Close() error
}
