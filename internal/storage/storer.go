package storage

import (
	"context"

	"github.com/bodmaslab/bodmas-master/internal/domain"
	"github.com/google/uuid"
)

type Storer interface {
	Save(ctx context.Context, attempt domain.Attempt) (uuid.UUID, error)
}

type Type string

const (
	PG     Type = "pg"
	SQLite      = "sqlite"
	InMem       = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
