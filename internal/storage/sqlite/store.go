package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bodmaslab/bodmas-master/internal/domain"
	"github.com/bodmaslab/bodmas-master/pkg/pagination"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS attempts (
	id TEXT PRIMARY KEY,
	question_id INTEGER,
	expression TEXT NOT NULL,
	concept TEXT NOT NULL,
	given_answer REAL NOT NULL,
	correct_answer REAL NOT NULL,
	is_correct BOOLEAN NOT NULL,
	error_pattern TEXT,
	time_taken_seconds INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attempts_concept ON attempts(concept);
CREATE INDEX IF NOT EXISTS idx_attempts_created_at ON attempts(created_at);
`

// Store persists attempts in a local SQLite database file.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Save(ctx context.Context, attempt domain.Attempt) (uuid.UUID, error) {
	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	if attempt.Concept == "" {
		attempt.Concept = domain.ConceptCustom
	}
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}

	cmd := `
		INSERT INTO attempts (id, question_id, expression, concept, given_answer, correct_answer, is_correct, error_pattern, time_taken_seconds, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(
		ctx,
		cmd,
		attempt.ID.String(),
		attempt.QuestionID,
		attempt.Expression,
		attempt.Concept,
		attempt.GivenAnswer,
		attempt.CorrectAnswer,
		attempt.Correct,
		nullablePattern(attempt.Pattern),
		attempt.TimeTakenSeconds,
		attempt.CreatedAt,
	)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert attempt: %w", err)
	}

	return attempt.ID, nil
}

func (s *Store) List(ctx context.Context, page int, size int) (*pagination.OffsetResult[domain.Attempt], error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, "SELECT count(*) FROM attempts").Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count attempts: %w", err)
	}

	query := `
		SELECT id, question_id, expression, concept, given_answer, correct_answer, is_correct, error_pattern, time_taken_seconds, created_at
		FROM attempts
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`
	offset := (page - 1) * size
	rows, err := s.db.QueryContext(ctx, query, size, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Attempt, 0, size)
	for rows.Next() {
		var attempt domain.Attempt
		var id string
		var pattern *string
		if err := rows.Scan(
			&id,
			&attempt.QuestionID,
			&attempt.Expression,
			&attempt.Concept,
			&attempt.GivenAnswer,
			&attempt.CorrectAnswer,
			&attempt.Correct,
			&pattern,
			&attempt.TimeTakenSeconds,
			&attempt.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempt.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("failed to parse attempt id %q: %w", id, err)
		}
		if pattern != nil {
			attempt.Pattern = domain.ErrorPattern(*pattern)
		}
		items = append(items, attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attempts: %w", err)
	}

	return pagination.NewOffsetResult(items, total, page, size), nil
}

func (s *Store) Summary(ctx context.Context) ([]domain.ConceptStats, error) {
	query := `
		SELECT concept, count(*) AS attempts, sum(is_correct) AS correct
		FROM attempts
		GROUP BY concept
		ORDER BY concept
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize attempts: %w", err)
	}
	defer rows.Close()

	var summary []domain.ConceptStats
	for rows.Next() {
		var stats domain.ConceptStats
		var attempts, correct int64
		if err := rows.Scan(&stats.Concept, &attempts, &correct); err != nil {
			return nil, fmt.Errorf("failed to scan concept stats: %w", err)
		}
		stats.Attempts = int(attempts)
		stats.Correct = int(correct)
		stats.Mastery = domain.MasteryScore(stats.Correct, stats.Attempts)
		summary = append(summary, stats)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read concept stats: %w", err)
	}

	return summary, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func nullablePattern(pattern domain.ErrorPattern) *string {
	if pattern == "" {
		return nil
	}
	value := pattern.String()
	return &value
}
