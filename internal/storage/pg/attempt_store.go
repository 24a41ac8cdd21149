package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/bodmaslab/bodmas-master/internal/domain"
	"github.com/bodmaslab/bodmas-master/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AttemptStore struct {
	db *pgxpool.Pool
}

func NewAttemptStore(pool *ConnectionPool) (*AttemptStore, error) {
	return &AttemptStore{db: pool.conn}, nil
}

func (s *AttemptStore) Save(ctx context.Context, attempt domain.Attempt) (uuid.UUID, error) {
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
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		attempt.ID,
		attempt.QuestionID,
		attempt.Expression,
		attempt.Concept,
		attempt.GivenAnswer,
		attempt.CorrectAnswer,
		attempt.Correct,
		nullablePattern(attempt.Pattern),
		attempt.TimeTakenSeconds,
		attempt.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert attempt: %w", err)
	}

	return id, nil
}

func (s *AttemptStore) List(ctx context.Context, page int, size int) (*pagination.OffsetResult[domain.Attempt], error) {
	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM attempts`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count attempts: %w", err)
	}

	query := `
        SELECT id, question_id, expression, concept, given_answer, correct_answer, is_correct, error_pattern, time_taken_seconds, created_at
        FROM attempts
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	offset := (page - 1) * size
	rows, err := s.db.Query(ctx, query, size, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Attempt, 0, size)
	for rows.Next() {
		var attempt domain.Attempt
		var pattern *string
		if err := rows.Scan(
			&attempt.ID,
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

func (s *AttemptStore) Summary(ctx context.Context) ([]domain.ConceptStats, error) {
	query := `
        SELECT concept, count(*) AS attempts, count(*) FILTER (WHERE is_correct) AS correct
        FROM attempts
        GROUP BY concept
        ORDER BY concept;
    `
	rows, err := s.db.Query(ctx, query)
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

func (s *AttemptStore) Close() error {
	s.db.Close()
	return nil
}

func nullablePattern(pattern domain.ErrorPattern) *string {
	if pattern == "" {
		return nil
	}
	value := pattern.String()
	return &value
}
