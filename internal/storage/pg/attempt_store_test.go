package pg

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/bodmaslab/bodmas-master/internal/domain"
	pkgtesting "github.com/bodmaslab/bodmas-master/pkg/testing"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
)

var (
	testCtx   context.Context
	testPool  *ConnectionPool
	testStore *AttemptStore
)

func TestMain(m *testing.M) {
	testCtx = context.Background()

	pg, err := pkgtesting.NewPGContainer(testCtx, pkgtesting.PGConfig{
		Database: "bodmas_test_db",
		Username: "test",
		Password: "test",
	})
	if err != nil {
		panic(err)
	}
	defer testcontainers.TerminateContainer(pg.Container)

	testPool, err = NewConnectionPool(testCtx, PoolConfig{ConnStr: pg.ConnString})
	if err != nil {
		panic(err)
	}
	defer testPool.Close()

	testStore, err = NewAttemptStore(testPool)
	if err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func truncateTable(t *testing.T) {
	t.Helper()
	_, err := testPool.GetConn().Exec(testCtx, "TRUNCATE TABLE attempts")
	if err != nil {
		t.Fatalf("failed to truncate table: %v", err)
	}
}

func TestAttemptStore_Save(t *testing.T) {
	truncateTable(t)
	defer truncateTable(t)

	questionID := 1
	id, err := testStore.Save(testCtx, domain.Attempt{
		QuestionID:    &questionID,
		Expression:    "2 + 3 * 4",
		Concept:       "Multiplication before Addition",
		GivenAnswer:   20,
		CorrectAnswer: 14,
		Correct:       false,
		Pattern:       domain.IgnoredPrecedence,
	})
	if err != nil {
		t.Fatalf("failed to save attempt: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected a generated attempt id")
	}

	result, err := testStore.List(testCtx, 1, 10)
	if err != nil {
		t.Fatalf("failed to list attempts: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(result.Items))
	}

	got := result.Items[0]
	if got.ID != id {
		t.Errorf("expected id %s, got %s", id, got.ID)
	}
	if got.QuestionID == nil || *got.QuestionID != questionID {
		t.Errorf("expected question id %d, got %v", questionID, got.QuestionID)
	}
	if got.Expression != "2 + 3 * 4" {
		t.Errorf("expected expression '2 + 3 * 4', got %q", got.Expression)
	}
	if got.Pattern != domain.IgnoredPrecedence {
		t.Errorf("expected pattern %q, got %q", domain.IgnoredPrecedence, got.Pattern)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestAttemptStore_Save_Defaults(t *testing.T) {
	truncateTable(t)
	defer truncateTable(t)

	id, err := testStore.Save(testCtx, domain.Attempt{
		Expression:    "18 / (4 + 2)",
		GivenAnswer:   3,
		CorrectAnswer: 3,
		Correct:       true,
	})
	if err != nil {
		t.Fatalf("failed to save attempt: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("expected a generated attempt id")
	}

	result, err := testStore.List(testCtx, 1, 10)
	if err != nil {
		t.Fatalf("failed to list attempts: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(result.Items))
	}

	got := result.Items[0]
	if got.Concept != domain.ConceptCustom {
		t.Errorf("expected concept %q, got %q", domain.ConceptCustom, got.Concept)
	}
	if got.QuestionID != nil {
		t.Errorf("expected nil question id, got %v", *got.QuestionID)
	}
	if got.Pattern != "" {
		t.Errorf("expected empty pattern, got %q", got.Pattern)
	}
}

func TestAttemptStore_List_Pagination(t *testing.T) {
	truncateTable(t)
	defer truncateTable(t)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expressions := []string{"1 + 1", "2 + 2", "3 + 3"}
	for i, expr := range expressions {
		_, err := testStore.Save(testCtx, domain.Attempt{
			Expression:    expr,
			Concept:       domain.ConceptCustom,
			GivenAnswer:   float64(2 * (i + 1)),
			CorrectAnswer: float64(2 * (i + 1)),
			Correct:       true,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("failed to save attempt: %v", err)
		}
	}

	first, err := testStore.List(testCtx, 1, 2)
	if err != nil {
		t.Fatalf("failed to list attempts: %v", err)
	}
	if first.Total != 3 {
		t.Errorf("expected total 3, got %d", first.Total)
	}
	if len(first.Items) != 2 {
		t.Fatalf("expected 2 attempts on first page, got %d", len(first.Items))
	}
	if first.Items[0].Expression != "3 + 3" {
		t.Errorf("expected newest attempt first, got %q", first.Items[0].Expression)
	}
	if !first.HasMore {
		t.Error("expected more pages")
	}

	second, err := testStore.List(testCtx, 2, 2)
	if err != nil {
		t.Fatalf("failed to list attempts: %v", err)
	}
	if len(second.Items) != 1 {
		t.Fatalf("expected 1 attempt on second page, got %d", len(second.Items))
	}
	if second.Items[0].Expression != "1 + 1" {
		t.Errorf("expected oldest attempt last, got %q", second.Items[0].Expression)
	}
	if second.HasMore {
		t.Error("expected no more pages")
	}
}

func TestAttemptStore_Summary(t *testing.T) {
	truncateTable(t)
	defer truncateTable(t)

	attempts := []domain.Attempt{
		{Expression: "2 + 3 * 4", Concept: "Multiplication before Addition", GivenAnswer: 14, CorrectAnswer: 14, Correct: true},
		{Expression: "5 + 2 * 3", Concept: "Multiplication before Addition", GivenAnswer: 21, CorrectAnswer: 11, Correct: false},
		{Expression: "(2 + 3) * 4", Concept: "Brackets First", GivenAnswer: 20, CorrectAnswer: 20, Correct: true},
	}
	for _, attempt := range attempts {
		if _, err := testStore.Save(testCtx, attempt); err != nil {
			t.Fatalf("failed to save attempt: %v", err)
		}
	}

	summary, err := testStore.Summary(testCtx)
	if err != nil {
		t.Fatalf("failed to summarize attempts: %v", err)
	}
	if len(summary) != 2 {
		t.Fatalf("expected 2 concepts, got %d", len(summary))
	}

	if summary[0].Concept != "Brackets First" {
		t.Errorf("expected concepts ordered by name, got %q first", summary[0].Concept)
	}
	if summary[0].Attempts != 1 || summary[0].Correct != 1 {
		t.Errorf("unexpected stats for %q: %d/%d", summary[0].Concept, summary[0].Correct, summary[0].Attempts)
	}
	if summary[0].Mastery != 1 {
		t.Errorf("expected mastery 1, got %v", summary[0].Mastery)
	}

	if summary[1].Concept != "Multiplication before Addition" {
		t.Errorf("expected %q second, got %q", "Multiplication before Addition", summary[1].Concept)
	}
	if summary[1].Attempts != 2 || summary[1].Correct != 1 {
		t.Errorf("unexpected stats for %q: %d/%d", summary[1].Concept, summary[1].Correct, summary[1].Attempts)
	}
	if summary[1].Mastery != 0.5 {
		t.Errorf("expected mastery 0.5, got %v", summary[1].Mastery)
	}
}
