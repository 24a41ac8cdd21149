package router

import (
	"github.com/bodmaslab/bodmas-master/internal/solver"
	"github.com/bodmaslab/bodmas-master/internal/storage"
	"github.com/bodmaslab/bodmas-master/internal/tutor"
	"github.com/labstack/echo/v4"
)

type TutorRouterOption func(*TutorRouter)

// WithAttemptStore enables attempt tracking: answered questions are
// persisted and the /api/attempts endpoints are bound.
func WithAttemptStore(store storage.Store) TutorRouterOption {
	return func(r *TutorRouter) {
		r.store = store
	}
}

type TutorRouter struct {
	e       *echo.Echo
	solver  *solver.Solver
	checker *tutor.Checker
	bank    *tutor.Bank
	lessons *tutor.Lessons
	store   storage.Store
}

func NewTutorRouter(e *echo.Echo, sv *solver.Solver, bank *tutor.Bank, lessons *tutor.Lessons, opts ...TutorRouterOption) *TutorRouter {
	r := &TutorRouter{
		e:       e,
		solver:  sv,
		checker: tutor.NewChecker(sv),
		bank:    bank,
		lessons: lessons,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *TutorRouter) Bind() {
	r.e.POST("/api/solve", r.solveHandler)
	r.e.GET("/api/questions", r.questionsHandler)
	r.e.POST("/api/check-answer", r.checkAnswerHandler)
	r.e.GET("/api/learn/:concept", r.learnHandler)

	if r.store != nil {
		r.e.GET("/api/attempts", r.attemptsHandler)
		r.e.GET("/api/attempts/summary", r.summaryHandler)
	}
}
