package tutor

import "github.com/bodmaslab/bodmas-master/internal/domain"

// Lessons is the static learning material, keyed by concept slug.
type Lessons struct {
	bySlug map[string]domain.Lesson
	order  []string
}

func NewLessons() *Lessons {
	lessons := []domain.Lesson{
		{
			Slug:        "brackets",
			Title:       "Understanding Brackets",
			Description: "Brackets show which calculation to do first",
			Rule:        "Always solve what is inside brackets before doing anything else",
			Example:     "(2 + 3) × 4 = 5 × 4 = 20, NOT 2 + (3 × 4) = 2 + 12 = 14",
			CommonMistakes: []string{
				"Ignoring brackets",
				"Solving outside brackets first",
			},
		},
		{
			Slug:        "orders",
			Title:       "Understanding Orders (Exponents)",
			Description: "Orders means powers, roots, and other similar operations",
			Rule:        "Solve exponents and powers before multiplication/division",
			Example:     "2 × 3² = 2 × 9 = 18, NOT (2 × 3)² = 6² = 36",
			CommonMistakes: []string{
				"Treating exponents as multiplication",
				"Wrong order of operations",
			},
		},
		{
			Slug:        "division_multiplication",
			Title:       "Division and Multiplication",
			Description: "These operations have equal priority and are done left to right",
			Rule:        "Do multiplication and division from left to right, before addition/subtraction",
			Example:     "12 ÷ 2 × 3 = 6 × 3 = 18, NOT 12 ÷ (2 × 3) = 12 ÷ 6 = 2",
			CommonMistakes: []string{
				"Wrong order",
				"Not going left to right",
			},
		},
		{
			Slug:        "addition_subtraction",
			Title:       "Addition and Subtraction",
			Description: "These are done last and from left to right",
			Rule:        "Do addition and subtraction from left to right, after all other operations",
			Example:     "10 - 2 + 3 = 8 + 3 = 11, NOT 10 - (2 + 3) = 10 - 5 = 5",
			CommonMistakes: []string{
				"Wrong order",
				"Not going left to right",
			},
		},
	}

	bySlug := make(map[string]domain.Lesson, len(lessons))
	order := make([]string, 0, len(lessons))
	for _, l := range lessons {
		bySlug[l.Slug] = l
		order = append(order, l.Slug)
	}

	return &Lessons{
		bySlug: bySlug,
		order:  order,
	}
}

// Lookup returns the lesson for a concept slug.
func (l *Lessons) Lookup(slug string) (domain.Lesson, bool) {
	lesson, ok := l.bySlug[slug]
	return lesson, ok
}

// Slugs returns the known concept slugs in presentation order.
func (l *Lessons) Slugs() []string {
	return l.order
}
