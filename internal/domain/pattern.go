package domain

import "fmt"

// ErrorPattern classifies a recurring misconception behind a wrong answer.
type ErrorPattern string

const (
	// IgnoredBrackets means the student skipped brackets that should be
	// evaluated first.
	IgnoredBrackets ErrorPattern = "ignored_brackets"

	// IgnoredPrecedence means the student applied a lower-precedence
	// operation while a higher one was available.
	IgnoredPrecedence ErrorPattern = "ignored_precedence"
)

func ParseErrorPattern(s string) (ErrorPattern, error) {
	p := ErrorPattern(s)
	switch p {
	case IgnoredBrackets, IgnoredPrecedence:
		return p, nil
	default:
		return "", fmt.Errorf("unknown error pattern: %q", s)
	}
}

func (p ErrorPattern) String() string {
	return string(p)
}

// ReviewConcept returns the lesson slug a student should revisit for
// the pattern.
func (p ErrorPattern) ReviewConcept() string {
	switch p {
	case IgnoredBrackets:
		return "brackets"
	case IgnoredPrecedence:
		return "division_multiplication"
	default:
		return ""
	}
}

// FeedbackAction is a tutoring action suggested in response to a wrong
// answer.
type FeedbackAction string

const (
	GiveConceptHint       FeedbackAction = "concept_hint"
	ShowWorkedExample     FeedbackAction = "worked_example"
	SuggestSimplerProblem FeedbackAction = "simpler_problem"
)

// Text returns the student-facing sentence for the action.
func (a FeedbackAction) Text() string {
	switch a {
	case GiveConceptHint:
		return "Remember BODMAS: solve brackets and orders before multiplication, division, addition and subtraction."
	case ShowWorkedExample:
		return "Let's walk through a similar expression step by step."
	case SuggestSimplerProblem:
		return "Let's try a simpler expression with the same idea, then come back to this one."
	default:
		return ""
	}
}

// SuggestedActions maps a pattern to its tutoring actions.
func (p ErrorPattern) SuggestedActions() []FeedbackAction {
	switch p {
	case IgnoredBrackets, IgnoredPrecedence:
		return []FeedbackAction{GiveConceptHint, ShowWorkedExample}
	default:
		return []FeedbackAction{SuggestSimplerProblem}
	}
}
