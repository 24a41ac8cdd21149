package domain

// Question is a practice expression with its recorded answer and the
// BODMAS concept it exercises.
type Question struct {
	ID            int        `json:"id" yaml:"id"`
	Expression    string     `json:"expression" yaml:"expression"`
	Difficulty    Difficulty `json:"difficulty" yaml:"difficulty"`
	Concept       string     `json:"concept" yaml:"concept"`
	CorrectAnswer float64    `json:"correctAnswer" yaml:"answer"`
}
