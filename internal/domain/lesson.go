package domain

// Lesson is the learning material for one BODMAS concept.
type Lesson struct {
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Rule           string   `json:"rule"`
	Example        string   `json:"example"`
	CommonMistakes []string `json:"commonMistakes"`
}
