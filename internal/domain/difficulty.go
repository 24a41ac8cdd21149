package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return "", fmt.Errorf("invalid difficulty: %q (must be one of Easy, Medium, Hard)", s)
	}
}

func (d Difficulty) String() string {
	return string(d)
}

func (d Difficulty) Validate() error {
	if d != Easy && d != Medium && d != Hard {
		return fmt.Errorf("invalid difficulty: %q (must be one of Easy, Medium, Hard)", d)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler for JSON and YAML serialization
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON deserialization
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler so bank files can spell
// difficulties in any case.
func (d *Difficulty) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
