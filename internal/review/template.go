package review

import (
	"encoding/json"
	"fmt"
	"os"
)

type QuestionType string

const (
	QuestionText   QuestionType = "text"
	QuestionNumber QuestionType = "number"
	QuestionInfo   QuestionType = "info"
)

// Question is one descriptor in the review template. The template is static
// for a session; a question's identity is its position in the list.
type Question struct {
	Type        QuestionType `json:"type" validate:"required,question_type"`
	Header      string       `json:"header" validate:"required"`
	Description string       `json:"description"`
}

// Template is the ordered question list all answer sheets are built from.
type Template struct {
	Version   string     `json:"version"`
	Questions []Question `json:"questions"`
}

// LoadTemplate reads a review template from a versioned JSON file and
// rejects unknown question types up front so sheets never carry them.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}

	var tpl Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("failed to parse template file: %w", err)
	}

	for i, q := range tpl.Questions {
		switch q.Type {
		case QuestionText, QuestionNumber, QuestionInfo:
		default:
			return nil, fmt.Errorf("question %d: unknown question type %q", i, q.Type)
		}
		if q.Header == "" {
			return nil, fmt.Errorf("question %d: header is required", i)
		}
	}

	return &tpl, nil
}
