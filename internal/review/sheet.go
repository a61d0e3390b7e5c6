package review

import (
	"encoding/json"
	"fmt"
)

// StudentName identifies one roster member.
type StudentName struct {
	FirstNames string `json:"first_names"`
	LastName   string `json:"last_name"`
}

func (n StudentName) String() string {
	return n.FirstNames + " " + n.LastName
}

// AnswerSlot is one answer cell. Type is fixed at build time and selects
// which answer field is meaningful: Text for text questions, Number for
// number questions, neither for info questions (display-only passthrough).
// ID is the slot's position in the template and never changes.
type AnswerSlot struct {
	Type        QuestionType
	Header      string
	Description string
	ID          int
	Text        string
	Number      int
}

// Answer returns the active answer value, or nil for info slots.
func (s AnswerSlot) Answer() interface{} {
	switch s.Type {
	case QuestionText:
		return s.Text
	case QuestionNumber:
		return s.Number
	default:
		return nil
	}
}

type slotJSON struct {
	Type        QuestionType `json:"type"`
	Header      string       `json:"header"`
	Description string       `json:"description,omitempty"`
	ID          int          `json:"id"`
	Answer      interface{}  `json:"answer,omitempty"`
}

func (s AnswerSlot) MarshalJSON() ([]byte, error) {
	out := slotJSON{
		Type:        s.Type,
		Header:      s.Header,
		Description: s.Description,
		ID:          s.ID,
	}
	switch s.Type {
	case QuestionText:
		out.Answer = s.Text
	case QuestionNumber:
		out.Answer = s.Number
	}
	return json.Marshal(out)
}

func (s *AnswerSlot) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type        QuestionType    `json:"type"`
		Header      string          `json:"header"`
		Description string          `json:"description"`
		ID          int             `json:"id"`
		Answer      json.RawMessage `json:"answer"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.Type = raw.Type
	s.Header = raw.Header
	s.Description = raw.Description
	s.ID = raw.ID
	s.Text = ""
	s.Number = 0

	if len(raw.Answer) == 0 {
		return nil
	}
	switch raw.Type {
	case QuestionText:
		return json.Unmarshal(raw.Answer, &s.Text)
	case QuestionNumber:
		return json.Unmarshal(raw.Answer, &s.Number)
	case QuestionInfo:
		return nil
	default:
		return fmt.Errorf("unknown question type %q in answer slot %d", raw.Type, raw.ID)
	}
}

// StudentRecord pairs a roster member with one answer slot per template
// question, in template order.
type StudentRecord struct {
	Name    StudentName  `json:"name"`
	Answers []AnswerSlot `json:"answers"`
}

// Sheet is the full set of per-student answers for one group, addressed by
// roster position.
type Sheet []StudentRecord

// BuildSheet materializes a fresh answer sheet for a roster: one record per
// student, one default-initialized slot per template question. The slot
// slice is instantiated independently for every student so an update to one
// student can never leak into a sibling record. Pure; an empty roster yields
// an empty sheet and an empty template yields students with no slots.
func BuildSheet(roster []StudentName, tpl *Template) Sheet {
	sheet := make(Sheet, 0, len(roster))
	for _, name := range roster {
		answers := make([]AnswerSlot, 0, len(tpl.Questions))
		for id, q := range tpl.Questions {
			answers = append(answers, newSlot(q, id))
		}
		sheet = append(sheet, StudentRecord{Name: name, Answers: answers})
	}
	return sheet
}

func newSlot(q Question, id int) AnswerSlot {
	return AnswerSlot{
		Type:        q.Type,
		Header:      q.Header,
		Description: q.Description,
		ID:          id,
	}
}
