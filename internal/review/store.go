package review

import "fmt"

// SheetStore holds the answer sheet for the currently selected group. The
// sheet is replaced wholesale on group switch; addressed updates are
// copy-on-write so a reader holding the previous sheet never observes a
// partial update.
type SheetStore struct {
	sheet   Sheet
	present bool
}

func NewSheetStore() *SheetStore {
	return &SheetStore{}
}

// Get returns the current sheet. The second result is false before the
// first Replace and after Clear.
func (s *SheetStore) Get() (Sheet, bool) {
	return s.sheet, s.present
}

// Replace swaps in a new sheet, discarding the previous one entirely.
func (s *SheetStore) Replace(sheet Sheet) {
	s.sheet = sheet
	s.present = true
}

// Clear drops the current sheet.
func (s *SheetStore) Clear() {
	s.sheet = nil
	s.present = false
}

// UpdateCell replaces the answer at (studentIndex, questionID) and installs
// the resulting sheet as current. Only the path to the target slot is
// copied: untouched student records keep their identity, and the target
// student's other slots keep their values. The previous sheet remains valid
// for anyone still holding it. Out-of-range indices, updates to info slots,
// and values of the wrong primitive type are contract violations; the store
// is left unchanged in every error case.
func (s *SheetStore) UpdateCell(studentIndex, questionID int, value interface{}) (Sheet, error) {
	if !s.present {
		return nil, ErrNoActiveSheet
	}
	if studentIndex < 0 || studentIndex >= len(s.sheet) {
		return nil, newIndexViolation("UpdateCell(student)", studentIndex, len(s.sheet))
	}
	record := s.sheet[studentIndex]
	if questionID < 0 || questionID >= len(record.Answers) {
		return nil, newIndexViolation("UpdateCell(question)", questionID, len(record.Answers))
	}

	slot := record.Answers[questionID]
	updated, err := withAnswer(slot, value)
	if err != nil {
		return nil, err
	}

	next := make(Sheet, len(s.sheet))
	copy(next, s.sheet)

	answers := make([]AnswerSlot, len(record.Answers))
	copy(answers, record.Answers)
	answers[questionID] = updated

	next[studentIndex] = StudentRecord{Name: record.Name, Answers: answers}

	s.sheet = next
	return next, nil
}

func withAnswer(slot AnswerSlot, value interface{}) (AnswerSlot, error) {
	switch slot.Type {
	case QuestionText:
		text, ok := value.(string)
		if !ok {
			return slot, typeViolation(slot, value, "string")
		}
		slot.Text = text
	case QuestionNumber:
		switch n := value.(type) {
		case int:
			slot.Number = n
		case float64:
			// JSON-decoded numbers arrive as float64.
			slot.Number = int(n)
		default:
			return slot, typeViolation(slot, value, "number")
		}
	case QuestionInfo:
		return slot, &ContractViolationError{
			Op:     "UpdateCell",
			Index:  slot.ID,
			Reason: fmt.Sprintf("slot %d is an info question and carries no answer", slot.ID),
		}
	}
	return slot, nil
}

func typeViolation(slot AnswerSlot, value interface{}, want string) *ContractViolationError {
	return &ContractViolationError{
		Op:     "UpdateCell",
		Index:  slot.ID,
		Reason: fmt.Sprintf("slot %d expects a %s answer, got %T", slot.ID, want, value),
	}
}
