package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourQuestionTemplate() *Template {
	return &Template{
		Questions: []Question{
			{Type: QuestionNumber, Header: "Grade"},
			{Type: QuestionText, Header: "Strengths"},
			{Type: QuestionText, Header: "Weaknesses"},
			{Type: QuestionInfo, Header: "Scale"},
		},
	}
}

func TestSheetStore_GetBeforeReplace(t *testing.T) {
	store := NewSheetStore()

	_, ok := store.Get()
	assert.False(t, ok)

	_, err := store.UpdateCell(0, 0, "x")
	assert.ErrorIs(t, err, ErrNoActiveSheet)
}

func TestSheetStore_UpdateCellIndependence(t *testing.T) {
	store := NewSheetStore()
	before := BuildSheet(testRoster("A", "B", "C"), fourQuestionTemplate())
	store.Replace(before)

	after, err := store.UpdateCell(1, 2, "hello")
	require.NoError(t, err)

	// Exactly one cell changed.
	assert.Equal(t, "hello", after[1].Answers[2].Text)
	for si, record := range after {
		for qi, slot := range record.Answers {
			if si == 1 && qi == 2 {
				continue
			}
			assert.Equal(t, before[si].Answers[qi], slot, "slot (%d,%d) changed", si, qi)
		}
	}

	// Untouched student records share their answer storage with the old
	// sheet; only student 1 got a fresh slice.
	assert.Same(t, &before[0].Answers[0], &after[0].Answers[0])
	assert.Same(t, &before[2].Answers[0], &after[2].Answers[0])
	assert.NotSame(t, &before[1].Answers[0], &after[1].Answers[0])

	// The old sheet is still valid for a reader holding it.
	assert.Equal(t, "", before[1].Answers[2].Text)
}

func TestSheetStore_UpdateOrdering(t *testing.T) {
	store := NewSheetStore()
	store.Replace(BuildSheet(testRoster("A"), fourQuestionTemplate()))

	_, err := store.UpdateCell(0, 1, "first")
	require.NoError(t, err)
	_, err = store.UpdateCell(0, 1, "second")
	require.NoError(t, err)
	_, err = store.UpdateCell(0, 0, 3)
	require.NoError(t, err)

	sheet, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, "second", sheet[0].Answers[1].Text)
	assert.Equal(t, 3, sheet[0].Answers[0].Number)
}

func TestSheetStore_OutOfRangeAborts(t *testing.T) {
	store := NewSheetStore()
	before := BuildSheet(testRoster("A", "B"), fourQuestionTemplate())
	store.Replace(before)

	_, err := store.UpdateCell(99, 0, "x")
	assert.True(t, IsContractViolation(err), "expected contract violation, got %v", err)

	_, err = store.UpdateCell(0, 99, "x")
	assert.True(t, IsContractViolation(err))

	_, err = store.UpdateCell(-1, 0, "x")
	assert.True(t, IsContractViolation(err))

	// Store unchanged after every failed update.
	sheet, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, before, sheet)
}

func TestSheetStore_TypeMismatchAborts(t *testing.T) {
	store := NewSheetStore()
	store.Replace(BuildSheet(testRoster("A"), fourQuestionTemplate()))

	t.Run("text into number slot", func(t *testing.T) {
		_, err := store.UpdateCell(0, 0, "not a number")
		assert.True(t, IsContractViolation(err))
	})

	t.Run("number into text slot", func(t *testing.T) {
		_, err := store.UpdateCell(0, 1, 42)
		assert.True(t, IsContractViolation(err))
	})

	t.Run("info slot is read-only", func(t *testing.T) {
		_, err := store.UpdateCell(0, 3, "anything")
		assert.True(t, IsContractViolation(err))
	})
}

func TestSheetStore_NumberAcceptsJSONFloat(t *testing.T) {
	store := NewSheetStore()
	store.Replace(BuildSheet(testRoster("A"), fourQuestionTemplate()))

	sheet, err := store.UpdateCell(0, 0, float64(4))
	require.NoError(t, err)
	assert.Equal(t, 4, sheet[0].Answers[0].Number)
}

func TestSheetStore_ReplaceSupersedesSheet(t *testing.T) {
	store := NewSheetStore()
	store.Replace(BuildSheet(testRoster("A"), fourQuestionTemplate()))

	_, err := store.UpdateCell(0, 1, "draft edit")
	require.NoError(t, err)

	store.Replace(BuildSheet(testRoster("B", "C"), fourQuestionTemplate()))

	sheet, ok := store.Get()
	require.True(t, ok)
	require.Len(t, sheet, 2)
	assert.Equal(t, "", sheet[0].Answers[1].Text)
}
