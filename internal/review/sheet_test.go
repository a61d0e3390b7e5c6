package review

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTemplate() *Template {
	return &Template{
		Version: "1",
		Questions: []Question{
			{Type: QuestionNumber, Header: "Grade", Description: "Overall grade 0-5"},
			{Type: QuestionText, Header: "Feedback", Description: "Free-form feedback"},
			{Type: QuestionInfo, Header: "Scale", Description: "0 = fail, 5 = excellent"},
		},
	}
}

func testRoster(names ...string) []StudentName {
	roster := make([]StudentName, 0, len(names))
	for _, n := range names {
		roster = append(roster, StudentName{FirstNames: n, LastName: "Tester"})
	}
	return roster
}

func TestBuildSheet_DefaultInitialization(t *testing.T) {
	sheet := BuildSheet(testRoster("A", "B"), testTemplate())

	require.Len(t, sheet, 2)
	for _, record := range sheet {
		require.Len(t, record.Answers, 3)

		assert.Equal(t, QuestionNumber, record.Answers[0].Type)
		assert.Equal(t, 0, record.Answers[0].Number)

		assert.Equal(t, QuestionText, record.Answers[1].Type)
		assert.Equal(t, "", record.Answers[1].Text)

		assert.Equal(t, QuestionInfo, record.Answers[2].Type)
		assert.Equal(t, "Scale", record.Answers[2].Header)
		assert.Equal(t, "0 = fail, 5 = excellent", record.Answers[2].Description)
		assert.Nil(t, record.Answers[2].Answer())
	}

	// Slot identity is the template position.
	for _, record := range sheet {
		for id, slot := range record.Answers {
			assert.Equal(t, id, slot.ID)
		}
	}
}

func TestBuildSheet_IdempotentRebuild(t *testing.T) {
	tpl := testTemplate()
	roster := testRoster("A", "B")

	first := BuildSheet(roster, tpl)
	second := BuildSheet(roster, tpl)

	assert.Equal(t, first, second)

	// Mutating one sheet must not leak into the other.
	first[0].Answers[1].Text = "edited"
	assert.Equal(t, "", second[0].Answers[1].Text)
}

func TestBuildSheet_NoSlotAliasingAcrossStudents(t *testing.T) {
	sheet := BuildSheet(testRoster("A", "B", "C"), testTemplate())

	sheet[1].Answers[0].Number = 5
	assert.Equal(t, 0, sheet[0].Answers[0].Number)
	assert.Equal(t, 0, sheet[2].Answers[0].Number)
}

func TestBuildSheet_EmptyInputs(t *testing.T) {
	t.Run("empty roster", func(t *testing.T) {
		sheet := BuildSheet(nil, testTemplate())
		assert.Empty(t, sheet)
	})

	t.Run("empty template", func(t *testing.T) {
		sheet := BuildSheet(testRoster("A"), &Template{})
		require.Len(t, sheet, 1)
		assert.Empty(t, sheet[0].Answers)
	})
}

func TestAnswerSlot_WireShape(t *testing.T) {
	sheet := BuildSheet(testRoster("A"), testTemplate())

	data, err := json.Marshal(sheet[0].Answers)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)

	assert.Equal(t, float64(0), decoded[0]["answer"])
	assert.Equal(t, "", decoded[1]["answer"])
	// Info slots are display-only and carry no answer on the wire.
	_, hasAnswer := decoded[2]["answer"]
	assert.False(t, hasAnswer)
}

func TestAnswerSlot_JSONRoundTrip(t *testing.T) {
	sheet := BuildSheet(testRoster("A"), testTemplate())
	sheet[0].Answers[0].Number = 4
	sheet[0].Answers[1].Text = "solid work"

	data, err := json.Marshal(sheet)
	require.NoError(t, err)

	var restored Sheet
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, sheet, restored)
}
