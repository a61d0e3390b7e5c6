package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ohtu-ilmo/review-service/internal/models"
)

func TestExportService_ExportReviewToExcel(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	svc := NewExportService(repo, discardLogger())

	sheet := submittedSheet()
	sheet[0].Answers[0].Number = 5
	sheet[0].Answers[1].Text = "excellent sprint work"

	stored := &models.InstructorReview{
		ID:          42,
		GroupID:     7,
		GroupName:   "Group A",
		ReviewerID:  "012345678",
		AnswerSheet: datatypes.NewJSONType(sheet),
	}
	repo.review.On("GetByID", ctx, uint(42)).Return(stored, nil)

	data, filename, err := svc.ExportReviewToExcel(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "instructor-review-42.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Instructor Review")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 7)

	assert.Equal(t, []string{"Group", "Group A"}, rows[0])
	assert.Equal(t, []string{"Reviewer", "012345678"}, rows[1])
	assert.Equal(t, "Ada Lovelace", rows[4][0])
	assert.Equal(t, []string{"Grade", "5"}, rows[5])
	assert.Equal(t, []string{"Feedback", "excellent sprint work"}, rows[6])
}

func TestExportService_MissingReview(t *testing.T) {
	ctx := context.Background()
	repo := newMockRepository()
	svc := NewExportService(repo, discardLogger())

	repo.review.On("GetByID", ctx, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.ExportReviewToExcel(ctx, 9)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}
