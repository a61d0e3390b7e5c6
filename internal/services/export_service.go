package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/ohtu-ilmo/review-service/internal/repositories"
	"github.com/ohtu-ilmo/review-service/internal/review"
)

// ExportService renders stored reviews as downloadable files.
type ExportService interface {
	ExportReviewToExcel(ctx context.Context, reviewID uint) ([]byte, string, error)
}

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

// ExportReviewToExcel writes one review as an .xlsx workbook: group and
// reviewer metadata on top, then a block per student with one row per
// answered question. Returns the file bytes and a suggested filename.
func (s *exportService) ExportReviewToExcel(ctx context.Context, reviewID uint) ([]byte, string, error) {
	rev, err := s.repo.Review().GetByID(ctx, reviewID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, "", ErrReviewNotFound
		}
		return nil, "", fmt.Errorf("failed to get review: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Instructor Review"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create style: %w", err)
	}

	row := 1
	setRow := func(values ...interface{}) {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetSheetRow(sheetName, cell, &values)
		row++
	}

	f.SetCellStyle(sheetName, "A1", "A3", headerStyle)
	setRow("Group", rev.GroupName)
	setRow("Reviewer", rev.ReviewerID)
	setRow("Submitted", rev.CreatedAt.Format("2006-01-02 15:04"))
	row++

	sheet := rev.AnswerSheet.Data()
	for _, record := range sheet {
		nameCell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellStyle(sheetName, nameCell, nameCell, headerStyle)
		setRow(record.Name.String())

		for _, slot := range record.Answers {
			if slot.Type == review.QuestionInfo {
				continue
			}
			setRow(slot.Header, slot.Answer())
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("instructor-review-%d.xlsx", rev.ID)
	s.logger.Info("Review exported", "review_id", rev.ID, "students", len(sheet))
	return buf.Bytes(), filename, nil
}
