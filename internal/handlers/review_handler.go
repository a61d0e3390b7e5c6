package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ohtu-ilmo/review-service/internal/services"
	"github.com/ohtu-ilmo/review-service/internal/utils"
)

type ReviewHandler struct {
	reviews services.ReviewService
	exports services.ExportService
	logger  utils.Logger
}

func NewReviewHandler(reviews services.ReviewService, exports services.ExportService, logger utils.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		exports: exports,
		logger:  logger,
	}
}

// createReviewBody matches the wire shape the review client submits.
type createReviewBody struct {
	InstructorReview services.CreateReviewRequest `json:"instructorReview" binding:"required"`
}

// CreateReview stores one submitted answer sheet. A repeated submission for
// the same group by the same reviewer gets 409 with the reason.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var body createReviewBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	rev, err := h.reviews.Create(c.Request.Context(), &body.InstructorReview)
	if err != nil {
		h.logger.LogError(err, "failed to create instructor review",
			"group_id", body.InstructorReview.GroupID)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Instructor review saved",
		Data:    rev,
	})
}

// GetReview returns one stored review with its answer sheet.
func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, ok := ParseUintParam(c, "id")
	if !ok {
		return
	}

	rev, err := h.reviews.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rev)
}

// GetAnsweredGroupIDs returns the group ids a reviewer has submitted, the
// set the client subtracts to find its pending groups.
func (h *ReviewHandler) GetAnsweredGroupIDs(c *gin.Context) {
	reviewerID, ok := RequireQuery(c, "reviewer_id")
	if !ok {
		return
	}

	ids, err := h.reviews.GetAnsweredGroupIDs(c.Request.Context(), reviewerID)
	if err != nil {
		h.logger.LogError(err, "failed to get answered group ids", "reviewer_id", reviewerID)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

// GetGroups lists the groups assigned to an instructor.
func (h *ReviewHandler) GetGroups(c *gin.Context) {
	instructorID, ok := RequireQuery(c, "instructor_id")
	if !ok {
		return
	}

	groups, err := h.reviews.GetGroupsForInstructor(c.Request.Context(), instructorID)
	if err != nil {
		h.logger.LogError(err, "failed to get groups", "instructor_id", instructorID)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// ExportReview streams one review as an .xlsx report.
func (h *ReviewHandler) ExportReview(c *gin.Context) {
	id, ok := ParseUintParam(c, "id")
	if !ok {
		return
	}

	data, filename, err := h.exports.ExportReviewToExcel(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
