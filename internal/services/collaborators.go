package services

import (
	"context"

	"github.com/ohtu-ilmo/review-service/internal/review"
)

// serviceCollaborators adapts the service layer to the review core's
// collaborator interfaces, so a Coordinator can run in-process against the
// same storage the HTTP API serves. Failures cross the boundary as
// *review.TransportError, which is all the core knows about.
type serviceCollaborators struct {
	reviews ReviewService
	session review.Session
}

// NewCollaborators builds the collaborator set for one reviewer session.
func NewCollaborators(reviews ReviewService, session review.Session) review.Collaborators {
	return &serviceCollaborators{
		reviews: reviews,
		session: session,
	}
}

func (c *serviceCollaborators) FetchGroupsForInstructor(ctx context.Context) ([]review.GroupInfo, error) {
	groups, err := c.reviews.GetGroupsForInstructor(ctx, c.session.ReviewerID)
	if err != nil {
		return nil, review.NewTransportError("fetch groups", err)
	}
	infos := make([]review.GroupInfo, 0, len(groups))
	for _, g := range groups {
		infos = append(infos, g.Info())
	}
	return infos, nil
}

func (c *serviceCollaborators) FetchAnsweredGroupIDs(ctx context.Context) ([]uint, error) {
	ids, err := c.reviews.GetAnsweredGroupIDs(ctx, c.session.ReviewerID)
	if err != nil {
		return nil, review.NewTransportError("fetch answered group ids", err)
	}
	return ids, nil
}

func (c *serviceCollaborators) PersistReview(ctx context.Context, record *review.ReviewRecord) error {
	_, err := c.reviews.Create(ctx, &CreateReviewRequest{
		GroupID:     record.GroupID,
		GroupName:   record.GroupName,
		ReviewerID:  record.ReviewerID,
		AnswerSheet: record.AnswerSheet,
	})
	if err != nil {
		return review.NewTransportError("persist review", err)
	}
	return nil
}
