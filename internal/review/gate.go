package review

import "context"

// GroupInfo is the coordinator's view of one group assigned to the
// reviewer: identity, display name, and roster.
type GroupInfo struct {
	ID       uint          `json:"id"`
	Name     string        `json:"group_name"`
	Students []StudentName `json:"students"`
}

// ReviewRecord is the write-once package handed to the persistence
// collaborator when a sheet is submitted. It is never mutated afterwards.
type ReviewRecord struct {
	GroupID     uint   `json:"group_id"`
	GroupName   string `json:"group_name"`
	AnswerSheet Sheet  `json:"answer_sheet"`
	ReviewerID  string `json:"user_id"`
}

// Session carries the identity of the reviewer the coordinator acts for.
// It is handed in at construction instead of being read from ambient
// storage mid-operation.
type Session struct {
	ReviewerID string
}

// Collaborators are the external calls the review core depends on. Every
// failure is reported as a *TransportError.
type Collaborators interface {
	FetchGroupsForInstructor(ctx context.Context) ([]GroupInfo, error)
	FetchAnsweredGroupIDs(ctx context.Context) ([]uint, error)
	PersistReview(ctx context.Context, record *ReviewRecord) error
}

// ConfirmFunc asks the reviewer to confirm an irreversible submission.
// Returning false cancels the submission with no state change.
type ConfirmFunc func() bool

// SubmissionGate packages a finished sheet into a ReviewRecord and hands it
// to the persistence collaborator, after explicit confirmation. At-most-once
// per group is ultimately enforced by the backend's existing-answer check;
// the gate's job is confirmation and packaging.
type SubmissionGate struct {
	session Session
	confirm ConfirmFunc
	collabs Collaborators
}

func NewSubmissionGate(session Session, confirm ConfirmFunc, collabs Collaborators) *SubmissionGate {
	return &SubmissionGate{
		session: session,
		confirm: confirm,
		collabs: collabs,
	}
}

// Submit confirms intent, builds the write-once record and persists it.
// A declined confirmation returns ErrSubmissionCancelled and changes
// nothing; a collaborator failure is returned as a *TransportError and the
// sheet stays editable for a retry.
func (g *SubmissionGate) Submit(ctx context.Context, sheet Sheet, groupName string, groupID uint) (*ReviewRecord, error) {
	if !g.confirm() {
		return nil, ErrSubmissionCancelled
	}

	record := &ReviewRecord{
		GroupID:     groupID,
		GroupName:   groupName,
		AnswerSheet: sheet,
		ReviewerID:  g.session.ReviewerID,
	}

	if err := g.collabs.PersistReview(ctx, record); err != nil {
		if IsTransport(err) {
			return nil, err
		}
		return nil, NewTransportError("persist review", err)
	}
	return record, nil
}
