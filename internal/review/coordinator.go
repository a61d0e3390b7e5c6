package review

import (
	"context"
	"log/slog"
)

type State string

const (
	StateLoading           State = "loading"
	StateAwaitingSelection State = "awaiting_selection"
	StateFullyReviewed     State = "fully_reviewed"
	StateError             State = "error"
)

// Snapshot is the coordinator state exposed to the presentation layer.
// Sheet and Groups are only meaningful in StateAwaitingSelection; Message
// only in StateError.
type Snapshot struct {
	State         State       `json:"state"`
	Groups        []GroupInfo `json:"groups,omitempty"`
	SelectedIndex int         `json:"selected_index"`
	Sheet         Sheet       `json:"answer_sheet,omitempty"`
	Message       string      `json:"message,omitempty"`
}

// Coordinator drives one reviewer's pass over their pending groups:
// Loading -> AwaitingSelection (one sheet active) -> FullyReviewed, with a
// transient Error state on collaborator failure during load. Selection and
// submission are serialized; all methods are meant for a single caller.
type Coordinator struct {
	session  Session
	template *Template
	collabs  Collaborators
	gate     *SubmissionGate
	store    *SheetStore
	logger   *slog.Logger

	state      State
	groups     []GroupInfo
	selected   int
	errMessage string
	submitting bool
}

func NewCoordinator(session Session, tpl *Template, collabs Collaborators, confirm ConfirmFunc, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		session:  session,
		template: tpl,
		collabs:  collabs,
		gate:     NewSubmissionGate(session, confirm, collabs),
		store:    NewSheetStore(),
		logger:   logger,
	}
}

// Snapshot reports the current state for rendering.
func (c *Coordinator) Snapshot() Snapshot {
	snap := Snapshot{State: c.state, SelectedIndex: c.selected}
	switch c.state {
	case StateAwaitingSelection:
		snap.Groups = c.groups
		if sheet, ok := c.store.Get(); ok {
			snap.Sheet = sheet
		}
	case StateError:
		snap.Message = c.errMessage
	}
	return snap
}

// Start fetches the reviewer's groups and the already-answered group IDs,
// keeps only the pending groups, and builds the sheet for the first one.
// All groups answered means FullyReviewed; no groups assigned means an
// empty AwaitingSelection, not an error and not FullyReviewed.
func (c *Coordinator) Start(ctx context.Context) error {
	c.state = StateLoading

	groups, err := c.collabs.FetchGroupsForInstructor(ctx)
	if err != nil {
		return c.fail("fetch groups", err)
	}
	answered, err := c.collabs.FetchAnsweredGroupIDs(ctx)
	if err != nil {
		return c.fail("fetch answered group ids", err)
	}

	pending := pendingGroups(groups, answered)
	c.logger.Info("review coordinator started",
		"reviewer_id", c.session.ReviewerID,
		"groups", len(groups),
		"pending", len(pending))

	if len(groups) > 0 && len(pending) == 0 {
		c.state = StateFullyReviewed
		return nil
	}

	c.groups = pending
	c.selected = 0
	c.state = StateAwaitingSelection
	if len(pending) > 0 {
		c.store.Replace(BuildSheet(pending[0].Students, c.template))
	}
	return nil
}

// SelectGroup switches the active group and rebuilds its sheet from
// defaults. Unsaved edits in the previous sheet are discarded; drafts are
// not persisted.
func (c *Coordinator) SelectGroup(index int) error {
	if c.state != StateAwaitingSelection {
		return ErrNotAwaitingSelection
	}
	if c.submitting {
		return ErrSubmissionInFlight
	}
	if index < 0 || index >= len(c.groups) {
		return newIndexViolation("SelectGroup", index, len(c.groups))
	}

	c.selected = index
	c.store.Replace(BuildSheet(c.groups[index].Students, c.template))
	return nil
}

// UpdateCell writes one answer into the active sheet.
func (c *Coordinator) UpdateCell(studentIndex, questionID int, value interface{}) error {
	if c.state != StateAwaitingSelection {
		return ErrNotAwaitingSelection
	}
	_, err := c.store.UpdateCell(studentIndex, questionID, value)
	return err
}

// Submit runs the submission gate for the selected group. On success the
// group leaves the local pending set and the coordinator either rebuilds a
// fresh sheet for the next pending group or reaches FullyReviewed. On
// cancellation or collaborator failure nothing changes and the sheet stays
// editable.
func (c *Coordinator) Submit(ctx context.Context) (*ReviewRecord, error) {
	if c.state != StateAwaitingSelection {
		return nil, ErrNotAwaitingSelection
	}
	if c.submitting {
		return nil, ErrSubmissionInFlight
	}
	if len(c.groups) == 0 {
		return nil, ErrNoGroupSelected
	}
	sheet, ok := c.store.Get()
	if !ok {
		return nil, ErrNoActiveSheet
	}

	c.submitting = true
	defer func() { c.submitting = false }()

	group := c.groups[c.selected]
	record, err := c.gate.Submit(ctx, sheet, group.Name, group.ID)
	if err != nil {
		if err != ErrSubmissionCancelled {
			c.logger.Error("review submission failed",
				"group_id", group.ID,
				"error", err)
		}
		return nil, err
	}

	c.logger.Info("review submitted",
		"group_id", group.ID,
		"group_name", group.Name,
		"reviewer_id", c.session.ReviewerID)

	remaining := make([]GroupInfo, 0, len(c.groups)-1)
	for _, g := range c.groups {
		if g.ID != group.ID {
			remaining = append(remaining, g)
		}
	}
	c.groups = remaining
	c.selected = 0

	if len(remaining) == 0 {
		c.store.Clear()
		c.state = StateFullyReviewed
		return record, nil
	}

	c.store.Replace(BuildSheet(remaining[0].Students, c.template))
	return record, nil
}

func (c *Coordinator) fail(op string, err error) error {
	te, ok := err.(*TransportError)
	if !ok {
		te = NewTransportError(op, err)
	}
	c.state = StateError
	c.errMessage = te.Message
	c.logger.Error("review coordinator load failed", "op", op, "error", err)
	return te
}

func pendingGroups(groups []GroupInfo, answered []uint) []GroupInfo {
	done := make(map[uint]struct{}, len(answered))
	for _, id := range answered {
		done[id] = struct{}{}
	}
	pending := make([]GroupInfo, 0, len(groups))
	for _, g := range groups {
		if _, ok := done[g.ID]; !ok {
			pending = append(pending, g)
		}
	}
	return pending
}
