package domain

type ModerationAction string

const (
	ActionToggleBlock ModerationAction = "toggle_block"
	ActionApprove     ModerationAction = "approve"
	ActionReject      ModerationAction = "reject"
	ActionDelete      ModerationAction = "delete"
)

func (a ModerationAction) Valid() bool {
	switch a {
	case ActionToggleBlock, ActionApprove, ActionReject, ActionDelete:
		return true
	default:
		return false
	}
}

// ActionResult carries the server-confirmed outcome of a moderation
// action. Status is the authoritative resulting state; it is empty for
// deletes, where Removed is set instead.
type ActionResult struct {
	Status  ModerationStatus
	Removed bool
	Message string
}
