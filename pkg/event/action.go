package event

type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionMoveLeft
	ActionMoveRight
	ActionRotate
	ActionSoftDrop
	ActionHardDrop
	ActionPause
	ActionReset
	ActionStart
)

func (a GameAction) String() string {
	switch a {
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionStart:
		return "Start"
	default:
		return "Unknown"
	}
}
