package camera

import "github.com/go-gl/mathgl/mgl32"

// CommandKind enumerates the movement and rotation intents a camera accepts.
type CommandKind int

const (
	CommandMoveForward CommandKind = iota
	CommandMoveBack
	CommandMoveLeft
	CommandMoveRight
	CommandMoveUp
	CommandMoveDown
	CommandRotate
	CommandZoomIn
	CommandZoomOut
	CommandSetSprint
	CommandSetLook
)

var commandNames = [...]string{
	CommandMoveForward: "MoveForward",
	CommandMoveBack:    "MoveBack",
	CommandMoveLeft:    "MoveLeft",
	CommandMoveRight:   "MoveRight",
	CommandMoveUp:      "MoveUp",
	CommandMoveDown:    "MoveDown",
	CommandRotate:      "Rotate",
	CommandZoomIn:      "ZoomIn",
	CommandZoomOut:     "ZoomOut",
	CommandSetSprint:   "SetSprint",
	CommandSetLook:     "SetLook",
}

func (k CommandKind) String() string {
	if k < 0 || int(k) >= len(commandNames) {
		return "Unknown"
	}
	return commandNames[k]
}

// Command is one discrete input for a frame. Only the field matching Kind is
// meaningful: DT for moves, Delta for Rotate, Amount for zooms, On for toggles.
type Command struct {
	Kind   CommandKind
	DT     float32 // seconds
	Delta  mgl32.Vec2
	Amount float32
	On     bool
}

func MoveForward(dt float32) Command { return Command{Kind: CommandMoveForward, DT: dt} }
func MoveBack(dt float32) Command    { return Command{Kind: CommandMoveBack, DT: dt} }
func MoveLeft(dt float32) Command    { return Command{Kind: CommandMoveLeft, DT: dt} }
func MoveRight(dt float32) Command   { return Command{Kind: CommandMoveRight, DT: dt} }
func MoveUp(dt float32) Command      { return Command{Kind: CommandMoveUp, DT: dt} }
func MoveDown(dt float32) Command    { return Command{Kind: CommandMoveDown, DT: dt} }

// Rotate carries the pointer delta accumulated since the previous frame.
func Rotate(dx, dy float32) Command {
	return Command{Kind: CommandRotate, Delta: mgl32.Vec2{dx, dy}}
}

func ZoomIn(amount float32) Command  { return Command{Kind: CommandZoomIn, Amount: amount} }
func ZoomOut(amount float32) Command { return Command{Kind: CommandZoomOut, Amount: amount} }

// SetSprint reports whether the sprint input is held this frame.
func SetSprint(on bool) Command { return Command{Kind: CommandSetSprint, On: on} }

// SetLook reports whether the look (cursor lock) input is held this frame.
func SetLook(on bool) Command { return Command{Kind: CommandSetLook, On: on} }
