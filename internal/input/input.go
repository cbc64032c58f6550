package input

import (
	"sync"

	"mini-terrain/internal/camera"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Action represents a logical camera action, not a physical key
type Action int

// Action constants using iota
const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionSprint
	ActionLook
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// movement maps held actions to the camera command they emit, in emission order
var movement = [...]struct {
	action Action
	cmd    func(dt float32) camera.Command
}{
	{ActionMoveForward, camera.MoveForward},
	{ActionMoveBackward, camera.MoveBack},
	{ActionMoveLeft, camera.MoveLeft},
	{ActionMoveRight, camera.MoveRight},
	{ActionMoveUp, camera.MoveUp},
	{ActionMoveDown, camera.MoveDown},
}

// InputManager maps physical keys/buttons to logical actions and turns the
// frame's input into camera commands
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Mouse button to action mapping
	mouseButtonToActions map[glfw.MouseButton][]Action

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Just pressed flags (reset each frame)
	justPressed [ActionCount]bool

	// Pointer tracking
	lastCursor   mgl32.Vec2
	haveCursor   bool
	pointerDelta mgl32.Vec2

	// Scroll accumulated since the last Commands call
	scroll float32

	// ZoomStep scales one scroll notch into zoom distance
	ZoomStep float32
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
		ZoomStep:             1,
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeySpace, ActionMoveUp)
	im.BindKey(glfw.KeyLeftControl, ActionMoveDown)
	im.BindKey(glfw.KeyF, ActionSprint)
	im.BindKey(glfw.KeyEscape, ActionQuit)

	im.BindMouseButton(glfw.MouseButtonRight, ActionLook)

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action (e.g., WASD and arrow keys)
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.keyToActions, key)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

func (im *InputManager) setActions(actions []Action, isPressed bool) {
	for _, act := range actions {
		if act >= 0 && act < ActionCount {
			if isPressed && !im.currentState[act] {
				im.justPressed[act] = true
			}
			im.currentState[act] = isPressed
		}
	}
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if actions, ok := im.keyToActions[key]; ok {
		im.setActions(actions, action == glfw.Press || action == glfw.Repeat)
	}
}

// HandleMouseButtonEvent processes a mouse button event and updates internal state
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if actions, ok := im.mouseButtonToActions[button]; ok {
		im.setActions(actions, action == glfw.Press)
	}
}

// HandleCursorPos accumulates pointer motion since the previous event
func (im *InputManager) HandleCursorPos(x, y float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	pos := mgl32.Vec2{float32(x), float32(y)}
	if im.haveCursor {
		im.pointerDelta = im.pointerDelta.Add(pos.Sub(im.lastCursor))
	}
	im.lastCursor = pos
	im.haveCursor = true
}

// HandleScroll accumulates wheel motion; positive is away from the user
func (im *InputManager) HandleScroll(yoff float64) {
	im.mu.Lock()
	defer im.mu.Unlock()

	im.scroll += float32(yoff)
}

// Attach installs GLFW callbacks on window for this input manager
// This should be called once during initialization
func (im *InputManager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		im.HandleCursorPos(xpos, ypos)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		im.HandleScroll(yoff)
	})
}

// Commands drains this frame's input into camera commands: sprint and look
// state first, then held movement, then the pointer delta (only while look is
// held, otherwise it is dropped) and the scroll as zoom.
func (im *InputManager) Commands(dt float32) []camera.Command {
	im.mu.Lock()
	defer im.mu.Unlock()

	look := im.currentState[ActionLook]
	cmds := []camera.Command{
		camera.SetSprint(im.currentState[ActionSprint]),
		camera.SetLook(look),
	}
	for _, m := range movement {
		if im.currentState[m.action] {
			cmds = append(cmds, m.cmd(dt))
		}
	}
	if look && im.pointerDelta != (mgl32.Vec2{}) {
		cmds = append(cmds, camera.Rotate(im.pointerDelta.X(), im.pointerDelta.Y()))
	}
	switch {
	case im.scroll > 0:
		cmds = append(cmds, camera.ZoomIn(im.scroll*im.ZoomStep))
	case im.scroll < 0:
		cmds = append(cmds, camera.ZoomOut(-im.scroll*im.ZoomStep))
	}

	im.pointerDelta = mgl32.Vec2{}
	im.scroll = 0
	return cmds
}

// PostUpdate must be called at the end of each frame to reset edge flags
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := range ActionCount {
		im.justPressed[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}
