package input

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// actionNames are the names used for actions in the settings file
var actionNames = map[string]Action{
	"move_forward":  ActionMoveForward,
	"move_backward": ActionMoveBackward,
	"move_left":     ActionMoveLeft,
	"move_right":    ActionMoveRight,
	"move_up":       ActionMoveUp,
	"move_down":     ActionMoveDown,
	"sprint":        ActionSprint,
	"look":          ActionLook,
	"quit":          ActionQuit,
}

var namedKeys = map[string]glfw.Key{
	"space":         glfw.KeySpace,
	"left_control":  glfw.KeyLeftControl,
	"right_control": glfw.KeyRightControl,
	"left_shift":    glfw.KeyLeftShift,
	"right_shift":   glfw.KeyRightShift,
	"left_alt":      glfw.KeyLeftAlt,
	"right_alt":     glfw.KeyRightAlt,
	"escape":        glfw.KeyEscape,
	"tab":           glfw.KeyTab,
	"enter":         glfw.KeyEnter,
	"up":            glfw.KeyUp,
	"down":          glfw.KeyDown,
	"left":          glfw.KeyLeft,
	"right":         glfw.KeyRight,
}

var namedButtons = map[string]glfw.MouseButton{
	"mouse_left":   glfw.MouseButtonLeft,
	"mouse_right":  glfw.MouseButtonRight,
	"mouse_middle": glfw.MouseButtonMiddle,
}

// parseKey accepts a single letter or digit, or one of namedKeys
func parseKey(name string) (glfw.Key, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) == 1 {
		switch c := n[0]; {
		case c >= 'a' && c <= 'z':
			return glfw.KeyA + glfw.Key(c-'a'), true
		case c >= '0' && c <= '9':
			return glfw.Key0 + glfw.Key(c-'0'), true
		}
	}
	k, ok := namedKeys[n]
	return k, ok
}

type binding struct {
	action  Action
	keys    []glfw.Key
	buttons []glfw.MouseButton
}

// ApplyBindings replaces the default inputs of every action named in
// bindings (action name -> key or mouse button names). Keys taken over this
// way stop driving whatever they were bound to before. Actions not named
// keep their defaults. Nothing changes if any name is unknown.
func (im *InputManager) ApplyBindings(bindings map[string][]string) error {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	parsed := make([]binding, 0, len(names))
	for _, name := range names {
		action, ok := actionNames[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("input.bindings: unknown action %q", name)
		}
		b := binding{action: action}
		for _, in := range bindings[name] {
			if btn, ok := namedButtons[strings.ToLower(strings.TrimSpace(in))]; ok {
				b.buttons = append(b.buttons, btn)
				continue
			}
			key, ok := parseKey(in)
			if !ok {
				return fmt.Errorf("input.bindings.%s: unknown key %q", name, in)
			}
			b.keys = append(b.keys, key)
		}
		parsed = append(parsed, b)
	}

	for _, b := range parsed {
		im.clearAction(b.action)
	}
	for _, b := range parsed {
		for _, k := range b.keys {
			im.UnbindKey(k)
		}
	}
	for _, b := range parsed {
		for _, k := range b.keys {
			im.BindKey(k, b.action)
		}
		for _, btn := range b.buttons {
			im.BindMouseButton(btn, b.action)
		}
	}
	return nil
}

// clearAction removes action from every key and mouse button
func (im *InputManager) clearAction(action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	for k, actions := range im.keyToActions {
		if kept := without(actions, action); len(kept) > 0 {
			im.keyToActions[k] = kept
		} else {
			delete(im.keyToActions, k)
		}
	}
	for b, actions := range im.mouseButtonToActions {
		if kept := without(actions, action); len(kept) > 0 {
			im.mouseButtonToActions[b] = kept
		} else {
			delete(im.mouseButtonToActions, b)
		}
	}
	im.currentState[action] = false
	im.justPressed[action] = false
}

func without(actions []Action, action Action) []Action {
	kept := actions[:0:0]
	for _, a := range actions {
		if a != action {
			kept = append(kept, a)
		}
	}
	return kept
}
