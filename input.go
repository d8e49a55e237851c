package binet

import (
	"fmt"
	"strings"
	"unicode"
)

// Key is a view command produced by the host's keyboard.
type Key int

const (
	KeyNone Key = iota
	KeyZoomIn
	KeyZoomOut
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
)

var keyNames = [...]string{
	KeyNone:    "none",
	KeyZoomIn:  "in",
	KeyZoomOut: "out",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyQuit:    "quit",
}

// String returns the key name accepted by ParseKeys.
func (k Key) String() string {
	if k >= 0 && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// HandleKey applies one key to state and returns the new state. Keys that do
// not change the view, KeyNone and KeyQuit included, return state unchanged.
func HandleKey(k Key, state ViewState, mode ZoomOutMode) ViewState {
	switch k {
	case KeyZoomIn:
		return state.ZoomIn()
	case KeyZoomOut:
		return state.ZoomOut(mode)
	case KeyUp:
		return state.PanUp()
	case KeyDown:
		return state.PanDown()
	case KeyLeft:
		return state.PanLeft()
	case KeyRight:
		return state.PanRight()
	default:
		return state
	}
}

// Changes reports whether k mutates the view.
func (k Key) Changes() bool {
	return k >= KeyZoomIn && k <= KeyRight
}

// Controller owns the view state of an interactive session. Each key that
// changes the view requests a repaint; the host may coalesce several
// requests into one frame.
type Controller struct {
	state   ViewState
	mode    ZoomOutMode
	redraw  func()
	pending bool
}

// NewController returns a Controller starting at state. redraw is called
// after every view change and may be nil.
func NewController(state ViewState, mode ZoomOutMode, redraw func()) *Controller {
	return &Controller{state: state, mode: mode, redraw: redraw}
}

// State returns the current view.
func (c *Controller) State() ViewState {
	return c.state
}

// HandleKey applies k and reports whether the view changed.
func (c *Controller) HandleKey(k Key) bool {
	if !k.Changes() {
		return false
	}
	c.state = HandleKey(k, c.state, c.mode)
	c.pending = true
	if c.redraw != nil {
		c.redraw()
	}
	return true
}

// TakeRedraw reports whether a repaint was requested since the last call
// and clears the request.
func (c *Controller) TakeRedraw() bool {
	p := c.pending
	c.pending = false
	return p
}

// ParseKeys parses a key script. Single-character keys may be run together:
// '+' or '=' zoom in, '-' zooms out, '^' '<' '>' and 'v' pan. Key names
// (in, out, up, down, left, right) are separated by commas or spaces.
//
//	ParseKeys("++>>")         // zoom in twice, pan right twice
//	ParseKeys("in, up, left") // named keys
func ParseKeys(script string) ([]Key, error) {
	var keys []Key
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	for _, f := range fields {
		if k, ok := keyByName(strings.ToLower(f)); ok {
			keys = append(keys, k)
			continue
		}
		for _, r := range f {
			k, ok := keyBySymbol(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q in %q", ErrUnknownKey, r, f)
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func keyByName(name string) (Key, bool) {
	for k := KeyZoomIn; k <= KeyRight; k++ {
		if keyNames[k] == name {
			return k, true
		}
	}
	return KeyNone, false
}

func keyBySymbol(r rune) (Key, bool) {
	switch r {
	case '+', '=':
		return KeyZoomIn, true
	case '-', '_':
		return KeyZoomOut, true
	case '^':
		return KeyUp, true
	case 'v':
		return KeyDown, true
	case '<':
		return KeyLeft, true
	case '>':
		return KeyRight, true
	default:
		return KeyNone, false
	}
}
