package term

import (
	"errors"
	"fmt"
	"io"
	"os"

	xterm "github.com/charmbracelet/x/term"

	binet "github.com/gogpu/gg-binet"
)

// ErrNotTerminal is returned by Run when input is not a terminal.
var ErrNotTerminal = errors.New("term: input is not a terminal")

// Session feeds terminal keys into a Controller and repaints after each
// batch of input. Keys that arrive together are applied first and produce
// a single repaint.
type Session struct {
	In      io.Reader
	Control *binet.Controller

	// Repaint is called with the current view whenever the view changed.
	Repaint func(binet.ViewState) error
}

// Run reads input until a quit key or EOF.
func (s *Session) Run() error {
	buf := make([]byte, 64)
	for {
		n, err := s.In.Read(buf)
		if n > 0 {
			quit, perr := s.feed(buf[:n])
			if perr != nil {
				return perr
			}
			if quit {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("term: read: %w", err)
		}
	}
}

func (s *Session) feed(b []byte) (quit bool, err error) {
	keys := Decode(b)
	for _, k := range keys {
		if k == binet.KeyQuit {
			quit = true
			break
		}
		s.Control.HandleKey(k)
	}
	binet.Logger().Debug("term: key batch", "bytes", len(b), "keys", len(keys))
	if s.Control.TakeRedraw() && s.Repaint != nil {
		if err := s.Repaint(s.Control.State()); err != nil {
			return quit, err
		}
	}
	return quit, nil
}

// RunRaw puts f in raw mode for the duration of s.Run and restores it
// afterwards. s.In defaults to f.
func RunRaw(f *os.File, s *Session) error {
	fd := f.Fd()
	if !xterm.IsTerminal(fd) {
		return ErrNotTerminal
	}
	old, err := xterm.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("term: raw mode: %w", err)
	}
	defer func() { _ = xterm.Restore(fd, old) }()

	if s.In == nil {
		s.In = f
	}
	return s.Run()
}
