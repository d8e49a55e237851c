// Package term reads plot keys from a terminal in raw mode.
package term

import (
	binet "github.com/gogpu/gg-binet"
)

const (
	esc    = 0x1b
	ctrlC  = 0x03
	ctrlD  = 0x04
	csiLen = 3
)

// Decode translates a chunk of raw terminal input into keys.
//
// Recognized input:
//   - '+' '=' zoom in, '-' '_' zoom out (main row and keypad in
//     application mode send the same bytes)
//   - arrow keys as CSI (ESC [ A..D) or SS3 (ESC O A..D) sequences
//   - w a s d pan
//   - q, Ctrl-C, Ctrl-D quit
//
// Anything else, including a lone ESC or a truncated sequence, is skipped.
func Decode(b []byte) []binet.Key {
	var keys []binet.Key
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c == esc {
			if i+csiLen-1 < len(b) && (b[i+1] == '[' || b[i+1] == 'O') {
				if k := arrow(b[i+2]); k != binet.KeyNone {
					keys = append(keys, k)
				}
				i += csiLen - 1
			}
			continue
		}
		if k := plain(c); k != binet.KeyNone {
			keys = append(keys, k)
		}
	}
	return keys
}

func arrow(c byte) binet.Key {
	switch c {
	case 'A':
		return binet.KeyUp
	case 'B':
		return binet.KeyDown
	case 'C':
		return binet.KeyRight
	case 'D':
		return binet.KeyLeft
	default:
		return binet.KeyNone
	}
}

func plain(c byte) binet.Key {
	switch c {
	case '+', '=':
		return binet.KeyZoomIn
	case '-', '_':
		return binet.KeyZoomOut
	case 'w', 'W':
		return binet.KeyUp
	case 's', 'S':
		return binet.KeyDown
	case 'a', 'A':
		return binet.KeyLeft
	case 'd', 'D':
		return binet.KeyRight
	case 'q', 'Q', ctrlC, ctrlD:
		return binet.KeyQuit
	default:
		return binet.KeyNone
	}
}
