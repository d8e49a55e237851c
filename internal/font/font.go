// Package font provides the embedded label font.
package font

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// LabelSize is the pixel size of tick labels.
const LabelSize = 11.0

var (
	once   sync.Once
	source *text.FontSource
	errSrc error
)

// Source returns the shared Go Regular font source. It is parsed once.
func Source() (*text.FontSource, error) {
	once.Do(func() {
		source, errSrc = text.NewFontSource(goregular.TTF)
		if errSrc != nil {
			errSrc = fmt.Errorf("font: load go regular: %w", errSrc)
		}
	})
	return source, errSrc
}

// Default returns a LabelSize face of the shared source.
func Default() (text.Face, error) {
	src, err := Source()
	if err != nil {
		return nil, err
	}
	return src.Face(LabelSize), nil
}
