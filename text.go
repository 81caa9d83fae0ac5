package deck

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TextBlock holds text content and formatting for a text node.
type TextBlock struct {
	Content  string
	FontSize float64
	Align    TextAlign
	Color    Color

	// Source overrides the default Go Regular face source.
	Source *text.GoTextFaceSource
}

// SetFontSize sets the font size in pixels.
func (tb *TextBlock) SetFontSize(size float64) {
	tb.FontSize = size
}

// Measure returns the rendered width and height of the content.
func (tb *TextBlock) Measure() (w, h float64) {
	face := tb.face()
	if face == nil {
		return 0, 0
	}
	m := face.Metrics()
	return text.Measure(tb.Content, face, m.HAscent+m.HDescent+m.HLineGap)
}

func (tb *TextBlock) face() *text.GoTextFace {
	if tb.FontSize <= 0 {
		return nil
	}
	src := tb.Source
	if src == nil {
		var err error
		if src, err = defaultFaceSource(); err != nil {
			return nil
		}
	}
	return faces.get(src, tb.FontSize)
}

var defaultSource *text.GoTextFaceSource

// defaultFaceSource parses the embedded Go Regular font once.
func defaultFaceSource() (*text.GoTextFaceSource, error) {
	if defaultSource != nil {
		return defaultSource, nil
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("deck: failed to parse default font: %w", err)
	}
	defaultSource = src
	return src, nil
}

// faceCacheSize bounds the number of live faces; the least recently used
// size is evicted first.
const faceCacheSize = 64

type faceKey struct {
	src    *text.GoTextFaceSource
	tenths int
}

type faceCache struct {
	cache *lru.Cache[faceKey, *text.GoTextFace]
}

var faces = newFaceCache(faceCacheSize)

func newFaceCache(size int) *faceCache {
	c, err := lru.New[faceKey, *text.GoTextFace](size)
	if err != nil {
		panic(fmt.Sprintf("deck: face cache: %v", err))
	}
	return &faceCache{cache: c}
}

func (fc *faceCache) get(src *text.GoTextFaceSource, size float64) *text.GoTextFace {
	key := faceKey{src: src, tenths: int(math.Round(size / fontSizeStep))}
	if f, ok := fc.cache.Get(key); ok {
		return f
	}
	f := &text.GoTextFace{Source: src, Size: float64(key.tenths) * fontSizeStep}
	fc.cache.Add(key, f)
	return f
}

func (fc *faceCache) len() int {
	return fc.cache.Len()
}
