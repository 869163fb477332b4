package pixeldust

import (
	"bytes"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultFont is the name Go Regular is registered under by Init.
const DefaultFont = "goregular"

// fontEntry is one registered font. The parsed sfnt is shared by every
// MemorySurface; the Ebitengine face source is created on first use.
type fontEntry struct {
	name   string
	data   []byte
	sfnt   *opentype.Font
	source *text.GoTextFaceSource
}

var (
	fontsMu  sync.Mutex
	fonts    = map[string]*fontEntry{}
	initOnce sync.Once
)

// Init performs the process-wide registration of the default font. It is
// safe to call any number of times; only the first call does work. Surfaces
// call it themselves, so calling it at application start is optional.
func Init() {
	initOnce.Do(func() {
		if err := RegisterFont(DefaultFont, goregular.TTF); err != nil {
			log.Printf("pixeldust: register default font: %v", err)
		}
	})
}

// RegisterFont makes TTF/OTF data available to surfaces under name.
// Registering the same name with identical data again is a no-op; the same
// name with different data is an error.
func RegisterFont(name string, ttf []byte) error {
	if name == "" {
		return fmt.Errorf("pixeldust: register font: empty name")
	}
	if len(ttf) == 0 {
		return fmt.Errorf("pixeldust: register font %q: no data", name)
	}

	fontsMu.Lock()
	defer fontsMu.Unlock()

	if e, ok := fonts[name]; ok {
		if bytes.Equal(e.data, ttf) {
			return nil
		}
		return fmt.Errorf("pixeldust: font %q already registered with different data", name)
	}

	f, err := opentype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("pixeldust: failed to parse font %q: %w", name, err)
	}
	fonts[name] = &fontEntry{name: name, data: ttf, sfnt: f}
	return nil
}

// RegisteredFonts returns the registered font names in sorted order.
func RegisteredFonts() []string {
	Init()
	fontsMu.Lock()
	defer fontsMu.Unlock()
	names := make([]string, 0, len(fonts))
	for name := range fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookupFont returns the entry for name, or the default font for "".
func lookupFont(name string) (*fontEntry, error) {
	Init()
	if name == "" {
		name = DefaultFont
	}
	fontsMu.Lock()
	defer fontsMu.Unlock()
	e, ok := fonts[name]
	if !ok {
		return nil, fmt.Errorf("pixeldust: font %q not registered", name)
	}
	return e, nil
}

// faceSource returns the lazily created Ebitengine face source.
func (e *fontEntry) faceSource() (*text.GoTextFaceSource, error) {
	fontsMu.Lock()
	defer fontsMu.Unlock()
	if e.source != nil {
		return e.source, nil
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(e.data))
	if err != nil {
		return nil, fmt.Errorf("pixeldust: failed to parse TTF data for %q: %w", e.name, err)
	}
	e.source = src
	return src, nil
}
