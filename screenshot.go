package pixeldust

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// next Draw. The PNG is written to ScreenshotDir with a timestamped filename.
// Surfaces that cannot produce a snapshot drop the request.
func (pt *ParticleText) Screenshot(label string) {
	pt.screenshotQueue = append(pt.screenshotQueue, label)
}

// flushScreenshots captures the drawn canvas for every queued label.
func (pt *ParticleText) flushScreenshots(s Surface) {
	if len(pt.screenshotQueue) == 0 {
		return
	}
	defer func() { pt.screenshotQueue = pt.screenshotQueue[:0] }()

	snap, ok := s.(snapshotter)
	if !ok {
		_, _ = fmt.Fprintf(os.Stderr, "[pixeldust] screenshot: surface %T cannot snapshot\n", s)
		return
	}
	if err := os.MkdirAll(pt.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[pixeldust] screenshot: mkdir %s: %v\n", pt.ScreenshotDir, err)
		return
	}

	img := snap.Snapshot()
	stamp := time.Now().Format("20060102_150405")
	for _, label := range pt.screenshotQueue {
		path := filepath.Join(pt.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[pixeldust] screenshot: %v\n", err)
		}
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
