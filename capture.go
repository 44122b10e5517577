package wordarena

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	textclip "github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	imgclip "golang.design/x/clipboard"
)

var (
	// ErrRender reports that the arena image could not be produced.
	ErrRender = errors.New("rendering failed")
	// ErrClipboard reports that neither the image nor its fallback path
	// reached the clipboard.
	ErrClipboard = errors.New("clipboard write failed")
)

const (
	statusDuration = 3 * time.Second
	exportPrefix   = "wordarena"
)

// Clipboard receives exported images. WriteText is used for the fallback
// path when images are not supported.
type Clipboard interface {
	WriteImage(png []byte) error
	WriteText(s string) error
}

// systemClipboard writes images through the platform clipboard and text
// through atotto/clipboard.
type systemClipboard struct {
	once    sync.Once
	initErr error
}

// NewSystemClipboard returns the platform clipboard.
func NewSystemClipboard() Clipboard { return &systemClipboard{} }

func (c *systemClipboard) WriteImage(b []byte) error {
	c.once.Do(func() { c.initErr = imgclip.Init() })
	if c.initErr != nil {
		return fmt.Errorf("image clipboard: %w", c.initErr)
	}
	imgclip.Write(imgclip.FmtImage, b)
	return nil
}

func (c *systemClipboard) WriteText(s string) error {
	return textclip.WriteAll(s)
}

// Exporter turns captured arena images into clipboard contents or files.
type Exporter struct {
	Clipboard Clipboard
	// Dir receives fallback and test-runner captures.
	Dir string
	// Now stamps file names; defaults to time.Now.
	Now func() time.Time
	// AskPath asks the user where to save. Defaults to a native dialog.
	AskPath func(defaultName string) (string, error)
}

// NewExporter returns an exporter backed by the system clipboard and a
// native save dialog.
func NewExporter(dir string) *Exporter {
	return &Exporter{
		Clipboard: NewSystemClipboard(),
		Dir:       dir,
		Now:       time.Now,
		AskPath:   askSavePath,
	}
}

func (e *Exporter) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// fileName returns a timestamped PNG name for label.
func (e *Exporter) fileName(label string) string {
	return fmt.Sprintf("%s_%s_%s.png", exportPrefix, e.now().Format("20060102_150405"), sanitizeLabel(label))
}

// Copy puts img on the clipboard. When the image clipboard is unavailable
// the PNG is written to Dir and its path copied as text; path is then
// non-empty.
func (e *Exporter) Copy(img *image.NRGBA) (path string, err error) {
	data, err := encodePNG(img)
	if err != nil {
		return "", err
	}
	imgErr := e.Clipboard.WriteImage(data)
	if imgErr == nil {
		return "", nil
	}
	path, err = e.WriteFile(img, "clipboard")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrClipboard, imgErr)
	}
	if err := e.Clipboard.WriteText(path); err != nil {
		return path, fmt.Errorf("%w: %v", ErrClipboard, err)
	}
	return path, nil
}

// Save asks for a destination and writes img there. A canceled dialog
// returns an empty path and no error.
func (e *Exporter) Save(img *image.NRGBA) (string, error) {
	ask := e.AskPath
	if ask == nil {
		ask = askSavePath
	}
	path, err := ask(e.fileName("arena"))
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("save dialog: %w", err)
	}
	if filepath.Ext(path) == "" {
		path += ".png"
	}
	if err := writePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFile writes img into Dir under a timestamped name built from label.
func (e *Exporter) WriteFile(img *image.NRGBA, label string) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", e.Dir, err)
	}
	path := filepath.Join(e.Dir, e.fileName(label))
	if err := writePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

func askSavePath(defaultName string) (string, error) {
	return zenity.SelectFileSave(
		zenity.Title("Save arena image"),
		zenity.Filename(defaultName),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG images",
			Patterns: []string{"*.png"},
		}},
	)
}

// captureRegion reads region r of screen into a straight-alpha image.
func captureRegion(screen *ebiten.Image, r Rect) (*image.NRGBA, error) {
	rect := image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height)).Intersect(screen.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("%w: empty capture region", ErrRender)
	}
	sub, ok := screen.SubImage(rect).(*ebiten.Image)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected sub-image type", ErrRender)
	}
	w, h := rect.Dx(), rect.Dy()
	pixels := make([]byte, 4*w*h)
	sub.ReadPixels(pixels)
	return unpremultiply(pixels, w, h), nil
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func encodePNG(img *image.NRGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%w: encode %s: %v", ErrRender, path, err)
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

// statusForExport returns the status line shown after an export attempt.
func statusForExport(kind exportKind, path string, err error) string {
	switch {
	case errors.Is(err, ErrRender):
		return "rendering failed: " + causeOf(err, ErrRender)
	case errors.Is(err, ErrClipboard):
		return "clipboard write failed: " + causeOf(err, ErrClipboard)
	case err != nil:
		return "export failed: " + err.Error()
	}
	switch kind {
	case exportCopy:
		if path != "" {
			return "image saved to " + path + " (path copied)"
		}
		return "image copied to clipboard"
	case exportSave:
		if path == "" {
			return ""
		}
		return "saved " + path
	default:
		return "captured " + path
	}
}

// causeOf strips the sentinel's own text from err's message.
func causeOf(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error())
	msg = strings.TrimPrefix(msg, ": ")
	if msg == "" {
		return "unknown error"
	}
	return msg
}

// statusLine is a message that disappears after a deadline.
type statusLine struct {
	text  string
	until time.Time
}

func (s *statusLine) set(text string, now time.Time) {
	s.text = text
	s.until = now.Add(statusDuration)
}

func (s *statusLine) current(now time.Time) string {
	if s.text == "" || !now.Before(s.until) {
		return ""
	}
	return s.text
}
