package wordarena

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	labelFontSize   = 22
	uiFontSize      = 18
	bubbleStroke    = 2
	stageStroke     = 4
	headerHeight    = 96
	headerPadding   = 12
	fieldWidth      = 240
	fieldHeight     = 32
	overlayFontSize = 20
)

var (
	colorBackground  = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	colorStage       = color.NRGBA{0xf7, 0xf7, 0xfa, 0xff}
	colorStageBorder = color.NRGBA{0xcc, 0xcc, 0xcc, 0xff}
	colorBubbleEdge  = color.NRGBA{0x88, 0x88, 0x88, 0xff}
	colorLabel       = color.NRGBA{0x44, 0x44, 0x44, 0xff}
	colorMuted       = color.NRGBA{0x88, 0x88, 0x88, 0xff}
	colorField       = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	colorFieldEdge   = color.NRGBA{0xaa, 0xaa, 0xaa, 0xff}
)

// faces holds the fonts used by the renderer.
type faces struct {
	label   text.Face
	ui      text.Face
	overlay text.Face
}

// loadFaces parses the bundled M+ 1p font, which covers Latin and Japanese.
func loadFaces() (faces, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
	if err != nil {
		return faces{}, fmt.Errorf("load font: %w", err)
	}
	return faces{
		label:   &text.GoTextFace{Source: src, Size: labelFontSize},
		ui:      &text.GoTextFace{Source: src, Size: uiFontSize},
		overlay: &text.GoTextFace{Source: src, Size: overlayFontSize},
	}, nil
}

// drawStage draws the arena frame into dst with the stage's top-left at
// (ox, oy).
func drawStage(dst *ebiten.Image, f Frame, ff faces, cfg Config, ox, oy float64) {
	c := cfg.Center()
	cx, cy := float32(ox+c.X), float32(oy+c.Y)
	r := float32(cfg.ArenaRadius + cfg.WallThickness/2)

	vector.DrawFilledCircle(dst, cx, cy, r, colorStage, true)
	vector.StrokeCircle(dst, cx, cy, r, stageStroke, colorStageBorder, true)

	for _, b := range f.Bubbles {
		drawBubble(dst, b, ff.label, ox, oy)
	}
	for _, p := range f.Pops {
		drawPop(dst, p, ff.label, ox, oy)
	}
	for _, p := range f.Particles {
		clr := p.Color
		clr.A *= p.Alpha
		vector.DrawFilledCircle(dst, float32(ox+p.X), float32(oy+p.Y), float32(p.Radius), clr.NRGBA(), true)
	}
}

func drawBubble(dst *ebiten.Image, b BubbleView, face text.Face, ox, oy float64) {
	x, y := float32(ox+b.Center.X), float32(oy+b.Center.Y)
	vector.DrawFilledCircle(dst, x, y, float32(b.Radius), b.Fill.NRGBA(), true)
	vector.StrokeCircle(dst, x, y, float32(b.Radius), bubbleStroke, colorBubbleEdge, true)
	drawCenteredText(dst, b.Text, face, ox+b.Center.X, oy+b.Center.Y, 1, 0, colorLabel, 1)
}

func drawPop(dst *ebiten.Image, p PopView, face text.Face, ox, oy float64) {
	x, y := float32(ox+p.Center.X), float32(oy+p.Center.Y)
	fill := ColorWhite
	fill.A = p.Alpha
	vector.DrawFilledCircle(dst, x, y, float32(p.Radius*p.Scale), fill.NRGBA(), true)
	drawCenteredText(dst, p.Text, face, ox+p.Center.X, oy+p.Center.Y, p.Scale, p.Rotation, colorLabel, p.Alpha)
}

// drawCenteredText draws s centered on (x, y), scaled and rotated about its
// center.
func drawCenteredText(dst *ebiten.Image, s string, face text.Face, x, y, scale, rotation float64, clr color.Color, alpha float64) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, s, face, op)
}

// drawHeader draws the entry field, the counter and the status line.
func drawHeader(dst *ebiten.Image, field *TextField, f Frame, status string, ff faces, width float64) {
	fx := (width - fieldWidth) / 2
	fy := float64(headerPadding)
	vector.DrawFilledRect(dst, float32(fx), float32(fy), fieldWidth, fieldHeight, colorField, false)
	vector.StrokeRect(dst, float32(fx), float32(fy), fieldWidth, fieldHeight, 1, colorFieldEdge, false)

	value, clr := field.Value(), color.Color(colorLabel)
	if value == "" {
		value, clr = field.Placeholder, colorMuted
	}
	op := &text.DrawOptions{}
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(fx+8, fy+fieldHeight/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, value, ff.ui, op)

	counter := fmt.Sprintf("%d / %d", f.Count, f.Max)
	if f.Locked {
		counter += "  (busy)"
	}
	drawCenteredText(dst, counter, ff.ui, width/2, fy+fieldHeight+18, 1, 0, colorLabel, 1)
	if status != "" {
		drawCenteredText(dst, status, ff.ui, width/2, fy+fieldHeight+42, 1, 0, colorMuted, 1)
	}
}

// drawOverlay draws the user-name label in the stage's bottom-right corner.
func drawOverlay(dst *ebiten.Image, name string, face text.Face, region Rect) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignEnd
	op.SecondaryAlign = text.AlignEnd
	op.GeoM.Translate(region.X+region.Width-headerPadding, region.Y+region.Height-headerPadding)
	op.ColorScale.ScaleWithColor(colorMuted)
	text.Draw(dst, name, face, op)
}
