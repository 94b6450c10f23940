// Package canvasrenderer draws layout plans via github.com/tdewolff/canvas
// and encodes them as PNG.
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/clumzy/freqgen/assets"
	"github.com/clumzy/freqgen/layout"
	"github.com/clumzy/freqgen/renderer"
)

// Canvas font sizes are points against millimeter-denominated coordinates;
// this plan model works in pixels, one canvas unit per pixel, so nominal
// pixel sizes are scaled by pt-per-mm when faces are created.
const ptPerPixel = 72.0 / 25.4

// fontSpec binds a font role to its font file and fixed pixel size.
type fontSpec struct {
	file string
	size float64
}

var roleSpecs = map[layout.FontRole]fontSpec{
	layout.FontFrequency: {file: "Obviously-MediumItalic.otf", size: 174},
	layout.FontGenre:     {file: "DarkerGrotesque-SemiBold.ttf", size: 60},
	layout.FontScene:     {file: "DarkerGrotesque-ExtraBold.ttf", size: 54},
	layout.FontDate:      {file: "DarkerGrotesque-ExtraBold.ttf", size: 69},
	layout.FontTitle:     {file: "Obviously-MediumItalic.otf", size: 127},
	layout.FontPill:      {file: "DarkerGrotesque-ExtraBold.ttf", size: 42},
}

// Renderer rasterizes layout plans over the asset bundle's backgrounds and
// fonts. It also implements layout.FaceSource so the builder measures text
// with the same faces the renderer draws with.
type Renderer struct {
	bundle *assets.Bundle

	fontMu   sync.Mutex
	families map[string]*canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.FaceSource = (*Renderer)(nil)
)

// New creates a renderer over the given asset bundle.
func New(bundle *assets.Bundle) *Renderer {
	return &Renderer{
		bundle:   bundle,
		families: map[string]*canvas.FontFamily{},
	}
}

// Face implements layout.FaceSource.
func (r *Renderer) Face(role layout.FontRole) (layout.Face, error) {
	ff, spec, err := r.fontFace(role, layout.Black)
	if err != nil {
		return nil, err
	}
	return &fontFace{ff: ff, size: spec.size}, nil
}

// Render implements renderer.Renderer: background, text runs, pills, then
// one rasterization pass encoded as PNG.
func (r *Renderer) Render(plan *layout.Plan) ([]byte, error) {
	if plan == nil {
		return nil, fmt.Errorf("render: nil plan")
	}
	bg, err := r.bundle.Background(plan.Background)
	if err != nil {
		return nil, err
	}

	c := canvas.New(float64(plan.Width), float64(plan.Height))
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // top-left origin, like the plan

	ctx.DrawImage(0, 0, bg, canvas.DPMM(1.0))

	for _, el := range plan.Texts {
		if err := r.drawText(ctx, el); err != nil {
			return nil, err
		}
	}
	for _, pill := range plan.Pills {
		if err := r.drawPill(ctx, pill); err != nil {
			return nil, err
		}
	}

	img := rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("render: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawText(ctx *canvas.Context, el layout.TextElement) error {
	ff, _, err := r.fontFace(el.Role, el.Color)
	if err != nil {
		return err
	}
	baseline := float64(el.Y) + ff.Metrics().Ascent

	if el.Tracking == nil {
		// Native path: one run with the face's own advance accumulation.
		text := el.Text + el.Ellipsis
		ctx.DrawText(float64(el.X), baseline, canvas.NewTextLine(ff, text, canvas.Left))
		return nil
	}

	tracking := *el.Tracking
	cursor := el.X
	for _, rn := range el.Text {
		ctx.DrawText(float64(cursor), baseline, canvas.NewTextLine(ff, string(rn), canvas.Left))
		cursor += layout.PixelRound(ff.TextWidth(string(rn))) + tracking
	}
	if el.Ellipsis != "" {
		// The ellipsis sits flush after the last glyph, without the
		// trailing tracking delta.
		x := cursor
		if el.Text != "" {
			x -= tracking
		}
		ctx.DrawText(float64(x), baseline, canvas.NewTextLine(ff, el.Ellipsis, canvas.Left))
	}
	return nil
}

func (r *Renderer) drawPill(ctx *canvas.Context, pill layout.PillElement) error {
	ff, _, err := r.fontFace(pill.Role, pill.TextColor)
	if err != nil {
		return err
	}
	width := float64(pill.Rect.X1 - pill.Rect.X0)
	height := float64(pill.Rect.Y1 - pill.Rect.Y0)

	ctx.SetFillColor(colorFromLayout(pill.Fill))
	ctx.SetStrokeColor(color.RGBA{})
	ctx.DrawPath(float64(pill.Rect.X0), float64(pill.Rect.Y0),
		canvas.RoundedRectangle(width, height, float64(pill.Radius)))

	ctx.DrawText(float64(pill.TextX), float64(pill.Baseline),
		canvas.NewTextLine(ff, pill.Text, canvas.Left))
	return nil
}

func (r *Renderer) fontFace(role layout.FontRole, col layout.Color) (*canvas.FontFace, fontSpec, error) {
	spec, ok := roleSpecs[role]
	if !ok {
		return nil, fontSpec{}, fmt.Errorf("render: unknown font role %q", role)
	}
	family, err := r.ensureFontFamily(spec.file)
	if err != nil {
		return nil, fontSpec{}, err
	}
	face := family.Face(spec.size*ptPerPixel, colorFromLayout(col), canvas.FontRegular, canvas.FontNormal)
	return face, spec, nil
}

func (r *Renderer) ensureFontFamily(file string) (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if family, ok := r.families[file]; ok {
		return family, nil
	}
	data, err := r.bundle.Font(file)
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily(file)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("render: load font %s: %w", file, err)
	}
	r.families[file] = family
	return family, nil
}

// fontFace adapts a canvas face to the layout metrics capability. Size is
// the nominal pixel size, not the pt-scaled canvas size.
type fontFace struct {
	ff   *canvas.FontFace
	size float64
}

func (f *fontFace) TextWidth(s string) float64 { return f.ff.TextWidth(s) }
func (f *fontFace) Ascent() float64            { return f.ff.Metrics().Ascent }
func (f *fontFace) Descent() float64           { return f.ff.Metrics().Descent }
func (f *fontFace) Size() float64              { return f.size }

func colorFromLayout(c layout.Color) color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
