package compositor_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"testing"
	"unicode/utf8"

	"github.com/clumzy/freqgen/assets"
	"github.com/clumzy/freqgen/compositor"
	"github.com/clumzy/freqgen/layout"
	"github.com/clumzy/freqgen/theme"
)

// fixedFace measures every rune at the same width so plans are computable
// without font files.
type fixedFace struct{}

func (fixedFace) TextWidth(s string) float64 { return float64(utf8.RuneCountInString(s)) * 20 }
func (fixedFace) Ascent() float64            { return 90 }
func (fixedFace) Descent() float64           { return 30 }
func (fixedFace) Size() float64              { return 100 }

type fixedFaces struct{}

func (fixedFaces) Face(layout.FontRole) (layout.Face, error) { return fixedFace{}, nil }

// planRecorder stands in for the rasterizer and records what it was asked to
// draw.
type planRecorder struct {
	plan  *layout.Plan
	bytes []byte
	err   error
}

func (r *planRecorder) Render(plan *layout.Plan) ([]byte, error) {
	r.plan = plan
	return r.bytes, r.err
}

func testBundle(t *testing.T) *assets.Bundle {
	t.Helper()
	encode := func(w, h int) []byte {
		var buf bytes.Buffer
		if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
			t.Fatalf("encode png: %v", err)
		}
		return buf.Bytes()
	}
	return assets.OpenWithOptions(assets.Options{
		Images: map[string]assets.Resource{
			"house.png":  {Bytes: encode(1080, 1920)},
			"techno.png": {Bytes: encode(1080, 1920)},
		},
	})
}

func testCompositor(t *testing.T, rec *planRecorder) *compositor.Compositor {
	t.Helper()
	registry, err := theme.DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	return compositor.New(registry, testBundle(t), fixedFaces{}, rec)
}

func TestPlanUsesResolvedTheme(t *testing.T) {
	comp := testCompositor(t, &planRecorder{})
	plan, err := comp.Plan(compositor.Request{
		Station: "fast",
		Name:    "Techno sombre et féroce",
		Tags:    []string{"Intense", "Nocturne"},
	})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if plan.Background != "techno.png" {
		t.Fatalf("background = %s, want the fast station theme", plan.Background)
	}
	if plan.Width != 1080 || plan.Height != 1920 {
		t.Fatalf("plan size = %dx%d, want the background raster size", plan.Width, plan.Height)
	}
	if plan.Texts[0].Text != "105.6 FM" {
		t.Fatalf("frequency = %s, want 105.6 FM", plan.Texts[0].Text)
	}
	if got := plan.Texts[2].Text; got != compositor.DateCaption {
		t.Fatalf("date caption = %q, want %q", got, compositor.DateCaption)
	}
}

func TestPlanIsDeterministic(t *testing.T) {
	comp := testCompositor(t, &planRecorder{})
	req := compositor.Request{
		Station:   "slower",
		Name:      "House solaire et organique",
		Verbatims: []string{"Open-air au coucher du soleil"},
		Tags:      []string{"Paisible", "Hypnotique", "Percutant"},
		Artists:   []string{"Dom Dolla", "X-coast"},
	}
	first, err := comp.Plan(req)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	second, err := comp.Plan(req)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(first.Pills) != len(second.Pills) {
		t.Fatalf("pill counts differ: %d vs %d", len(first.Pills), len(second.Pills))
	}
	for i := range first.Pills {
		if first.Pills[i] != second.Pills[i] {
			t.Fatalf("pill %d differs between identical requests:\n%+v\n%+v", i, first.Pills[i], second.Pills[i])
		}
	}
}

func TestGenerateEncodesRenderedBytes(t *testing.T) {
	rec := &planRecorder{bytes: []byte("fake png bytes")}
	comp := testCompositor(t, rec)

	encoded, err := comp.Generate(compositor.Request{Station: "slow", Name: "House solaire"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if want := base64.StdEncoding.EncodeToString(rec.bytes); encoded != want {
		t.Fatalf("Generate = %q, want base64 of the rendered bytes", encoded)
	}
	if rec.plan == nil || rec.plan.Background != "house.png" {
		t.Fatalf("renderer received plan %+v", rec.plan)
	}
}

func TestGenerateInvalidStation(t *testing.T) {
	comp := testCompositor(t, &planRecorder{})
	_, err := comp.Generate(compositor.Request{Station: "medium", Name: "x"})
	var invalid *theme.InvalidStationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidStationError, got %v", err)
	}
}

func TestGenerateMissingBackground(t *testing.T) {
	registry, err := theme.DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	comp := compositor.New(registry, assets.OpenWithOptions(assets.Options{}), fixedFaces{}, &planRecorder{})
	_, err = comp.Generate(compositor.Request{Station: "slow", Name: "x"})
	var assetErr *assets.AssetError
	if !errors.As(err, &assetErr) {
		t.Fatalf("expected AssetError, got %v", err)
	}
}

func TestGenerateRenderError(t *testing.T) {
	rec := &planRecorder{err: errors.New("rasterizer exploded")}
	comp := testCompositor(t, rec)
	if _, err := comp.Generate(compositor.Request{Station: "slow", Name: "x"}); err == nil {
		t.Fatal("expected the render error to propagate")
	}
}
