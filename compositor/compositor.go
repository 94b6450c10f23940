// Package compositor chains the full pipeline for one visual: resolve the
// station's theme, lay out the plan, rasterize it and encode the bytes for
// embedding in a JSON response.
package compositor

import (
	"encoding/base64"
	"fmt"

	"github.com/clumzy/freqgen/assets"
	"github.com/clumzy/freqgen/layout"
	"github.com/clumzy/freqgen/renderer"
	"github.com/clumzy/freqgen/theme"
)

// ShuffleSeed is the fixed seed for the label pill shuffle. The same inputs
// must always produce the same image.
const ShuffleSeed = 420

// DateCaption is the event line under the genre caption.
const DateCaption = "le 31 juillet à La Rotonde"

// Request carries the classified station result to turn into an image.
type Request struct {
	Station   string
	Name      string
	Verbatims []string
	Tags      []string
	Artists   []string
}

// Compositor builds visuals from requests. Its collaborators are all
// read-only after construction, so one Compositor serves concurrent
// requests; every call builds its own plan.
type Compositor struct {
	registry *theme.Registry
	bundle   *assets.Bundle
	faces    layout.FaceSource
	renderer renderer.Renderer
}

// New wires a compositor. faces and r are usually the same canvas renderer.
func New(registry *theme.Registry, bundle *assets.Bundle, faces layout.FaceSource, r renderer.Renderer) *Compositor {
	return &Compositor{registry: registry, bundle: bundle, faces: faces, renderer: r}
}

// Plan resolves the theme and computes the layout plan without rasterizing.
func (c *Compositor) Plan(req Request) (*layout.Plan, error) {
	station, err := theme.ParseStation(req.Station)
	if err != nil {
		return nil, err
	}
	profile, err := c.registry.Resolve(station)
	if err != nil {
		return nil, err
	}
	bg, err := c.bundle.Background(profile.Background)
	if err != nil {
		return nil, err
	}
	bounds := bg.Bounds()

	return layout.Build(layout.Input{
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		Background:   profile.Background,
		Accent:       profile.Accent,
		Frequency:    profile.Frequency,
		GenreCaption: profile.GenreCaption,
		SceneName:    profile.Scene,
		DateCaption:  DateCaption,
		Title:        req.Name,
		Verbatims:    req.Verbatims,
		Tags:         req.Tags,
		Artists:      req.Artists,
		Seed:         ShuffleSeed,
	}, layout.BuildOptions{Faces: c.faces})
}

// Generate renders the visual for req and returns it base64-encoded.
func (c *Compositor) Generate(req Request) (string, error) {
	plan, err := c.Plan(req)
	if err != nil {
		return "", err
	}
	data, err := c.renderer.Render(plan)
	if err != nil {
		return "", fmt.Errorf("compositor: render: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
