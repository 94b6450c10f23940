// Package theme maps the four-valued station classification onto the two
// visual themes and their display values. The mapping is data-driven through
// the dsl package; a default definition file is embedded.
package theme

import (
	_ "embed"
	"fmt"
	"strconv"

	"github.com/clumzy/freqgen/binding"
	"github.com/clumzy/freqgen/dsl"
	"github.com/clumzy/freqgen/layout"
)

//go:embed themes.conf
var defaultConf string

// Station is the quiz-derived station classification.
type Station string

const (
	StationSlower Station = "slower"
	StationSlow   Station = "slow"
	StationFast   Station = "fast"
	StationFaster Station = "faster"
)

var allStations = []Station{StationSlower, StationSlow, StationFast, StationFaster}

// InvalidStationError reports a station value outside the four known ones.
// It is fatal for the request: no partial image is produced.
type InvalidStationError struct {
	Value string
}

func (e *InvalidStationError) Error() string {
	return fmt.Sprintf("theme: unknown station %q", e.Value)
}

// ParseStation validates a raw station value.
func ParseStation(s string) (Station, error) {
	switch Station(s) {
	case StationSlower, StationSlow, StationFast, StationFaster:
		return Station(s), nil
	default:
		return "", &InvalidStationError{Value: s}
	}
}

// Profile is the fully resolved visual identity of one station.
type Profile struct {
	Station      Station
	Frequency    string
	Scene        string
	Genre        string
	GenreCaption string
	Background   string
	Accent       layout.Color
}

// Registry resolves stations to profiles. It is immutable once built and
// safe to share across concurrent requests.
type Registry struct {
	profiles map[Station]Profile
}

// DefaultRegistry builds a registry from the embedded definition file.
func DefaultRegistry() (*Registry, error) {
	doc, err := dsl.ParseString(defaultConf)
	if err != nil {
		return nil, fmt.Errorf("theme: parse embedded definitions: %w", err)
	}
	return FromDocument(doc)
}

type themeDef struct {
	scene      string
	genre      string
	caption    string
	background string
	accent     layout.Color
}

// FromDocument builds a registry from a parsed definition document. Every
// station must reference a declared theme and carry a frequency, and all
// four station values must be covered so that resolution failures can only
// mean an unknown input value.
func FromDocument(doc *dsl.Document) (*Registry, error) {
	if doc == nil {
		return nil, fmt.Errorf("theme: nil document")
	}

	themes := map[string]themeDef{}
	for _, section := range doc.Sections {
		decl := section.Theme
		if decl == nil {
			continue
		}
		def, err := buildThemeDef(decl)
		if err != nil {
			return nil, err
		}
		themes[decl.Name] = def
	}

	profiles := map[Station]Profile{}
	for _, section := range doc.Sections {
		decl := section.Station
		if decl == nil {
			continue
		}
		station, err := ParseStation(decl.Name)
		if err != nil {
			return nil, fmt.Errorf("theme: declared station %q is not a known value", decl.Name)
		}
		frequency := decl.Block.Get("frequency").Text()
		if frequency == "" {
			return nil, fmt.Errorf("theme: station %s is missing a frequency", station)
		}
		themeName := decl.Block.Get("theme").Text()
		def, ok := themes[themeName]
		if !ok {
			return nil, fmt.Errorf("theme: station %s references undeclared theme %q", station, themeName)
		}
		profiles[station] = Profile{
			Station:      station,
			Frequency:    frequency,
			Scene:        def.scene,
			Genre:        def.genre,
			GenreCaption: binding.Interpolate(def.caption, map[string]string{"scene": def.scene, "genre": def.genre}),
			Background:   def.background,
			Accent:       def.accent,
		}
	}

	for _, station := range allStations {
		if _, ok := profiles[station]; !ok {
			return nil, fmt.Errorf("theme: station %s is not defined", station)
		}
	}
	return &Registry{profiles: profiles}, nil
}

func buildThemeDef(decl *dsl.ThemeDecl) (themeDef, error) {
	def := themeDef{
		scene:      decl.Block.Get("scene").Text(),
		genre:      decl.Block.Get("genre").Text(),
		caption:    decl.Block.Get("caption").Text(),
		background: decl.Block.Get("background").Text(),
	}
	if def.scene == "" || def.genre == "" || def.background == "" {
		return themeDef{}, fmt.Errorf("theme: theme %s needs scene, genre and background", decl.Name)
	}
	if def.caption == "" {
		def.caption = "${genre} dans"
	}
	accent := decl.Block.Get("accent").Text()
	color, err := parseHexColor(accent)
	if err != nil {
		return themeDef{}, fmt.Errorf("theme: theme %s accent: %w", decl.Name, err)
	}
	def.accent = color
	return def, nil
}

// Resolve returns the profile of a station, or InvalidStationError for any
// value outside the four known ones.
func (r *Registry) Resolve(station Station) (Profile, error) {
	profile, ok := r.profiles[station]
	if !ok {
		return Profile{}, &InvalidStationError{Value: string(station)}
	}
	return profile, nil
}

// parseHexColor accepts #RGB, #RRGGBB and #RRGGBBAA.
func parseHexColor(s string) (layout.Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return layout.Color{}, fmt.Errorf("invalid color %q", s)
	}
	hex := s[1:]
	expand := func(h string) string {
		var out []byte
		for i := 0; i < len(h); i++ {
			out = append(out, h[i], h[i])
		}
		return string(out)
	}
	if len(hex) == 3 {
		hex = expand(hex)
	}
	if len(hex) != 6 && len(hex) != 8 {
		return layout.Color{}, fmt.Errorf("invalid color %q", s)
	}
	val, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return layout.Color{}, fmt.Errorf("invalid color %q", s)
	}
	c := layout.Color{A: 255}
	if len(hex) == 8 {
		c.A = uint8(val & 0xff)
		val >>= 8
	}
	c.B = uint8(val & 0xff)
	c.G = uint8(val >> 8 & 0xff)
	c.R = uint8(val >> 16 & 0xff)
	return c, nil
}
