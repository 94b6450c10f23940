package layout

// Face exposes the glyph metrics the layout engine depends on. Widths are
// unrounded advances in pixels; Ascent/Descent are the face's vertical
// metrics around the baseline and Size its nominal point size. A Face must be
// safe for concurrent reads.
type Face interface {
	TextWidth(s string) float64
	Ascent() float64
	Descent() float64
	Size() float64
}

// FaceSource resolves a font role to a Face. The canvas renderer implements
// it against real font files; tests implement it with fixed metrics.
type FaceSource interface {
	Face(role FontRole) (Face, error)
}

// BuildOptions carries the dependencies of the layout stage.
type BuildOptions struct {
	Faces FaceSource
}
