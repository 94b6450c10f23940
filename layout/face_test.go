package layout

import "unicode/utf8"

// stubFace gives every rune the same advance so expected breakpoints can be
// derived by hand. No font files are involved anywhere in these tests.
type stubFace struct {
	charWidth float64
	ascent    float64
	descent   float64
	size      float64
}

func (f stubFace) TextWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * f.charWidth
}
func (f stubFace) Ascent() float64  { return f.ascent }
func (f stubFace) Descent() float64 { return f.descent }
func (f stubFace) Size() float64    { return f.size }

// stubFaces serves the same stub face for every role.
type stubFaces struct {
	face Face
}

func (s stubFaces) Face(FontRole) (Face, error) { return s.face, nil }
