package layout

// pillBaselineShift compensates the vertical metrics bias of the shipped
// font set when centering text inside a pill. Calibrated against the
// Obviously / Darker Grotesque faces.
const pillBaselineShift = 7

// PillPlacement selects where a pill goes. The rules apply in strict
// priority order:
//
//  1. Position, when set, is the absolute top-left corner.
//  2. RelativeTo together with RefText and RefFace places the pill right
//     after the reference text's measured extent plus Gap, vertically
//     centered against the reference line height.
//  3. RelativeTo alone is the pill's top-left corner.
//  4. Otherwise the origin.
//
// Offset is added after whichever rule applied.
type PillPlacement struct {
	Position   *Point
	RelativeTo *Point
	RefText    string
	RefFace    Face
	Gap        int
	Offset     Point
}

// PlacePill computes a capsule badge sized to its centered text. The pill is
// StringWidth(text) plus twice paddingX wide, height tall, with fully rounded
// ends. Text centering and baseline are resolved here so the renderer only
// replays coordinates.
func PlacePill(text string, face Face, role FontRole, textColor, fill Color, pos PillPlacement, paddingX, height int) PillElement {
	textWidth := StringWidth(face, text)
	width := textWidth + 2*paddingX

	var x, y int
	switch {
	case pos.Position != nil:
		x, y = pos.Position.X, pos.Position.Y
	case pos.RelativeTo != nil && pos.RefText != "" && pos.RefFace != nil:
		refHeight := PixelRound(pos.RefFace.Ascent() + pos.RefFace.Descent())
		x = pos.RelativeTo.X + StringWidth(pos.RefFace, pos.RefText) + pos.Gap
		y = pos.RelativeTo.Y + (refHeight-height)/2
	case pos.RelativeTo != nil:
		x, y = pos.RelativeTo.X, pos.RelativeTo.Y
	}
	x += pos.Offset.X
	y += pos.Offset.Y

	return PillElement{
		Rect:      Rect{X0: x, Y0: y, X1: x + width, Y1: y + height},
		Radius:    height / 2,
		Text:      text,
		Role:      role,
		TextColor: textColor,
		Fill:      fill,
		TextX:     x + (width-textWidth)/2,
		Baseline:  y + height/2 + PixelRound(face.Descent())/2 + pillBaselineShift,
	}
}
