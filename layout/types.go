package layout

// This file defines the layout result model shared by the builder, the
// renderer and the debug JSON dump. All coordinates are whole pixels with the
// origin at the top-left of the background image.

// FontRole names one of the fixed logical fonts of the visual. The renderer
// maps every role to a concrete font file and point size.
type FontRole string

const (
	FontFrequency FontRole = "frequency"
	FontGenre     FontRole = "genre"
	FontScene     FontRole = "scene"
	FontDate      FontRole = "date"
	FontTitle     FontRole = "title"
	FontPill      FontRole = "pill"
)

// Color is an 8-bit RGBA value.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

var (
	White = Color{255, 255, 255, 255}
	Black = Color{0, 0, 0, 255}
	Grey  = Color{198, 183, 184, 255}
)

// Point is a pixel position.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Rect is a pixel bounding box: X0/Y0 top-left, X1/Y1 right and bottom edges.
type Rect struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// TextLine is one wrapped line of text. Truncated marks a line that had to be
// shortened to honor a line cap; such a line only ever appears last, and its
// Ellipsis is drawn untracked right after the line text.
type TextLine struct {
	Text      string `json:"text"`
	Truncated bool   `json:"truncated,omitempty"`
	Ellipsis  string `json:"ellipsis,omitempty"`
}

// PlainLine returns an ordinary wrapped line.
func PlainLine(text string) TextLine { return TextLine{Text: text} }

// TruncatedLine returns a line that was cut to fit the line cap.
func TruncatedLine(text, ellipsis string) TextLine {
	return TextLine{Text: text, Truncated: true, Ellipsis: ellipsis}
}

// LabelCategory tells which input list a label pill came from. The category
// decides the pill fill color only; packing treats all categories alike.
type LabelCategory string

const (
	LabelVerbatim LabelCategory = "verbatim"
	LabelTag      LabelCategory = "tag"
	LabelArtist   LabelCategory = "artist"
)

// LabelItem is one badge to pack: its category, display text and fill color.
type LabelItem struct {
	Category LabelCategory `json:"category"`
	Text     string        `json:"text"`
	Fill     Color         `json:"fill"`
}

// PackedLine is one row of packed labels. Width is the cumulative pill width
// including inter-item gaps at assignment time.
type PackedLine struct {
	Items []LabelItem `json:"items"`
	Width int         `json:"width"`
}

// TextElement is a positioned run of text. X/Y address the top-left corner of
// the line box; the renderer derives the baseline from the role's font
// metrics. A non-nil Tracking selects the per-character draw path with that
// many pixels added after every glyph advance.
type TextElement struct {
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Text     string   `json:"text"`
	Role     FontRole `json:"role"`
	Color    Color    `json:"color"`
	Tracking *int     `json:"tracking,omitempty"`
	Ellipsis string   `json:"ellipsis,omitempty"`
}

// PillElement is a positioned capsule badge with its centered text resolved
// to exact pixels. TextX is the left edge of the text run and Baseline the
// text baseline, both precomputed so the renderer stays metric-free.
type PillElement struct {
	Rect      Rect     `json:"rect"`
	Radius    int      `json:"radius"`
	Text      string   `json:"text"`
	Role      FontRole `json:"role"`
	TextColor Color    `json:"textColor"`
	Fill      Color    `json:"fill"`
	TextX     int      `json:"textX"`
	Baseline  int      `json:"baseline"`
}

// Plan is the full set of positioned drawables for one image. It is built
// fresh per request, handed to the renderer once and then discarded; nothing
// in it is shared between requests.
type Plan struct {
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Background string        `json:"background"`
	Texts      []TextElement `json:"texts"`
	Pills      []PillElement `json:"pills"`
}
