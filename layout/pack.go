package layout

import "math/rand"

// PackConfig bounds the label pill grid. Start is the top-left corner of the
// first pill, MaxRight the right edge no pill should cross, and MaxLines the
// hard cap on rows; labels beyond capacity are dropped, not queued.
type PackConfig struct {
	Seed       int64
	Start      Point
	MaxRight   int
	GapX       int
	GapY       int
	PillHeight int
	PaddingX   int
	MaxLines   int
	TextColor  Color
}

// Labels concatenates the three input lists in fixed category order with
// their category fill colors: verbatims grey, tags white, artists in the
// theme accent.
func Labels(verbatims, tags, artists []string, accent Color) []LabelItem {
	items := make([]LabelItem, 0, len(verbatims)+len(tags)+len(artists))
	for _, v := range verbatims {
		items = append(items, LabelItem{Category: LabelVerbatim, Text: v, Fill: Grey})
	}
	for _, t := range tags {
		items = append(items, LabelItem{Category: LabelTag, Text: t, Fill: White})
	}
	for _, a := range artists {
		items = append(items, LabelItem{Category: LabelArtist, Text: a, Fill: accent})
	}
	return items
}

// ShuffleLabels returns a Fisher-Yates permutation of items driven entirely
// by seed. The generator is created here, per call, so identical seed and
// input always produce the identical order, including under concurrent use.
func ShuffleLabels(items []LabelItem, seed int64) []LabelItem {
	out := make([]LabelItem, len(items))
	copy(out, items)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Pack shuffles items with cfg.Seed and fills lines greedily first-fit: an
// item joins the current line while the cumulative width, gaps included,
// stays within MaxRight-Start.X and fewer than MaxLines lines are closed.
// Once MaxLines lines are closed the remaining items are discarded.
func Pack(items []LabelItem, face Face, cfg PackConfig) []PackedLine {
	items = ShuffleLabels(items, cfg.Seed)
	budget := cfg.MaxRight - cfg.Start.X

	var lines []PackedLine
	var current PackedLine
	for _, item := range items {
		pillWidth := StringWidth(face, item.Text) + 2*cfg.PaddingX
		needed := pillWidth
		if len(current.Items) > 0 {
			needed += cfg.GapX
		}
		if current.Width+needed <= budget && len(lines) < cfg.MaxLines {
			current.Items = append(current.Items, item)
			current.Width += needed
			continue
		}
		if len(current.Items) > 0 {
			lines = append(lines, current)
			current = PackedLine{}
		}
		if len(lines) >= cfg.MaxLines {
			break
		}
		current.Items = []LabelItem{item}
		current.Width = pillWidth
	}
	if len(current.Items) > 0 && len(lines) < cfg.MaxLines {
		lines = append(lines, current)
	}
	return lines
}

// PlacePackedLines resolves packed lines to pill elements, left to right and
// top to bottom. An item whose pill would cross MaxRight at the current
// cursor gets its text shortened first; the cursor then advances past the
// drawn pill plus GapX, so consecutive rects chain exactly.
func PlacePackedLines(lines []PackedLine, face Face, cfg PackConfig) []PillElement {
	var pills []PillElement
	for lineNum, line := range lines {
		y := cfg.Start.Y + lineNum*(cfg.PillHeight+cfg.GapY)
		x := cfg.Start.X
		for _, item := range line.Items {
			display := fitPillText(item.Text, face, cfg.MaxRight-x-2*cfg.PaddingX)
			pill := PlacePill(display, face, FontPill, cfg.TextColor, item.Fill,
				PillPlacement{Position: &Point{X: x, Y: y}}, cfg.PaddingX, cfg.PillHeight)
			pills = append(pills, pill)
			x = pill.Rect.X1 + cfg.GapX
		}
	}
	return pills
}

// fitPillText drops the last 4 runes and appends the ellipsis until the text
// fits maxTextWidth or 6 or fewer runes remain. At the floor the text is
// kept regardless of overflow: best effort, not a guarantee.
func fitPillText(text string, face Face, maxTextWidth int) string {
	display := text
	for StringWidth(face, display) > maxTextWidth {
		runes := []rune(display)
		if len(runes) <= 6 {
			break
		}
		display = string(runes[:len(runes)-4]) + Ellipsis
	}
	return display
}
