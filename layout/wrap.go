package layout

import "strings"

// Ellipsis is the suffix appended to truncated lines and pill texts.
const Ellipsis = "..."

// Wrap splits text into lines no wider than maxWidth using greedy word wrap.
// Words are whitespace-delimited and never split: a single word wider than
// maxWidth is kept whole on its own line. A non-nil tracking makes every
// width check use the tracked cursor arithmetic of the draw path.
//
// When maxLines > 0 and wrapping produced more lines, the overflow is
// discarded and the maxLines-th line is shrunk rune by rune until it fits
// maxWidth with the ellipsis appended, or until only 3 runes remain; the
// result is tagged Truncated either way. A line that stops at the 3-rune
// floor may still overflow visually, which is accepted.
//
// Wrap is a pure function: it draws nothing and keeps no state.
func Wrap(text string, maxWidth int, face Face, tracking *int, maxLines int) []TextLine {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []TextLine
	var current []string
	for _, word := range words {
		test := strings.Join(current, " ")
		if test != "" {
			test += " "
		}
		test += word
		if measuredWidth(face, test, tracking) <= maxWidth {
			current = append(current, word)
			continue
		}
		if len(current) > 0 {
			lines = append(lines, PlainLine(strings.Join(current, " ")))
			current = []string{word}
			continue
		}
		// A lone word wider than maxWidth stays whole on its own line.
		lines = append(lines, PlainLine(word))
	}
	if len(current) > 0 {
		lines = append(lines, PlainLine(strings.Join(current, " ")))
	}

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = truncateLine(lines[maxLines-1].Text, maxWidth, face, tracking)
	}
	return lines
}

// truncateLine shrinks text until it fits maxWidth with the ellipsis, or
// until 3 runes remain.
func truncateLine(text string, maxWidth int, face Face, tracking *int) TextLine {
	runes := []rune(text)
	for {
		if ellipsizedWidth(face, string(runes), tracking) <= maxWidth || len(runes) <= 3 {
			return TruncatedLine(string(runes), Ellipsis)
		}
		runes = runes[:len(runes)-1]
	}
}

// ellipsizedWidth measures prefix followed by an untracked ellipsis. The
// ellipsis sits directly after the last glyph, so with tracking enabled the
// trailing tracking delta of the prefix is not part of the width.
func ellipsizedWidth(face Face, prefix string, tracking *int) int {
	if tracking == nil {
		return StringWidth(face, prefix+Ellipsis)
	}
	w := TrackedWidth(face, prefix, *tracking)
	if prefix != "" {
		w -= *tracking
	}
	return w + StringWidth(face, Ellipsis)
}
