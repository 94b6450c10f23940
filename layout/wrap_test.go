package layout

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWrapEmptyInput(t *testing.T) {
	face := stubFace{charWidth: 10}
	if lines := Wrap("", 100, face, nil, 0); lines != nil {
		t.Fatalf("expected no lines for empty input, got %v", lines)
	}
	if lines := Wrap("   ", 100, face, nil, 0); lines != nil {
		t.Fatalf("expected no lines for blank input, got %v", lines)
	}
}

// Every rune is 10px wide and tracking tightens each advance by 2, so every
// rune effectively costs 8px; the whole 29-rune sentence costs 232px and
// fits a 500px bound on a single line.
func TestWrapTrackedSentenceFitsOneLine(t *testing.T) {
	face := stubFace{charWidth: 10}
	tracking := -2
	got := Wrap("Open air au coucher du soleil", 500, face, &tracking, 0)
	want := []TextLine{PlainLine("Open air au coucher du soleil")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("wrap mismatch (-want +got):\n%s", diff)
	}
}

// Same metrics against a 100px bound: "Open air au" costs 88px, adding
// " coucher" would cost 152px, and so on.
func TestWrapTrackedSentenceBreakpoints(t *testing.T) {
	face := stubFace{charWidth: 10}
	tracking := -2
	got := Wrap("Open air au coucher du soleil", 100, face, &tracking, 0)
	want := []TextLine{
		PlainLine("Open air au"),
		PlainLine("coucher du"),
		PlainLine("soleil"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("wrap mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapWidthBound(t *testing.T) {
	face := stubFace{charWidth: 10}
	const maxWidth = 120
	text := "un club sombre il faut que je me dépense encore et encore toute la nuit"
	for i, line := range Wrap(text, maxWidth, face, nil, 0) {
		got := StringWidth(face, line.Text)
		if got <= maxWidth {
			continue
		}
		// A single unsplittable word is the only permitted overflow.
		if strings.Contains(line.Text, " ") {
			t.Errorf("line %d %q measures %d > %d", i, line.Text, got, maxWidth)
		}
	}
}

func TestWrapOverlongWordKeptWhole(t *testing.T) {
	face := stubFace{charWidth: 10}
	got := Wrap("supercalifragilistic oui", 100, face, nil, 0)
	want := []TextLine{
		PlainLine("supercalifragilistic"),
		PlainLine("oui"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("wrap mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapLineCapTruncatesLastLine(t *testing.T) {
	face := stubFace{charWidth: 10}
	got := Wrap("aaaa bbbb cccc dddd eeee", 100, face, nil, 2)
	want := []TextLine{
		PlainLine("aaaa bbbb"),
		TruncatedLine("cccc dd", Ellipsis),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("wrap mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapTruncatedLineOnlyLast(t *testing.T) {
	face := stubFace{charWidth: 10}
	lines := Wrap("aaaa bbbb cccc dddd eeee ffff gggg", 100, face, nil, 3)
	if len(lines) != 3 {
		t.Fatalf("expected exactly 3 lines, got %d", len(lines))
	}
	for i, line := range lines[:len(lines)-1] {
		if line.Truncated {
			t.Errorf("line %d must not be truncated", i)
		}
	}
	last := lines[len(lines)-1]
	if !last.Truncated || last.Ellipsis != Ellipsis {
		t.Fatalf("last line must be truncated with ellipsis, got %+v", last)
	}
}

// The shrinking prefix stops at 3 runes even when the result still
// overflows; this is accepted, not corrected.
func TestWrapTruncationFloor(t *testing.T) {
	face := stubFace{charWidth: 10}
	got := Wrap("abcdefghij klmnop qrstu", 20, face, nil, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(got))
	}
	want := TruncatedLine("klm", Ellipsis)
	if diff := cmp.Diff(want, got[1]); diff != "" {
		t.Fatalf("floor truncation mismatch (-want +got):\n%s", diff)
	}
}

// With tracking the ellipsis sits flush after the last glyph: the prefix's
// trailing tracking delta is not part of the remeasured width.
func TestWrapTrackedTruncationMeasurement(t *testing.T) {
	face := stubFace{charWidth: 10}
	tracking := -2
	// Words of 5 runes: "aaaaa bbbbb" costs 88px, adding " ccccc" exceeds.
	got := Wrap("aaaaa bbbbb ccccc ddddd eeeee", 100, face, &tracking, 1)
	if len(got) != 1 {
		t.Fatalf("expected a single capped line, got %d", len(got))
	}
	line := got[0]
	if !line.Truncated {
		t.Fatalf("capped line must be truncated, got %+v", line)
	}
	width := TrackedWidth(face, line.Text, tracking) - tracking + StringWidth(face, Ellipsis)
	if width > 100 {
		t.Fatalf("truncated line %q remeasures to %d > 100", line.Text, width)
	}
}
