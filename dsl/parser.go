// Package dsl parses the station/theme definition files that drive the
// visual: which background, accent color, scene and genre each theme uses,
// and which theme and frequency each station maps to.
package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[:;]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment"),
	)
)

// Document is the root AST node for a station definition file.
type Document struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Name     string         `parser:"Newline* 'stations' @Ident"`
	Sections []*Section     `parser:"'{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// Section is either a theme or a station declaration.
type Section struct {
	Theme   *ThemeDecl   `parser:"  @@"`
	Station *StationDecl `parser:"| @@"`
}

// Kind returns the human-readable section type.
func (s *Section) Kind() string {
	switch {
	case s == nil:
		return "unknown"
	case s.Theme != nil:
		return "theme"
	case s.Station != nil:
		return "station"
	default:
		return "unknown"
	}
}

// ThemeDecl declares a visual theme: scene, genre, background, accent.
type ThemeDecl struct {
	Name  string `parser:"'theme' @Ident"`
	Block *Block `parser:"@@"`
}

// StationDecl maps a station value to its frequency and theme.
type StationDecl struct {
	Name  string `parser:"'station' @Ident"`
	Block *Block `parser:"@@"`
}

// Block is a delimited list of key: value assignments.
type Block struct {
	Assignments []*Assignment `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Get returns the value assigned to key, or nil.
func (b *Block) Get(key string) *Value {
	if b == nil {
		return nil
	}
	for _, a := range b.Assignments {
		if a.Key == key {
			return a.Value
		}
	}
	return nil
}

// Assignment uses colon syntax (key: value).
type Assignment struct {
	Key   string `parser:"@Ident"`
	Value *Value `parser:"':' Newline* @@"`
}

// Value is a string literal, a hex color or a bare identifier reference.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Color  *string        `parser:"| @Color"`
	Ident  *string        `parser:"| @Ident"`
}

// Text returns the value as a plain string regardless of its form.
func (v *Value) Text() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return string(*v.String)
	case v.Color != nil:
		return *v.Color
	case v.Ident != nil:
		return *v.Ident
	default:
		return ""
	}
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a definition file from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses a definition file from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}
