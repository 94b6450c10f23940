package layout

import "fmt"

// Pixel constants of the visual. These are part of the image contract: the
// frontend composites the result against fixed frames, so every margin and
// gap below must stay put.
const (
	marginX = 66

	frequencyY        = 311
	frequencyTracking = -8

	genreY = 460

	scenePillGap     = 24
	scenePillOffsetY = 32
	scenePillPadding = 25
	scenePillHeight  = 72

	dateY = 520

	titleY           = 800
	titleRightInset  = 200
	titleLineSpacing = 8
	titleTracking    = -7
	titleMaxLines    = 3

	labelStartY     = 1300
	labelGapX       = 24
	labelGapY       = 24
	labelPillHeight = 78
	labelPadding    = 25
	labelMaxLines   = 4
)

// Input is everything the builder needs for one image: the resolved theme
// values, the display strings and the label lists. The shuffle seed is an
// explicit field, never ambient state.
type Input struct {
	Width      int
	Height     int
	Background string
	Accent     Color

	Frequency    string
	GenreCaption string
	SceneName    string
	DateCaption  string
	Title        string

	Verbatims []string
	Tags      []string
	Artists   []string
	Seed      int64
}

// Build lays out the full visual as a Plan, in the fixed element order:
// frequency readout, genre caption, scene pill, date caption, wrapped title,
// label pill grid. It performs no drawing; the Plan belongs to the caller
// and is not retained.
func Build(in Input, opts BuildOptions) (*Plan, error) {
	if opts.Faces == nil {
		return nil, fmt.Errorf("layout: missing face source")
	}
	if in.Width <= 0 || in.Height <= 0 {
		return nil, fmt.Errorf("layout: invalid canvas size %dx%d", in.Width, in.Height)
	}
	if in.Background == "" {
		return nil, fmt.Errorf("layout: missing background")
	}

	genreFace, err := opts.Faces.Face(FontGenre)
	if err != nil {
		return nil, fmt.Errorf("layout: genre face: %w", err)
	}
	sceneFace, err := opts.Faces.Face(FontScene)
	if err != nil {
		return nil, fmt.Errorf("layout: scene face: %w", err)
	}
	titleFace, err := opts.Faces.Face(FontTitle)
	if err != nil {
		return nil, fmt.Errorf("layout: title face: %w", err)
	}
	pillFace, err := opts.Faces.Face(FontPill)
	if err != nil {
		return nil, fmt.Errorf("layout: pill face: %w", err)
	}

	plan := &Plan{
		Width:      in.Width,
		Height:     in.Height,
		Background: in.Background,
	}

	freqTracking := frequencyTracking
	plan.Texts = append(plan.Texts, TextElement{
		X: marginX, Y: frequencyY,
		Text:     in.Frequency,
		Role:     FontFrequency,
		Color:    White,
		Tracking: &freqTracking,
	})

	genreAnchor := Point{X: marginX, Y: genreY}
	plan.Texts = append(plan.Texts, TextElement{
		X: genreAnchor.X, Y: genreAnchor.Y,
		Text:  in.GenreCaption,
		Role:  FontGenre,
		Color: Black,
	})

	plan.Pills = append(plan.Pills, PlacePill(
		in.SceneName, sceneFace, FontScene, Black, in.Accent,
		PillPlacement{
			RelativeTo: &genreAnchor,
			RefText:    in.GenreCaption,
			RefFace:    genreFace,
			Gap:        scenePillGap,
			Offset:     Point{Y: scenePillOffsetY},
		},
		scenePillPadding, scenePillHeight,
	))

	plan.Texts = append(plan.Texts, TextElement{
		X: marginX, Y: dateY,
		Text:  in.DateCaption,
		Role:  FontDate,
		Color: Black,
	})

	tracking := titleTracking
	lineAdvance := PixelRound(titleFace.Size()) + titleLineSpacing
	for i, line := range Wrap(in.Title, in.Width-titleRightInset, titleFace, &tracking, titleMaxLines) {
		lineTracking := tracking
		plan.Texts = append(plan.Texts, TextElement{
			X: marginX, Y: titleY + i*lineAdvance,
			Text:     line.Text,
			Role:     FontTitle,
			Color:    White,
			Tracking: &lineTracking,
			Ellipsis: line.Ellipsis,
		})
	}

	items := Labels(in.Verbatims, in.Tags, in.Artists, in.Accent)
	if len(items) > 0 {
		cfg := PackConfig{
			Seed:       in.Seed,
			Start:      Point{X: marginX, Y: labelStartY},
			MaxRight:   in.Width - marginX,
			GapX:       labelGapX,
			GapY:       labelGapY,
			PillHeight: labelPillHeight,
			PaddingX:   labelPadding,
			MaxLines:   labelMaxLines,
			TextColor:  Black,
		}
		lines := Pack(items, pillFace, cfg)
		plan.Pills = append(plan.Pills, PlacePackedLines(lines, pillFace, cfg)...)
	}

	return plan, nil
}
