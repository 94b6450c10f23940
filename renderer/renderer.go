package renderer

import "github.com/clumzy/freqgen/layout"

// Renderer turns a layout plan into final encoded image bytes.
type Renderer interface {
	Render(plan *layout.Plan) ([]byte, error)
}
